package creature

// Animator receives the "moving forward" flag driving a walk animation.
type Animator interface {
	SetForward(forward bool)
}

// Indicator toggles a visual cue, such as the alert marker over a creature.
type Indicator interface {
	SetActive(active bool)
}

type noopAnimator struct{}

func (noopAnimator) SetForward(bool) {}

type noopIndicator struct{}

func (noopIndicator) SetActive(bool) {}
