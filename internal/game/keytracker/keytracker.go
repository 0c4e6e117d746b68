// Package keytracker provides edge detection for held keys on top of ebiten.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	return k.Observe(ebiten.IsKeyPressed(key))
}

// Observe records the current pressed state and reports a rising edge.
func (k *KeyStateTracker) Observe(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}

// Toggles maps keys to trackers so a handler can poll several one-shot keys.
type Toggles map[ebiten.Key]*KeyStateTracker

// NewToggles creates trackers for keys.
func NewToggles(keys ...ebiten.Key) Toggles {
	t := make(Toggles, len(keys))
	for _, key := range keys {
		t[key] = &KeyStateTracker{}
	}
	return t
}

// JustPressed reports a rising edge for key. Untracked keys never fire.
func (t Toggles) JustPressed(key ebiten.Key) bool {
	tracker, ok := t[key]
	if !ok {
		return false
	}
	return tracker.IsKeyJustPressed(key)
}
