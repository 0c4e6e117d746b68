package creature

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// BehaviorKind selects which controller a creature definition builds.
type BehaviorKind int

const (
	BehaviorWander BehaviorKind = iota
	BehaviorFlee
)

// ParseBehaviorKind converts "wander" or "flee" to a BehaviorKind.
func ParseBehaviorKind(name string) (BehaviorKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "wander":
		return BehaviorWander, nil
	case "flee":
		return BehaviorFlee, nil
	default:
		return BehaviorWander, fmt.Errorf("unknown behavior: %q", name)
	}
}

func (k BehaviorKind) String() string {
	if k == BehaviorFlee {
		return "flee"
	}
	return "wander"
}

// CreatureDefinition holds the configuration for a creature type from YAML.
// Zero numeric fields fall back to the defaults of the behavior kind.
type CreatureDefinition struct {
	Name           string    `yaml:"name"`
	Behavior       string    `yaml:"behavior"`
	MoveSpeed      float64   `yaml:"move_speed"`
	RotateSpeed    float64   `yaml:"rotate_speed"`
	MaxRotateTime  int       `yaml:"max_rotate_time"`
	FleeRotateTime int       `yaml:"flee_rotate_time"`
	MaxFleeTime    int       `yaml:"max_flee_time"`
	WalkTimeMin    int       `yaml:"walk_time_min"`
	WalkTimeMax    int       `yaml:"walk_time_max"`
	WalkWaitBias   []float64 `yaml:"walk_wait_bias"`
	FleeMultiplier float64   `yaml:"flee_multiplier"`
	SpookInterval  float64   `yaml:"spook_interval"`
	FleeFrom       string    `yaml:"flee_from"`
	BodyRadius     float64   `yaml:"body_radius"`
	TriggerRadius  float64   `yaml:"trigger_radius"`
	Color          [3]int    `yaml:"color"`

	kind     BehaviorKind
	fleeFrom Category
}

// PlacementRule says how many creatures of a type the world spawns.
type PlacementRule struct {
	Count int `yaml:"count"`
}

// CreatureYAMLConfig holds the complete creature configuration from YAML.
type CreatureYAMLConfig struct {
	Creatures map[string]*CreatureDefinition `yaml:"creatures"`
	Placement map[string]PlacementRule       `yaml:"placement"`
}

// Global creature configuration
var CreatureConfig *CreatureYAMLConfig

// resolveCreatureConfiguration parses tag and behavior names once and checks
// that placement only refers to defined creatures.
func resolveCreatureConfiguration(config *CreatureYAMLConfig) error {
	var problems []string

	for _, key := range config.Keys() {
		def := config.Creatures[key]
		if def == nil {
			problems = append(problems, fmt.Sprintf("creature '%s' has an empty definition", key))
			continue
		}

		kind, err := ParseBehaviorKind(def.Behavior)
		if err != nil {
			problems = append(problems, fmt.Sprintf("creature '%s': %v", key, err))
		}
		def.kind = kind

		def.fleeFrom = CategoryNone
		if kind == BehaviorFlee {
			def.fleeFrom = CategoryPlayer
			if def.FleeFrom != "" {
				category, err := ParseCategory(def.FleeFrom)
				if err != nil {
					problems = append(problems, fmt.Sprintf("creature '%s': flee_from: %v", key, err))
				}
				def.fleeFrom = category
			}
		}
	}

	placementKeys := make([]string, 0, len(config.Placement))
	for key := range config.Placement {
		placementKeys = append(placementKeys, key)
	}
	sort.Strings(placementKeys)
	for _, key := range placementKeys {
		if _, exists := config.Creatures[key]; !exists {
			problems = append(problems, fmt.Sprintf("placement refers to unknown creature '%s'", key))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("creature configuration problems detected:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

// ParseCreatureConfig decodes and resolves creature configuration YAML.
func ParseCreatureConfig(data []byte) (*CreatureYAMLConfig, error) {
	var config CreatureYAMLConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse creature config YAML: %w", err)
	}
	if err := resolveCreatureConfiguration(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadCreatureConfig loads creature configuration from a YAML file
func LoadCreatureConfig(filename string) (*CreatureYAMLConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read creature config file: %w", err)
	}

	config, err := ParseCreatureConfig(data)
	if err != nil {
		return nil, err
	}

	// Set global config for easy access
	CreatureConfig = config

	return config, nil
}

// MustLoadCreatureConfig loads creature configuration and panics on error
func MustLoadCreatureConfig(filename string) *CreatureYAMLConfig {
	config, err := LoadCreatureConfig(filename)
	if err != nil {
		panic("Failed to load creature config: " + err.Error())
	}
	return config
}

// GetCreatureByKey returns creature definition by key
func (c *CreatureYAMLConfig) GetCreatureByKey(key string) (*CreatureDefinition, error) {
	def, exists := c.Creatures[key]
	if !exists || def == nil {
		return nil, fmt.Errorf("creature with key '%s' not found", key)
	}
	return def, nil
}

// Keys returns all creature keys in sorted order so spawning is reproducible.
func (c *CreatureYAMLConfig) Keys() []string {
	keys := make([]string, 0, len(c.Creatures))
	for key := range c.Creatures {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Kind returns the resolved behavior kind.
func (def *CreatureDefinition) Kind() BehaviorKind {
	return def.kind
}

// Tunables returns the definition's settings over the defaults of its kind.
func (def *CreatureDefinition) Tunables() Tunables {
	t := DefaultWanderTunables()
	if def.kind == BehaviorFlee {
		t = DefaultFleeTunables()
	}

	setFloat(&t.MoveSpeed, def.MoveSpeed)
	setFloat(&t.RotateSpeed, def.RotateSpeed)
	setInt(&t.MaxRotateTime, def.MaxRotateTime)
	setInt(&t.FleeRotateTime, def.FleeRotateTime)
	setInt(&t.MaxFleeTime, def.MaxFleeTime)
	setInt(&t.WalkTimeMin, def.WalkTimeMin)
	setInt(&t.WalkTimeMax, def.WalkTimeMax)
	setFloat(&t.FleeMultiplier, def.FleeMultiplier)
	setFloat(&t.SpookInterval, def.SpookInterval)
	if len(def.WalkWaitBias) > 0 {
		t.WalkWaitBias = append([]float64(nil), def.WalkWaitBias...)
	}
	if def.kind == BehaviorFlee {
		t.FleeFrom = def.fleeFrom
	}
	return t
}

// GetSizeFromConfig returns body and trigger radii, with fallbacks.
func (def *CreatureDefinition) GetSizeFromConfig() (body, trigger float64) {
	body, trigger = def.BodyRadius, def.TriggerRadius
	if body <= 0 {
		body = 0.5
	}
	if def.kind == BehaviorFlee && trigger <= 0 {
		trigger = body * 6
	}
	return body, trigger
}

// NewBehavior builds the controller for this definition around tr.
func (def *CreatureDefinition) NewBehavior(tr *Transform, rng *rand.Rand, anim Animator, alert Indicator) Behavior {
	if def.kind == BehaviorFlee {
		return NewFleer(def.Tunables(), tr, rng, anim, alert)
	}
	return NewWanderer(def.Tunables(), tr, rng)
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
