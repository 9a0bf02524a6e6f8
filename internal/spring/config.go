package spring

// Config holds the physical constants of one spring-mass-damper profile.
// Tension pulls the mass toward the target, friction bleeds off velocity,
// and mass scales how quickly force translates into acceleration.
type Config struct {
	Tension  float64 `json:"tension" yaml:"tension"`
	Mass     float64 `json:"mass" yaml:"mass"`
	Friction float64 `json:"friction" yaml:"friction"`
}

// Profiles groups the three tuned configurations the trajectory pass
// switches between: the everyday profile, a stiffer click-reaction profile,
// and a heavier profile used while the primary button is held.
type Profiles struct {
	Default Config `json:"default" yaml:"default"`
	Snappy  Config `json:"snappy" yaml:"snappy"`
	Drag    Config `json:"drag" yaml:"drag"`
}

// DefaultProfiles returns the stock tuning. Snappy trades mass for tension
// so the cursor bites near clicks; drag is moderately stiffer than default
// so held-button movement tracks tighter without feeling rigid.
func DefaultProfiles() Profiles {
	return Profiles{
		Default: Config{Tension: 120, Mass: 1.0, Friction: 20},
		Snappy:  Config{Tension: 300, Mass: 0.8, Friction: 30},
		Drag:    Config{Tension: 180, Mass: 1.0, Friction: 24},
	}
}
