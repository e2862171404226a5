package actors

// Difficulty is a tunable behavior profile for hostile actors. The numbers
// are configuration data, overridable from YAML, not hardcoded invariants.
type Difficulty struct {
	Name string `yaml:"name"`

	ThiefStrength        int     `yaml:"thief_strength"`
	StealProbability     float64 `yaml:"steal_probability"`
	HitProbability       float64 `yaml:"hit_probability"`
	DisarmProbability    float64 `yaml:"disarm_probability"`
	Aggressiveness       float64 `yaml:"aggressiveness"`
	EngrossedTurns       int     `yaml:"engrossed_turns"`
	MoveProbability      float64 `yaml:"move_probability"`
	FleeProbability      float64 `yaml:"flee_probability"`
	PlayerHitProbability float64 `yaml:"player_hit_probability"`
}

// The built-in tiers. Hostile probabilities order easy < normal < hard.
var (
	Easy = Difficulty{
		Name:                 "easy",
		ThiefStrength:        4,
		StealProbability:     0.05,
		HitProbability:       0.25,
		DisarmProbability:    0.20,
		Aggressiveness:       0.25,
		EngrossedTurns:       4,
		MoveProbability:      0.30,
		FleeProbability:      0.40,
		PlayerHitProbability: 0.75,
	}

	Normal = Difficulty{
		Name:                 "normal",
		ThiefStrength:        5,
		StealProbability:     0.10,
		HitProbability:       0.40,
		DisarmProbability:    0.30,
		Aggressiveness:       0.40,
		EngrossedTurns:       3,
		MoveProbability:      0.40,
		FleeProbability:      0.30,
		PlayerHitProbability: 0.60,
	}

	Hard = Difficulty{
		Name:                 "hard",
		ThiefStrength:        7,
		StealProbability:     0.20,
		HitProbability:       0.55,
		DisarmProbability:    0.45,
		Aggressiveness:       0.60,
		EngrossedTurns:       2,
		MoveProbability:      0.50,
		FleeProbability:      0.20,
		PlayerHitProbability: 0.50,
	}
)

// Profile returns the named tier, defaulting to Normal for unknown names.
func Profile(name string) Difficulty {
	switch name {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Normal
	}
}
