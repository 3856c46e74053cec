package engine

import "github.com/sigmazhou/warframe-damage-calculator/internal/model"

// DotConfig describes the damage-over-time behavior of one element type.
// Tick values are an explicit configuration input, not inferred from the
// damage formula.
type DotConfig struct {
	// TickFraction of the triggering hit's non-elemental damage dealt
	// per tick.
	TickFraction float64 `yaml:"tick_fraction"`
	// BaseDuration in seconds before status-duration scaling.
	BaseDuration float64 `yaml:"base_duration"`
	// TickRate in ticks per second.
	TickRate float64 `yaml:"tick_rate"`
}

// Config holds the engine's tunable combat constants. Zero-value fields
// are not meaningful; use DefaultConfig and override as needed.
type Config struct {
	// DotTable lists the DOT-capable element types. Types absent from
	// the table contribute only direct damage.
	DotTable map[model.Element]DotConfig `yaml:"dot_table"`

	// PerDebuffBonus is the fixed damage amplification per active enemy
	// debuff, compounding multiplicatively.
	PerDebuffBonus float64 `yaml:"per_debuff_bonus"`

	// GalvanizedShotCritBonus is the flat crit-damage bonus per
	// galvanized_shot stack.
	GalvanizedShotCritBonus float64 `yaml:"galvanized_shot_crit_bonus"`
	// GalvanizedAptitudeStatusBonus is the additive status-chance bonus
	// per galvanized_aptitude stack.
	GalvanizedAptitudeStatusBonus float64 `yaml:"galvanized_aptitude_status_bonus"`
}

// DefaultConfig returns the standard combat constants: heat, toxin,
// electricity and gas tick at half the hit damage, slash at 0.35, all
// over a 6 second window at 1 tick/s.
func DefaultConfig() Config {
	return Config{
		DotTable: map[model.Element]DotConfig{
			model.Heat:        {TickFraction: 0.5, BaseDuration: 6, TickRate: 1},
			model.Toxin:       {TickFraction: 0.5, BaseDuration: 6, TickRate: 1},
			model.Slash:       {TickFraction: 0.35, BaseDuration: 6, TickRate: 1},
			model.Electricity: {TickFraction: 0.5, BaseDuration: 6, TickRate: 1},
			model.Gas:         {TickFraction: 0.5, BaseDuration: 6, TickRate: 1},
		},
		PerDebuffBonus:                0.10,
		GalvanizedShotCritBonus:       0.4,
		GalvanizedAptitudeStatusBonus: 0.3,
	}
}

// Engine evaluates weapon builds: stat aggregation, the deterministic
// damage formula and the Monte Carlo simulator, sharing one Config.
type Engine struct {
	cfg Config
}

// New returns an Engine with the given combat constants.
func New(cfg Config) *Engine {
	if cfg.DotTable == nil {
		cfg.DotTable = DefaultConfig().DotTable
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's combat constants.
func (e *Engine) Config() Config { return e.cfg }
