package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/cosmochess/cosmochess/internal/common"
)

// Config holds all configuration for the application
type Config struct {
	Game Game `mapstructure:"game"`
	AI   AI   `mapstructure:"ai"`
	Log  Log  `mapstructure:"log"`
	Demo Demo `mapstructure:"demo"`
}

// Game holds game mechanics configuration
type Game struct {
	Board   Board   `mapstructure:"board"`
	Setup   Setup   `mapstructure:"setup"`
	Hazards Hazards `mapstructure:"hazards"`
	Deploy  Deploy  `mapstructure:"deploy"`
}

// Board holds board dimension settings
type Board struct {
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`
}

// Setup holds initial-state generation settings
type Setup struct {
	PlanetCount      int `mapstructure:"planet_count"`
	StartFile        int `mapstructure:"start_file"`
	StaticMinSpacing int `mapstructure:"static_min_spacing"`
}

// Hazards holds flying-hazard spawn settings
type Hazards struct {
	HorizontalCometProb float64 `mapstructure:"horizontal_comet_prob"`
	VerticalCometProb   float64 `mapstructure:"vertical_comet_prob"`
	AsteroidProb        float64 `mapstructure:"asteroid_prob"`
	CometBeltMinRow     int     `mapstructure:"comet_belt_min_row"`
	CometBeltMaxRow     int     `mapstructure:"comet_belt_max_row"`
	EdgeBandDepth       int     `mapstructure:"edge_band_depth"`
}

// Deploy holds per-type deploy costs in manufacturing points
type Deploy struct {
	PawnCost   int `mapstructure:"pawn_cost"`
	KnightCost int `mapstructure:"knight_cost"`
	BishopCost int `mapstructure:"bishop_cost"`
	RookCost   int `mapstructure:"rook_cost"`
	QueenCost  int `mapstructure:"queen_cost"`
}

// AI holds decision-engine search settings
type AI struct {
	Difficulty      string `mapstructure:"difficulty"`
	EasySampleWidth int    `mapstructure:"easy_sample_width"`
	HardSearchWidth int    `mapstructure:"hard_search_width"`
	DeploysPerType  int    `mapstructure:"deploys_per_type"`
}

// Log holds logging settings
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Demo holds self-play demo settings
type Demo struct {
	MaxRounds int   `mapstructure:"max_rounds"`
	Seed      int64 `mapstructure:"seed"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Board defaults
	v.SetDefault("game.board.rows", 10)
	v.SetDefault("game.board.cols", 20)

	// Setup defaults
	v.SetDefault("game.setup.planet_count", 3)
	v.SetDefault("game.setup.start_file", 10)
	v.SetDefault("game.setup.static_min_spacing", 2)

	// Hazard defaults
	v.SetDefault("game.hazards.horizontal_comet_prob", 0.08)
	v.SetDefault("game.hazards.vertical_comet_prob", 0.06)
	v.SetDefault("game.hazards.asteroid_prob", 0.12)
	v.SetDefault("game.hazards.comet_belt_min_row", 2)
	v.SetDefault("game.hazards.comet_belt_max_row", 7)
	v.SetDefault("game.hazards.edge_band_depth", 4)

	// Deploy cost defaults
	v.SetDefault("game.deploy.pawn_cost", 1)
	v.SetDefault("game.deploy.knight_cost", 3)
	v.SetDefault("game.deploy.bishop_cost", 3)
	v.SetDefault("game.deploy.rook_cost", 5)
	v.SetDefault("game.deploy.queen_cost", 9)

	// AI defaults
	v.SetDefault("ai.difficulty", "hard")
	v.SetDefault("ai.easy_sample_width", 8)
	v.SetDefault("ai.hard_search_width", 20)
	v.SetDefault("ai.deploys_per_type", 8)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Demo defaults
	v.SetDefault("demo.max_rounds", 200)
	v.SetDefault("demo.seed", 0)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("COSMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Board.Rows < 4 || c.Game.Board.Cols < 4 {
		return fmt.Errorf("game.board dimensions must be at least 4x4")
	}

	if c.Game.Setup.PlanetCount < 0 {
		return fmt.Errorf("game.setup.planet_count must be non-negative")
	}
	if !common.IsValidSquare(0, c.Game.Setup.StartFile, c.Game.Board.Rows, c.Game.Board.Cols) {
		return fmt.Errorf("game.setup.start_file must be a valid column")
	}
	if c.Game.Setup.StaticMinSpacing < 1 {
		return fmt.Errorf("game.setup.static_min_spacing must be at least 1")
	}

	validateProb := func(p float64, name string) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
		return nil
	}
	if err := validateProb(c.Game.Hazards.HorizontalCometProb, "game.hazards.horizontal_comet_prob"); err != nil {
		return err
	}
	if err := validateProb(c.Game.Hazards.VerticalCometProb, "game.hazards.vertical_comet_prob"); err != nil {
		return err
	}
	if err := validateProb(c.Game.Hazards.AsteroidProb, "game.hazards.asteroid_prob"); err != nil {
		return err
	}
	if c.Game.Hazards.CometBeltMinRow < 0 || c.Game.Hazards.CometBeltMaxRow >= c.Game.Board.Rows {
		return fmt.Errorf("game.hazards comet belt must lie within the board")
	}
	if c.Game.Hazards.CometBeltMinRow > c.Game.Hazards.CometBeltMaxRow {
		return fmt.Errorf("game.hazards.comet_belt_min_row must not exceed comet_belt_max_row")
	}
	if c.Game.Hazards.EdgeBandDepth < 1 || c.Game.Hazards.EdgeBandDepth*2 > c.Game.Board.Cols {
		return fmt.Errorf("game.hazards.edge_band_depth must be positive and fit the board")
	}

	validateCost := func(cost int, name string) error {
		if cost < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
		return nil
	}
	if err := validateCost(c.Game.Deploy.PawnCost, "game.deploy.pawn_cost"); err != nil {
		return err
	}
	if err := validateCost(c.Game.Deploy.KnightCost, "game.deploy.knight_cost"); err != nil {
		return err
	}
	if err := validateCost(c.Game.Deploy.BishopCost, "game.deploy.bishop_cost"); err != nil {
		return err
	}
	if err := validateCost(c.Game.Deploy.RookCost, "game.deploy.rook_cost"); err != nil {
		return err
	}
	if err := validateCost(c.Game.Deploy.QueenCost, "game.deploy.queen_cost"); err != nil {
		return err
	}

	switch c.AI.Difficulty {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("ai.difficulty must be easy, medium or hard")
	}
	if c.AI.EasySampleWidth < 1 {
		return fmt.Errorf("ai.easy_sample_width must be positive")
	}
	if c.AI.HardSearchWidth < 1 {
		return fmt.Errorf("ai.hard_search_width must be positive")
	}
	if c.AI.DeploysPerType < 1 {
		return fmt.Errorf("ai.deploys_per_type must be positive")
	}

	if c.Demo.MaxRounds < 1 {
		return fmt.Errorf("demo.max_rounds must be positive")
	}

	return nil
}
