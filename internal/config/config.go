package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/arcanaland/cardset/card"
	"github.com/arcanaland/cardset/cardset"
	"github.com/arcanaland/cardset/playingcard"
)

// Config represents the application configuration
type Config struct {
	DefaultDeck string          `toml:"default_deck"`
	Jokers      bool            `toml:"jokers"`
	Color       bool            `toml:"color"`
	Seed        uint64          `toml:"seed"`
	Visibility  card.Visibility `toml:"visibility"`
}

// Environment variables that override the config file
const (
	EnvSeed        = "CARDSET_SEED"
	EnvJokers      = "CARDSET_JOKERS"
	EnvColor       = "CARDSET_COLOR"
	EnvDefaultDeck = "CARDSET_DEFAULT_DECK"
)

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultDeck: "rider-waite-smith",
		Color:       true,
		Visibility:  card.Private,
	}
}

// DeckType returns the playing card deck selected by the config
func (c *Config) DeckType() playingcard.DeckType {
	if c.Jokers {
		return playingcard.Standard | playingcard.Jokers
	}
	return playingcard.Standard
}

// SetOptions returns the CardSet options selected by the config. A zero seed
// leaves the default generator in place.
func (c *Config) SetOptions() []cardset.Option {
	if c.Seed == 0 {
		return nil
	}
	return []cardset.Option{cardset.WithSeed(c.Seed)}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetCacheDir returns the directory for generated files such as ANSI art
// rendered from card images
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "cardset")
}

// GetDeckLibraryPath returns the path to the tarot deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "tarot", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardset", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if it does not
// exist, then applies environment overrides (including any from a .env file
// in the working directory).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	// Create default config if it doesn't exist
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		glog.V(1).Infof("no config at %s, writing defaults", configPath)
		if err := saveConfig(Default()); err != nil {
			return nil, err
		}
	}

	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides cfg with any CARDSET_* environment variables. Values
// that do not parse are logged and ignored.
func applyEnv(cfg *Config) {
	if s := os.Getenv(EnvSeed); s != "" {
		if seed, err := strconv.ParseUint(s, 10, 64); err == nil {
			cfg.Seed = seed
		} else {
			glog.Warningf("ignoring %s=%q: %v", EnvSeed, s, err)
		}
	}
	if s := os.Getenv(EnvJokers); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			cfg.Jokers = b
		} else {
			glog.Warningf("ignoring %s=%q: %v", EnvJokers, s, err)
		}
	}
	if s := os.Getenv(EnvColor); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			cfg.Color = b
		} else {
			glog.Warningf("ignoring %s=%q: %v", EnvColor, s, err)
		}
	}
	if s := os.Getenv(EnvDefaultDeck); s != "" {
		cfg.DefaultDeck = s
	}
}

// saveConfig writes cfg to the config file, creating its directory
func saveConfig(cfg *Config) (err error) {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.Wrap(err, "error creating config directory")
	}

	file, err := os.Create(configPath)
	if err != nil {
		return errors.Wrap(err, "error creating config file")
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "error writing config file")
		}
	}()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return errors.Wrap(err, "error encoding config")
	}
	return nil
}

// GetDeckPath returns the path to a tarot deck, either in the deck library or
// a relative path
func GetDeckPath(deckName string) (string, error) {
	// First, try to find the deck in the deck library
	deckPath := filepath.Join(GetDeckLibraryPath(), deckName)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", errors.Errorf("deck not found: %s", deckName)
}

// GetDefaultDeck returns the default deck name from config
func GetDefaultDeck() (string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return cfg.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config file
func SetDefaultDeck(deckName string) error {
	cfg, err := loadFile()
	if err != nil {
		return err
	}
	cfg.DefaultDeck = deckName
	return saveConfig(cfg)
}

// loadFile reads the config file without environment overrides, so that
// saving it back does not persist them.
func loadFile() (*Config, error) {
	cfg := Default()
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return cfg, nil
}
