package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/cardset/card"
	"github.com/arcanaland/cardset/playingcard"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, key := range []string{EnvSeed, EnvJokers, EnvColor, EnvDefaultDeck} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoadConfigWritesDefaults(t *testing.T) {
	dir := setupHome(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("LoadConfig() = %+v, want defaults %+v", cfg, Default())
	}

	path := GetConfigFilePath()
	if want := filepath.Join(dir, "config", "cardset", "config.toml"); path != want {
		t.Fatalf("GetConfigFilePath() = %s, want %s", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), `visibility = "private"`) {
		t.Fatalf("config file missing visibility:\n%s", data)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	setupHome(t)
	path := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	contents := `default_deck = "thoth"
jokers = true
color = false
seed = 99
visibility = "blind"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{DefaultDeck: "thoth", Jokers: true, Color: false, Seed: 99, Visibility: card.Blind}
	if *cfg != want {
		t.Fatalf("LoadConfig() = %+v, want %+v", *cfg, want)
	}
	if cfg.DeckType() != playingcard.Standard|playingcard.Jokers {
		t.Fatalf("DeckType() = %v", cfg.DeckType())
	}
	if len(cfg.SetOptions()) != 1 {
		t.Fatalf("seeded config should yield one option")
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	setupHome(t)
	path := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`visibility = "sideways"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unknown visibility")
	}
}

func TestEnvOverrides(t *testing.T) {
	setupHome(t)
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvJokers, "true")
	t.Setenv(EnvColor, "not-a-bool")
	t.Setenv(EnvDefaultDeck, "marseille")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 1234 || !cfg.Jokers || cfg.DefaultDeck != "marseille" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if !cfg.Color {
		t.Fatalf("invalid %s should be ignored", EnvColor)
	}
}

func TestSetDefaultDeck(t *testing.T) {
	setupHome(t)
	t.Setenv(EnvSeed, "5")

	if err := SetDefaultDeck("thoth"); err != nil {
		t.Fatalf("SetDefaultDeck: %v", err)
	}
	name, err := GetDefaultDeck()
	if err != nil {
		t.Fatalf("GetDefaultDeck: %v", err)
	}
	if name != "thoth" {
		t.Fatalf("GetDefaultDeck() = %s, want thoth", name)
	}

	// Env overrides are not persisted.
	data, err := os.ReadFile(GetConfigFilePath())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "seed = 5") {
		t.Fatalf("env seed leaked into config file:\n%s", data)
	}
}

func TestGetDeckPath(t *testing.T) {
	dir := setupHome(t)
	libDeck := filepath.Join(GetDeckLibraryPath(), "rws")
	if err := os.MkdirAll(libDeck, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := GetDeckPath("rws")
	if err != nil || got != libDeck {
		t.Fatalf("GetDeckPath(rws) = (%s, %v), want %s", got, err, libDeck)
	}

	local := filepath.Join(dir, "local-deck")
	if err := os.MkdirAll(local, 0755); err != nil {
		t.Fatal(err)
	}
	got, err = GetDeckPath(local)
	if err != nil || got != local {
		t.Fatalf("GetDeckPath(%s) = (%s, %v)", local, got, err)
	}

	if _, err := GetDeckPath("missing"); err == nil {
		t.Fatalf("expected error for missing deck")
	}
}

func TestSaveConfig(t *testing.T) {
	setupHome(t)

	cfg := Default()
	cfg.Seed = 12
	cfg.Visibility = card.Public
	if err := saveConfig(cfg); err != nil {
		t.Fatalf("saveConfig: %v", err)
	}
	got, err := loadFile()
	if err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("loadFile() = %+v, want %+v", got, cfg)
	}

	// A directory in the way of the config file must surface as an error.
	path := GetConfigFilePath()
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}
	if err := saveConfig(cfg); err == nil {
		t.Fatalf("saveConfig over a directory should fail")
	}
}
