package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Inventory: InventoryConfig{
			Backpack: GridConfig{Width: 10, Height: 6},
			Stash:    GridConfig{Width: 12, Height: 8},
		},
		Content: ContentConfig{
			ItemsDir: "content/items",
		},
		Scripting: ScriptingConfig{
			InstructionLimit: 100000,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
inventory:
  backpack:
    width: 8
    height: 5
content:
  items_dir: items
  starting_items: start.yaml
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Inventory.Backpack.Width)
	assert.Equal(t, 5, cfg.Inventory.Backpack.Height)
	assert.Equal(t, 12, cfg.Inventory.Stash.Width, "stash falls back to defaults")
	assert.Equal(t, "items", cfg.Content.ItemsDir)
	assert.Equal(t, "start.yaml", cfg.Content.StartingItems)
	assert.Equal(t, 100000, cfg.Scripting.InstructionLimit)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n  format: json\n"), 0644))
	t.Setenv("MEDIEVAL_INVENTORY_BACKPACK_WIDTH", "4")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Inventory.Backpack.Width)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViper_Defaults(t *testing.T) {
	cfg, err := LoadFromViper(Defaults())
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Inventory.Backpack.Width)
	assert.Equal(t, 6, cfg.Inventory.Backpack.Height)
	assert.Equal(t, "content/items", cfg.Content.ItemsDir)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingOutputEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Output = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateItemsDirEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Content.ItemsDir = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateInstructionLimitNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Scripting.InstructionLimit = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Inventory.Backpack.Width = 0
	cfg.Inventory.Stash.Height = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inventory.backpack.width")
	assert.Contains(t, err.Error(), "inventory.stash.height")
}

// Property-based tests

func TestPropertyPositiveGridAccepted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(1, 64).Draw(t, "w")
		h := rapid.IntRange(1, 64).Draw(t, "h")
		cfg := validConfig()
		cfg.Inventory.Backpack = GridConfig{Width: w, Height: h}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid grid %dx%d rejected: %v", w, h, err)
		}
	})
}

func TestPropertyNonPositiveGridRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(-100, 0).Draw(t, "w")
		h := rapid.IntRange(1, 64).Draw(t, "h")
		cfg := validConfig()
		cfg.Inventory.Stash = GridConfig{Width: w, Height: h}
		if err := cfg.Validate(); err == nil {
			t.Fatalf("invalid grid %dx%d accepted", w, h)
		}
	})
}
