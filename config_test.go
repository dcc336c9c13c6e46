package tme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/tme"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := tme.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, tme.DefaultBindings(), cfg.Bindings())
	assert.Equal(t, tme.ColorBlack, cfg.ClearRGBA())
}

func TestParseJSONConfig(t *testing.T) {
	doc := `{
		"LogFile": "game.log",
		"Window": {"Title": "tank", "Width": 800, "Height": 600},
		"Buttons": {"Up": "up", "Escape": "Select"}
	}`
	cfg, err := tme.ParseConfig([]byte(doc), ".json")
	require.NoError(t, err)

	assert.Equal(t, "game.log", cfg.LogFile)
	assert.Equal(t, "tank", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, map[string]tme.Button{
		"up":     tme.ButtonUp,
		"escape": tme.ButtonSelect,
	}, cfg.Bindings())
	assert.Equal(t, "info", cfg.LogLevel, "defaults kept for missing fields")
}

func TestParseYAMLConfig(t *testing.T) {
	doc := `
LogFile: "-"
LogLevel: debug
ClearColor: [0.5, 0, 0, 1]
Buttons:
  space: button2
`
	cfg, err := tme.ParseConfig([]byte(doc), ".YML")
	require.NoError(t, err)
	assert.Equal(t, "-", cfg.LogFile)
	assert.Equal(t, [4]float32{0.5, 0, 0, 1}, cfg.ClearColor)
	assert.Equal(t, map[string]tme.Button{"space": tme.ButtonButton2}, cfg.Bindings())
	assert.Equal(t, 640, cfg.Window.Width)
}

func TestParseConfigEmptyButtonsUsesDefaults(t *testing.T) {
	cfg, err := tme.ParseConfig([]byte(`{"LogFile": ""}`), ".json")
	require.NoError(t, err)
	assert.Equal(t, tme.DefaultBindings(), cfg.Bindings())
}

func TestConfigErrors(t *testing.T) {
	cases := map[string]string{
		"malformed":      `{"LogFile": `,
		"unknown field":  `{"LogPath": "x"}`,
		"unknown button": `{"Buttons": {"q": "jump"}}`,
		"bad size":       `{"Window": {"Width": 0, "Height": 480}}`,
		"bad color":      `{"ClearColor": [2, 0, 0, 1]}`,
		"bad level":      `{"LogLevel": "loud"}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tme.ParseConfig([]byte(doc), ".json")
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"LogFile": "x.log"}`), 0o644))

	cfg, err := tme.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "x.log", cfg.LogFile)

	_, err = tme.LoadConfig(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't open config file")
}

func TestOpenLog(t *testing.T) {
	cfg := tme.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "engine.log")
	cfg.LogLevel = "debug"

	l, closer, err := tme.OpenLog(cfg)
	require.NoError(t, err)
	l.Debug("hello", "n", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello n=1")
}
