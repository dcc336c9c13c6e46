package tme

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the engine settings loaded at startup.
type Config struct {
	// LogFile is the log destination. "-" logs to stderr.
	LogFile string `json:"LogFile" yaml:"LogFile"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"LogLevel" yaml:"LogLevel"`

	Window WindowConfig `json:"Window" yaml:"Window"`

	// ClearColor is the RGBA color the frame is cleared to after a swap.
	ClearColor [4]float32 `json:"ClearColor" yaml:"ClearColor"`

	// Buttons maps platform key names to button names. When empty, the
	// default bindings are used.
	Buttons map[string]string `json:"Buttons" yaml:"Buttons"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	buttons := make(map[string]string)
	for key, b := range DefaultBindings() {
		buttons[key] = b.String()
	}
	return Config{
		LogFile:  "engine.log",
		LogLevel: "info",
		Window: WindowConfig{
			Title:  "tme",
			Width:  640,
			Height: 480,
			VSync:  true,
		},
		ClearColor: [4]float32{0, 0, 0, 1},
		Buttons:    buttons,
	}
}

// LoadConfig reads a JSON or YAML config file, chosen by extension, on top
// of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "can't open config file %s", path)
	}
	cfg, err := ParseConfig(data, filepath.Ext(path))
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes a config document. ext selects the format: ".yaml"
// and ".yml" are YAML, anything else is JSON.
func ParseConfig(data []byte, ext string) (Config, error) {
	cfg := DefaultConfig()
	// Buttons in the document replace the defaults rather than merge.
	cfg.Buttons = nil

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parse yaml")
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, errors.Wrap(err, "parse json")
		}
	}

	if len(cfg.Buttons) == 0 {
		cfg.Buttons = DefaultConfig().Buttons
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return errors.Errorf("clear color component %d out of range: %v", i, v)
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	keys := make([]string, 0, len(c.Buttons))
	for key := range c.Buttons {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if key == "" {
			return errors.New("empty key name in buttons")
		}
		if _, ok := ParseButton(c.Buttons[key]); !ok {
			return errors.Errorf("unknown button %q for key %q", c.Buttons[key], key)
		}
	}
	return nil
}

// Bindings resolves Buttons into a lookup table. Key names are matched
// case-insensitively.
func (c Config) Bindings() map[string]Button {
	if len(c.Buttons) == 0 {
		return DefaultBindings()
	}
	out := make(map[string]Button, len(c.Buttons))
	for key, name := range c.Buttons {
		if b, ok := ParseButton(name); ok {
			out[strings.ToLower(key)] = b
		}
	}
	return out
}

// ClearRGBA returns ClearColor as a packed color.
func (c Config) ClearRGBA() Color {
	cc := c.ClearColor
	return RGBAf(cc[0], cc[1], cc[2], cc[3])
}
