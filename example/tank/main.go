// Tank drives a textured tank across a square grid.
//
// Usage:
//
//	go run ./example/tank/ -assets ./assets -grid ./assets/scale.txt
//
// The assets directory holds tank.png and, optionally, idle.wav, move.wav
// and rotate.wav. Arrow-style bindings come from the config file (w a s d
// by default). The tank turns toward the pressed direction and drives one
// cell forward when it already faces it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"

	"github.com/go-theft-auto/tme"
	"github.com/go-theft-auto/tme/audio"
	"github.com/go-theft-auto/tme/backend/opengl"
)

const moveSeconds = 0.25

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "engine config file (.json, .yaml)")
	assets := flag.String("assets", ".", "directory with tank.png and sounds")
	gridPath := flag.String("grid", "", "file holding the number of grid cells per side")
	cells := flag.Int("cells", 8, "grid cells per side, unless -grid is set")
	flag.Parse()

	cfg := tme.DefaultConfig()
	cfg.Window.Title = "tank"
	if *configPath != "" {
		var err error
		if cfg, err = tme.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	if *gridPath != "" {
		n, err := readGrid(*gridPath)
		if err != nil {
			return err
		}
		*cells = n
	}

	engine, err := tme.New(opengl.NewPlatform())
	if err != nil {
		return err
	}
	defer engine.Uninitialize()

	if err := engine.Initialize(cfg); err != nil {
		return err
	}
	log := engine.Logger()

	tex, err := engine.CreateTexture(filepath.Join(*assets, "tank.png"))
	if err != nil {
		return err
	}
	defer engine.DestroyTexture(tex)

	snd := loadSounds(log, *assets)
	defer snd.close()
	snd.idle.loop()

	return loop(engine, NewTank(*cells), tex, snd)
}

func loop(engine *tme.Engine, tank *Tank, tex *tme.Texture, snd *sounds) error {
	log := engine.Logger()
	ramp := tme.NewRamp(moveSeconds)

	// rotation and movement hold every finished step; last is animated on
	// top of them by the ramp.
	rotation := tme.Identity()
	movement := tank.Origin()
	var last Step

	for {
		now := engine.TimeFromInit()
		for {
			ev, ok := engine.ReadInput()
			if !ok {
				break
			}
			log.Debug("input", "event", ev)

			switch ev {
			case tme.EventTurnOff, tme.EventSelectPressed:
				return nil
			}
			d, ok := DirectionFor(ev)
			if !ok || !ramp.Done(now) {
				continue
			}

			rotation = rotation.Mul(tme.Rotation(last.Turn))
			movement = movement.Mul(tme.Movement(last.Offset))
			last = tank.Move(d)
			if last.Forward {
				snd.move.play()
			} else {
				snd.rotate.play()
			}
			ramp.Start(now)
		}

		k := ramp.Value(now)
		rot := rotation.Mul(tme.Rotation(k * last.Turn))
		mov := movement.Mul(tme.Movement(last.Offset.Mul(k)))
		for _, tri := range tank.Triangles() {
			if err := engine.RenderRotateMove(tri, tex, rot, mov); err != nil {
				return err
			}
		}
		engine.SwapBuffers()
	}
}

func readGrid(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open grid file")
	}
	defer f.Close()

	n, err := tme.NewGeometryReader(f).Uint()
	if err != nil {
		return 0, errors.Wrapf(err, "read grid size from %s", path)
	}
	if n == 0 {
		return 0, errors.Errorf("grid size in %s must be positive", path)
	}
	return int(n), nil
}

// clip is a sound that may be missing; a nil clip plays nothing.
type clip struct {
	s *audio.Sound
}

func (c clip) play() {
	if c.s != nil {
		c.s.Play()
	}
}

func (c clip) loop() {
	if c.s != nil {
		c.s.PlayLoop()
	}
}

type sounds struct {
	speaker            *audio.Speaker
	idle, move, rotate clip
}

// loadSounds opens the speaker and loads the clips. Sound is optional:
// failures are logged and the game runs silent.
func loadSounds(log *slog.Logger, dir string) *sounds {
	s := &sounds{}
	sp, err := audio.Open()
	if err != nil {
		log.Warn("sound disabled", "error", err)
		return s
	}
	s.speaker = sp

	load := func(name string) clip {
		snd, err := sp.Load(filepath.Join(dir, name))
		if err != nil {
			log.Warn("sound not loaded", "file", name, "error", err)
			return clip{}
		}
		return clip{s: snd}
	}
	s.idle = load("idle.wav")
	s.move = load("move.wav")
	s.rotate = load("rotate.wav")
	return s
}

func (s *sounds) close() {
	if s.speaker != nil {
		s.speaker.Close()
	}
}
