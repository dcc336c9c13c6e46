// Morph blends a square into a triangle.
//
// Usage:
//
//	go run ./example/morph/ [-geometry vertexes.txt]
//
// The geometry file holds four tri0 triangles (the two halves of the start
// shape, then the two halves of the target shape) followed by the starting
// blend factor. Press start (enter) to replay, select (escape) to quit.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-theft-auto/tme"
	"github.com/go-theft-auto/tme/backend/opengl"
)

//go:embed vertexes.txt
var defaultGeometry string

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// morph is a pair of shapes and the blend factor the animation starts at.
type morph struct {
	from, to [2]tme.Tri0
	start    float32
}

func readMorph(r io.Reader) (morph, error) {
	var m morph
	g := tme.NewGeometryReader(r)
	for _, t := range []*tme.Tri0{&m.from[0], &m.from[1], &m.to[0], &m.to[1]} {
		tri, err := g.Tri0()
		if err != nil {
			return m, err
		}
		*t = tri
	}
	a, err := g.Float()
	if err != nil {
		return m, errors.Wrap(err, "blend factor")
	}
	if a < 0 || a > 1 {
		return m, errors.Errorf("blend factor %v outside [0, 1]", a)
	}
	m.start = a
	return m, nil
}

// at returns both triangles blended by the animation progress k in 0..1.
func (m morph) at(k float32) [2]tme.Tri0 {
	a := m.start + (1-m.start)*k
	return [2]tme.Tri0{m.from[0].Blend(m.to[0], a), m.from[1].Blend(m.to[1], a)}
}

func run() error {
	configPath := flag.String("config", "", "engine config file (.json, .yaml)")
	geometry := flag.String("geometry", "", "geometry file; the built-in shapes when empty")
	seconds := flag.Float64("duration", 1, "seconds from start shape to target shape")
	flag.Parse()

	cfg := tme.DefaultConfig()
	cfg.Window.Title = "morph"
	if *configPath != "" {
		var err error
		if cfg, err = tme.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	var src io.Reader = strings.NewReader(defaultGeometry)
	if *geometry != "" {
		f, err := os.Open(*geometry)
		if err != nil {
			return errors.Wrap(err, "open geometry")
		}
		defer f.Close()
		src = f
	}
	m, err := readMorph(src)
	if err != nil {
		return errors.Wrap(err, "read geometry")
	}

	engine, err := tme.New(opengl.NewPlatform())
	if err != nil {
		return err
	}
	defer engine.Uninitialize()
	if err := engine.Initialize(cfg); err != nil {
		return err
	}

	ramp := tme.NewRamp(*seconds)
	ramp.Start(engine.TimeFromInit())

	for {
		for {
			ev, ok := engine.ReadInput()
			if !ok {
				break
			}
			switch ev {
			case tme.EventTurnOff, tme.EventSelectPressed:
				return nil
			case tme.EventStartPressed:
				ramp.Start(engine.TimeFromInit())
			}
		}

		for _, tri := range m.at(ramp.Value(engine.TimeFromInit())) {
			if err := engine.RenderFlat(tri, tme.ColorGreen); err != nil {
				return err
			}
		}
		engine.SwapBuffers()
	}
}
