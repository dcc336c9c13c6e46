/*
Package tme is a tiny 2D engine: one window, one graphics context and a
handful of shader programs that draw single triangles.

# Overview

The Engine owns a Platform (window, key events, clock, buffer swap) and
the Device the platform resolves when it opens. Geometry is submitted one
triangle at a time in one of three vertex layouts:

	Tri0  position only            RenderFlat(tri, color)
	Tri1  position, color          RenderColored(tri)
	Tri2  position, uv, color      RenderTextured(tri, tex)
	                               RenderTransformed(tri, tex, m)
	                               RenderRotateMove(tri, tex, rotate, move)

The OpenGL 4.1 + GLFW implementation lives in backend/opengl. Sound
effects are in the audio package.

# Quick Start

	engine, err := tme.New(opengl.NewPlatform())
	if err != nil {
	    return err
	}
	defer engine.Uninitialize()

	cfg, err := tme.LoadConfig("config.yaml")
	if err != nil {
	    return err
	}
	if err := engine.Initialize(cfg); err != nil {
	    return err
	}

	tex, err := engine.CreateTexture("tank.png")
	if err != nil {
	    return err
	}

	for {
	    for {
	        ev, ok := engine.ReadInput()
	        if !ok {
	            break
	        }
	        if ev == tme.EventTurnOff {
	            return nil
	        }
	    }
	    for _, tri := range tme.Quad(0.5, tme.ColorWhite) {
	        engine.RenderTransformed(tri, tex, tme.Rotation(float32(engine.TimeFromInit())))
	    }
	    engine.SwapBuffers()
	}

Only one Engine may exist at a time. All calls must come from the thread
that created the window; programs lock the main OS thread in init.

# Transforms

Mat3x2 is a 2D affine transform stored as three rows: two linear rows and
a translation row. Points are row vectors, v' = v*M, so a.Mul(b) applies a
first and then b:

	m := tme.Scale(0.5).Mul(tme.Rotation(math.Pi / 4)).Mul(tme.Movement(offset))

Rotation is counter-clockwise for positive angles. Floats returns the
nine values uploaded as a mat3 uniform; the shaders compute
vec3(pos, 1.0) * u_matrix.

# Colors

Color packs four 8-bit channels as 0xAABBGGRR, so its in-memory bytes are
R, G, B, A and it can be uploaded as a normalized unsigned-byte vertex
attribute. Float setters clamp to [0, 1].

# Input

The platform reports raw key names ("w", "space", "left_control"). The
engine maps them to Buttons through Config.Buttons and reports one Event
per call to ReadInput: a pressed or released event per button plus
EventTurnOff when the window is closed. Unbound keys are skipped.

# Configuration

Config is read from JSON or YAML:

	LogFile: engine.log
	LogLevel: info
	Window: {Title: tank, Width: 640, Height: 480, VSync: true}
	ClearColor: [0, 0, 0, 1]
	Buttons:
	  w: up
	  a: left
	  s: down
	  d: right
	  left_control: button1
	  space: button2
	  escape: select
	  enter: start

# Geometry Files

GeometryReader parses whitespace separated numbers: "x y" per V0,
"x y r g b a" per V1 and "x y u v r g b a" per V2, three vertices per
triangle.
*/
package tme
