// Command gallery renders every render variant once in a hidden window,
// captures the framebuffer and saves JPEG screenshots.
//
// Usage:
//
//	go run ./example/gallery/ -out doc/imgs
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"

	"github.com/go-theft-auto/tme"
	"github.com/go-theft-auto/tme/backend/opengl"
)

const (
	width  = 640
	height = 480
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is a single capture.
type screenshot struct {
	name string // filename without extension
	draw func(e *tme.Engine, tex *tme.Texture) error
}

func run() error {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	quality := flag.Int("quality", 90, "JPEG quality")
	flag.Parse()

	cfg := tme.DefaultConfig()
	cfg.LogFile = "-"
	cfg.Window = tme.WindowConfig{Title: "gallery", Width: width, Height: height, Hidden: true}
	cfg.ClearColor = [4]float32{0.12, 0.12, 0.14, 1}

	engine, err := tme.New(opengl.NewPlatform())
	if err != nil {
		return err
	}
	defer engine.Uninitialize()
	if err := engine.Initialize(cfg); err != nil {
		return err
	}

	tex, err := engine.CreateTextureFromImage("checker", checker(64, 8))
	if err != nil {
		return err
	}
	defer engine.DestroyTexture(tex)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := s.draw(engine, tex); err != nil {
			return errors.Wrapf(err, "draw %s", s.name)
		}
		// The back buffer is read before the swap clears it.
		img := opengl.Snapshot(width, height)
		engine.SwapBuffers()

		path := filepath.Join(*outDir, s.name+".jpg")
		if err := writeJPEG(path, img, *quality); err != nil {
			return err
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, width, height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), *outDir)
	return nil
}

func writeJPEG(path string, img image.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create screenshot")
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return f.Close()
}

// checker builds a size×size black and white checkerboard with cells of
// the given edge length.
func checker(size, cell int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{R: 30, G: 30, B: 30, A: 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func quad(half float32, draw func(tme.Tri2) error) error {
	for _, tri := range tme.Quad(half, tme.ColorWhite) {
		if err := draw(tri); err != nil {
			return err
		}
	}
	return nil
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "flat",
			draw: func(e *tme.Engine, _ *tme.Texture) error {
				tri := tme.Tri0{V: [3]tme.V0{
					{Pos: tme.Vec2{X: -0.6, Y: -0.6}},
					{Pos: tme.Vec2{X: 0.6, Y: -0.6}},
					{Pos: tme.Vec2{X: 0, Y: 0.6}},
				}}
				return e.RenderFlat(tri, tme.ColorRed)
			},
		},
		{
			name: "colored",
			draw: func(e *tme.Engine, _ *tme.Texture) error {
				tri := tme.Tri1{V: [3]tme.V1{
					{Pos: tme.Vec2{X: -0.6, Y: -0.6}, Color: tme.ColorRed},
					{Pos: tme.Vec2{X: 0.6, Y: -0.6}, Color: tme.ColorGreen},
					{Pos: tme.Vec2{X: 0, Y: 0.6}, Color: tme.ColorBlue},
				}}
				return e.RenderColored(tri)
			},
		},
		{
			name: "textured",
			draw: func(e *tme.Engine, tex *tme.Texture) error {
				return quad(0.5, func(t tme.Tri2) error { return e.RenderTextured(t, tex) })
			},
		},
		{
			name: "transformed",
			draw: func(e *tme.Engine, tex *tme.Texture) error {
				m := tme.Scale(0.8).Mul(tme.Rotation(math.Pi / 6)).Mul(tme.Match640x480())
				return quad(0.5, func(t tme.Tri2) error { return e.RenderTransformed(t, tex, m) })
			},
		},
		{
			name: "rotate_move",
			draw: func(e *tme.Engine, tex *tme.Texture) error {
				rotate := tme.Rotation(-math.Pi / 4)
				move := tme.Movement(tme.Vec2{X: 0.4, Y: 0.3})
				return quad(0.25, func(t tme.Tri2) error { return e.RenderRotateMove(t, tex, rotate, move) })
			},
		},
		{
			name: "tinted",
			draw: func(e *tme.Engine, tex *tme.Texture) error {
				for _, tri := range tme.Quad(0.5, tme.RGBA(255, 160, 60, 200)) {
					if err := e.RenderTextured(tri, tex); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
