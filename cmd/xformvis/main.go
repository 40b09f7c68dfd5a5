// Xformvis renders a transform recipe as a PNG. It draws the unit square
// mapped through every prefix of the recipe's steps, faintest first, so the
// figure traces how the transform accumulates. With no recipe file it draws
// a built-in spiral.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	"deedles.dev/xform"
	"deedles.dev/xform/recipe"
	"golang.org/x/image/vector"
)

var (
	recipeFile = flag.String("recipe", "", "recipe file, built-in spiral if empty")
	outFile    = flag.String("o", "xform.png", "output file")
	size       = flag.Int("size", 512, "output size in pixels")
	world      = flag.Float64("world", 8, "width of the region around the origin to show")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("xformvis: ")

	flag.Parse()

	steps := spiral()
	if *recipeFile != "" {
		r, err := recipe.Load(*recipeFile)
		if err != nil {
			log.Fatal(err)
		}
		steps = r
	}

	img, err := render(steps, *size, *world)
	if err != nil {
		log.Fatal(err)
	}
	save(img, *outFile)
}

func save(img *image.RGBA, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
}

// render draws the unit square under every prefix of r, oldest faintest,
// the full recipe strongest.
func render(r recipe.Recipe, size int, world float64) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: image.White}, image.Point{}, draw.Src)

	scale := float64(size) / world
	center := float64(size) / 2

	for i := 0; i <= len(r); i++ {
		m, err := r[:i].Matrix()
		if err != nil {
			return nil, err
		}
		if !m.Finite() {
			return nil, fmt.Errorf("step %d: transform is not finite", i)
		}

		quad := [...]xform.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
		m.TransformPoints(quad[:])

		alpha := uint8(32)
		if i == len(r) {
			alpha = 160
		}
		fill(img, quad[:], scale, center, color.NRGBA{R: 30, G: 80, B: 200, A: alpha})
	}

	return img, nil
}

// fill rasterizes a polygon given in world coordinates, with y up and the
// origin at the image center.
func fill(img *image.RGBA, poly []xform.Point, scale, center float64, c color.NRGBA) {
	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	z.MoveTo(float32(center+scale*poly[0].X), float32(center-scale*poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(center+scale*p.X), float32(center-scale*p.Y))
	}
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

// spiral is the built-in demo recipe, twelve rounds of turn-step-shrink.
// Each shrink rescales the accumulated offsets too, pulling the squares
// inward.
func spiral() recipe.Recipe {
	r := make(recipe.Recipe, 0, 36)
	for range 12 {
		r = append(r,
			recipe.Rotate(math.Pi/6),
			recipe.Translate(1.2, 0),
			recipe.Scale(0.94),
		)
	}
	return r
}
