// Command refinetest runs ball center refinement at a clicked point on
// a scene photograph and prints the result.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/GernotUllrich/btrainer/internal/logging"
	"github.com/GernotUllrich/btrainer/internal/refine"
	"github.com/GernotUllrich/btrainer/pkg/geometry"

	_ "golang.org/x/image/tiff"
)

func main() {
	imagePath := flag.String("image", "", "Path to scene photograph (PNG, JPEG or TIFF)")
	x := flag.Float64("x", 0, "Click X in image pixels")
	y := flag.Float64("y", 0, "Click Y in image pixels")
	ball := flag.String("ball", "B1", "Ball label (B1, B2, B3 or GHOST)")
	radius := flag.Int("radius", 0, "Search radius override in pixels")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: refinetest -image <path> -x <px> -y <px> [-ball B1] [-radius 35]")
		os.Exit(1)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())

	level := "warn"
	if *verbose {
		level = "debug"
	}
	log := logging.Setup(os.Stderr, level)

	params := refine.DefaultParams()
	if *radius > 0 {
		params = params.WithSearchRadius(*radius)
	}

	fmt.Printf("\nRefine parameters:\n")
	fmt.Printf("  Search radius: %d px\n", params.SearchRadius)
	fmt.Printf("  Max displacement: %.1f px\n", params.MaxDisplacement())
	fmt.Printf("  Hough: dp=%.1f param1=%.0f param2=%.0f radius %.0f%%-%.0f%%\n",
		params.HoughDP, params.HoughParam1, params.HoughParam2,
		params.HoughMinRadiusFrac*100, params.HoughMaxRadiusFrac*100)
	fmt.Printf("  Template min score: %.2f\n", params.TemplateMinScore)

	fmt.Printf("\nRefining %s at (%.1f, %.1f)...\n", *ball, *x, *y)
	result := refine.NewRefiner(params, log).Refine(img, geometry.Point2D{X: *x, Y: *y}, *ball)

	fmt.Printf("\nRefined: (%.1f, %.1f)\n", result.Point.X, result.Point.Y)
	fmt.Printf("Method:  %s\n", result.Method)
	fmt.Printf("Displacement: %.2f px\n", result.Displacement)
	if result.Method == refine.MethodDigitTemplate {
		fmt.Printf("Template score: %.3f\n", result.Score)
	}
	if result.Rejected {
		fmt.Println("Candidate rejected: displacement above cap, click kept")
	}
}
