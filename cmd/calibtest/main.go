// Command calibtest fits a table calibration from three clicked pixel
// points and prints the transform, residuals and snap behavior.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/GernotUllrich/btrainer/internal/calibration"
	"github.com/GernotUllrich/btrainer/internal/table"
	"github.com/GernotUllrich/btrainer/pkg/geometry"
)

func main() {
	variant := flag.String("variant", table.VariantMatch, "Table variant (see -list)")
	view := flag.String("view", "full", "Capture view: full or quarter")
	c1 := flag.String("c1", "", "Pixel click for calibration target 1, as x,y")
	c2 := flag.String("c2", "", "Pixel click for calibration target 2, as x,y")
	c3 := flag.String("c3", "", "Pixel click for calibration target 3, as x,y")
	probe := flag.String("probe", "", "Extra pixel point to map, clamp and snap, as x,y")
	list := flag.Bool("list", false, "List known table variants")
	flag.Parse()

	if *list {
		for _, name := range table.ListSpecs() {
			fmt.Println(name)
		}
		return
	}

	if *c1 == "" || *c2 == "" || *c3 == "" {
		fmt.Println("Usage: calibtest -c1 x,y -c2 x,y -c3 x,y [-variant match] [-view full|quarter] [-probe x,y]")
		os.Exit(1)
	}

	spec, err := table.GetSpec(*variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	captureView := table.ViewFull
	if *view == "quarter" {
		captureView = table.ViewQuarter
	}

	bounds := spec.Bounds()
	targets := spec.CalibrationTargets(captureView)
	clicks := [3]geometry.Point2D{parsePoint(*c1), parsePoint(*c2), parsePoint(*c3)}

	fmt.Printf("=== Table ===\n")
	fmt.Printf("Variant: %s (%gx%g units, grid %g)\n",
		spec.Name(), bounds.Width, bounds.Height, spec.GridResolution())
	fmt.Printf("View: %s\n", captureView)
	for i, target := range targets {
		fmt.Printf("Target %d: table (%g, %g) <- pixel (%.1f, %.1f)\n",
			i+1, target.X, target.Y, clicks[i].X, clicks[i].Y)
	}

	pairs := make([]calibration.Pair, len(targets))
	for i := range targets {
		pairs[i] = calibration.Pair{Pixel: clicks[i], Table: targets[i]}
	}

	transform, err := calibration.Fit(pairs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Calibration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n=== Transform (pixel -> table) ===\n")
	fmt.Printf("  | %9.5f %9.5f %10.3f |\n", transform.A, transform.B, transform.TX)
	fmt.Printf("  | %9.5f %9.5f %10.3f |\n", transform.C, transform.D, transform.TY)

	residuals := calibration.Residuals(pairs, transform)
	fmt.Printf("\nResiduals (table units):\n")
	for i, r := range residuals {
		fmt.Printf("  target %d: %.6f\n", i+1, r)
	}
	fmt.Printf("  mean: %.6f\n", calibration.MeanResidual(pairs, transform))

	if inverse, ok := transform.Inverse(); ok {
		rt := inverse.Apply(transform.Apply(clicks[0]))
		fmt.Printf("\nRound trip for click 1: (%.3f, %.3f)\n", rt.X, rt.Y)
	}

	if *probe != "" {
		p := parsePoint(*probe)
		mapped := transform.Apply(p)
		clamped := table.Clamp(mapped, bounds)
		snapped := table.Snap(clamped, bounds)
		fmt.Printf("\n=== Probe ===\n")
		fmt.Printf("Pixel:   (%.1f, %.1f)\n", p.X, p.Y)
		fmt.Printf("Mapped:  (%.3f, %.3f)\n", mapped.X, mapped.Y)
		fmt.Printf("Clamped: (%.3f, %.3f)\n", clamped.X, clamped.Y)
		fmt.Printf("Snapped: (%.2f, %.2f)\n", snapped.X, snapped.Y)
	}
}

func parsePoint(s string) geometry.Point2D {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		fmt.Fprintf(os.Stderr, "Bad point %q, want x,y\n", s)
		os.Exit(1)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		fmt.Fprintf(os.Stderr, "Bad point %q, want x,y\n", s)
		os.Exit(1)
	}
	return geometry.Point2D{X: x, Y: y}
}
