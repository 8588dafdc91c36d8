// Command visualize renders a scene's annotations over its page
// photograph and writes the composite as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/GernotUllrich/btrainer/internal/config"
	"github.com/GernotUllrich/btrainer/internal/render"
	"github.com/GernotUllrich/btrainer/internal/scene"
)

func main() {
	configDir := flag.String("config", "", "directory holding btrainer.yaml")
	scenePath := flag.String("scene", "", "Scene YAML file")
	imagePath := flag.String("image", "", "Page photograph (default: derived from the scene)")
	outPath := flag.String("out", "", "Output PNG (default: <scene-id>_annotated.png)")
	noInfo := flag.Bool("no-info", false, "Skip the coordinate listing block")
	flag.Parse()

	if *scenePath == "" {
		fmt.Println("Usage: visualize -scene <yaml> [-image <png>] [-out <png>]")
		os.Exit(1)
	}

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, "visualize:", err)
		os.Exit(1)
	}

	doc, err := scene.Load(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}

	pagePath := *imagePath
	if pagePath == "" {
		name, err := render.ImageFile(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot derive image name: %v\n", err)
			os.Exit(1)
		}
		pagePath = filepath.Join(config.DataDir(), name)
	}

	f, err := os.Open(pagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	background, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}

	opts := render.DefaultOptions()
	if *noInfo {
		opts.InfoBlock = false
	}
	out := render.Scene(doc, background, opts)

	target := *outPath
	if target == "" {
		target = doc.ID + "_annotated.png"
	}
	of, err := os.Create(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
		os.Exit(1)
	}
	if err := png.Encode(of, out); err != nil {
		of.Close()
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
	of.Close()

	fmt.Printf("Annotated scene written to %s\n", target)
}
