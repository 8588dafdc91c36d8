// Command extract renders book pages, writes annotation scaffolds and
// OCRs scene captions for the width-gather chapter.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/GernotUllrich/btrainer/internal/config"
	"github.com/GernotUllrich/btrainer/internal/extract"
	"github.com/GernotUllrich/btrainer/internal/logging"
)

func main() {
	configDir := flag.String("config", "", "directory holding btrainer.yaml")
	pdf := flag.String("pdf", "", "Path to the source book PDF")
	pages := flag.Bool("pages", false, "Render the chapter pages as PNG files")
	first := flag.Int("first", extract.FirstImagePage, "First page to render")
	last := flag.Int("last", extract.LastImagePage, "Last page to render")
	scaffolds := flag.Bool("scaffolds", false, "Write annotation scaffolds for missing scenes")
	force := flag.Bool("force", false, "Overwrite existing scaffolds")
	captions := flag.Bool("captions", false, "OCR scene captions into the scaffolds")
	flag.Parse()

	if !*pages && !*scaffolds && !*captions {
		fmt.Println("Usage: extract [-pdf book.pdf] -pages|-scaffolds|-captions [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, "extract:", err)
		os.Exit(1)
	}
	log := logging.Setup(os.Stderr, config.LogLevel())

	imageDir := config.DataDir()
	yamlDir := config.AnnotationsDir()

	if *pages {
		if *pdf == "" {
			log.Fatal().Msg("-pages needs -pdf")
		}
		if err := extract.RenderPages(*pdf, imageDir, *first, *last, log); err != nil {
			log.Fatal().Err(err).Msg("rendering pages")
		}
		fmt.Printf("Pages %d-%d rendered to %s\n", *first, *last, imageDir)
	}

	if *scaffolds {
		written, err := extract.WriteScaffolds(yamlDir, *force, log)
		if err != nil {
			log.Fatal().Err(err).Msg("writing scaffolds")
		}
		fmt.Printf("Wrote %d scaffolds to %s\n", written, yamlDir)
	}

	if *captions {
		if *pdf == "" {
			log.Fatal().Msg("-captions needs -pdf")
		}
		updated, err := extract.ApplyCaptions(*pdf, yamlDir, config.OCRLanguage(), log)
		if err != nil {
			log.Fatal().Err(err).Msg("applying captions")
		}
		fmt.Printf("Updated %d scenes with caption text\n", updated)
	}
}
