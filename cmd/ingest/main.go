// Command ingest loads annotated scene files into the catalog database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/GernotUllrich/btrainer/internal/config"
	"github.com/GernotUllrich/btrainer/internal/ingest"
	"github.com/GernotUllrich/btrainer/internal/logging"
	"github.com/GernotUllrich/btrainer/internal/store"
)

func main() {
	configDir := flag.String("config", "", "directory holding btrainer.yaml")
	dir := flag.String("dir", "", "scene directory (default: configured annotationsDir)")
	assets := flag.String("assets", "", "page image directory (default: configured dataDir)")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, "ingest:", err)
		os.Exit(1)
	}
	log := logging.Setup(os.Stderr, config.LogLevel())

	sceneDir := *dir
	if sceneDir == "" {
		sceneDir = config.AnnotationsDir()
	}
	assetDir := *assets
	if assetDir == "" {
		assetDir = config.DataDir()
	}

	manager := store.NewManager(log)
	if err := manager.Connect(); err != nil {
		log.Fatal().Err(err).Msg("opening catalog")
	}
	defer manager.Close()

	if err := manager.Setup(); err != nil {
		log.Fatal().Err(err).Msg("migrating catalog schema")
	}

	report, err := ingest.ImportDir(manager.DB, sceneDir, assetDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog import")
	}

	keys, err := store.SceneKeys(manager.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("listing catalog scenes")
	}

	fmt.Printf("Catalog holds %d scenes (%d imported, %d failed this run)\n",
		len(keys), report.Imported, report.Failed)
	if report.Failed > 0 {
		os.Exit(1)
	}
}
