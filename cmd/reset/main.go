package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Owennied/HimmyGames/internal/bootstrap"
	"github.com/Owennied/HimmyGames/internal/config"
	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/savegame"
	"github.com/Owennied/HimmyGames/internal/storage"
)

func main() {
	exportPath := flag.String("export", "", "Write a compressed backup of the save to this file")
	importPath := flag.String("import", "", "Replace the save with the backup in this file")
	wipe := flag.Bool("wipe", false, "Reset the farm to its starting state")
	flag.Parse()

	if *exportPath == "" && *importPath == "" && !*wipe {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageBackend, err)
	}

	if err := run(ctx, store, *exportPath, *importPath, *wipe); err != nil {
		_ = store.Close()
		log.Fatalf("%v", err)
	}
	if err := store.Close(); err != nil {
		log.Printf("Warning: failed to close storage: %v\n", err)
	}
}

// run performs export, then import, then wipe, in that order, so that a
// single invocation can back up a save before replacing it
func run(ctx context.Context, store storage.Store, exportPath, importPath string, wipe bool) error {
	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			return fmt.Errorf("failed to create backup file: %w", err)
		}
		if err := savegame.Export(ctx, store, f); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to export save: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write backup file: %w", err)
		}
		log.Printf("Save exported to %s\n", exportPath)
	}

	if importPath != "" {
		f, err := os.Open(importPath)
		if err != nil {
			return fmt.Errorf("failed to open backup file: %w", err)
		}
		header, err := savegame.Import(ctx, store, f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("failed to import save: %w", err)
		}
		log.Printf("Imported %d keys from backup created %s\n", header.Keys, header.CreatedAt.Format("2006-01-02 15:04"))
	}

	if wipe {
		if err := savegame.Save(ctx, store, domain.NewState()); err != nil {
			return fmt.Errorf("failed to reset farm: %w", err)
		}
		log.Println("✅ Farm reset complete!")
	}

	return nil
}
