package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/privix/internal/config"
	"github.com/jask/privix/internal/database"
	"github.com/jask/privix/internal/export"
	"github.com/jask/privix/internal/session"
	"github.com/jask/privix/internal/state"
	"github.com/jask/privix/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "privix")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	keys := tui.NewKeyRegistry()
	if err := keys.LoadKeybindingFile(cfg.UI.Keybindings); err != nil {
		log.Fatalf("keybindings: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "keys" {
		if err := keys.EncodeKeybindings(os.Stdout); err != nil {
			log.Fatalf("keys: %v", err)
		}
		return
	}

	var journal session.Journal = session.Nop{}
	initial := state.Initial(cfg.UI.InitialScore)
	if cfg.Session.Persist {
		if err := database.RunMigrations(cfg.Session.Path); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		db, err := database.Open(cfg.Session.Path)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()

		j := session.New(db)
		restored, ok, err := j.Restore(ctx)
		if err != nil {
			log.Printf("warn: starting fresh, restore failed: %v", err)
		} else if ok {
			initial = restored
			log.Printf("restored session %s at %s score=%d", j.ID(), restored.Screen, restored.Score)
		}
		journal = j
	}

	app := tui.New(ctx, tui.Options{
		Config:       cfg,
		Store:        state.NewStore(initial),
		Journal:      journal,
		Exporter:     export.New(cfg.Export.Dir),
		Keys:         keys,
		SaveViewMode: config.SaveViewMode,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
