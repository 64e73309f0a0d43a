package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"go-pairs/internal/config"
	"go-pairs/internal/deck"
	"go-pairs/internal/history"
	"go-pairs/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openBackend(cfg config.Config) (history.Backend, io.Closer, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		b, err := history.OpenSQLite(filepath.Join(cfg.DataDir, "history.db"))
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	case config.StoreMemory:
		return history.NewMemoryBackend(), nopCloser{}, nil
	default:
		return history.NewFileBackend(cfg.DataDir), nopCloser{}, nil
	}
}

func main() {
	cfg, err := config.Load(os.Args[1:], ".env")
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, logCloser, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	backend, closer, err := openBackend(cfg)
	if err != nil {
		fmt.Printf("Error opening history: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store := history.NewStore(backend, logger)

	var startMode *deck.Mode
	if m, ok := cfg.StartMode(); ok {
		startMode = &m
	}

	model := initialModel(store, rand.New(rand.NewSource(seed)), startMode, cfg.NoHistory, logger)
	logger.Info().Str("store", cfg.Store).Int64("seed", seed).Msg("starting go-pairs")

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
		os.Exit(1)
	}
}
