package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/smasonuk/hyperview"
)

func main() {
	if err := run(); err != nil {
		slog.Error("hyperview failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "hyperview.yml", "Path to the YAML config file")
	fourD := flag.Bool("4d", false, "Show the hypercube instead of the cube")
	rotation := flag.Float64("rotation", 45, "Initial X-W rotation of the hypercube in degrees")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	hyperview.SetLogger(logger)

	cfg, err := hyperview.LoadConfigFile(*configPath)
	if err != nil {
		return err
	}

	// explicit flags win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "4d":
			cfg.FourDimensional = *fourD
		case "rotation":
			cfg.InitialRotation = *rotation
		}
	})

	mesh, err := hyperview.New(cfg)
	if err != nil {
		return fmt.Errorf("creating mesh: %w", err)
	}
	slog.Info("starting viewer", "mesh", mesh.Name(), "width", cfg.Window.Width, "height", cfg.Window.Height)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title + " - " + mesh.Name())
	ebiten.SetTPS(cfg.Window.TPS)
	return ebiten.RunGame(NewGame(cfg, mesh))
}
