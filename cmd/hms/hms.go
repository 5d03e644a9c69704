package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"hms/config"
	"hms/device"
	"hms/device/tcell"
	"hms/navigator"
	"hms/repository"
	"hms/views"
	"hms/widgets"

	"github.com/muesli/termenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	log.SetFlags(0)

	configPath := flag.String("config", "", "path to config.toml")
	deviceName := flag.String("device", "", "terminal device: console or tcell")
	width := flag.Int("width", 0, "screen width in columns")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hms: %v\n", err)
		return 1
	}
	if *deviceName != "" {
		cfg.Device = *deviceName
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "hms: %v\n", err)
		return 1
	}

	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hms: %v\n", err)
		return 1
	}
	defer logFile.Close()

	store, err := openStore(cfg.SeedFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hms: %v\n", err)
		return 1
	}

	ctx := widgets.NewContext(cfg.Width)
	ctx.Cancel = cfg.Cancel

	var dev device.Device
	switch cfg.Device {
	case config.DeviceTcell:
		screen, err := tcell.NewDevice(cfg.Cancel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hms: failed to open terminal: %v\n", err)
			return 1
		}
		dev, ctx.Profile = screen, termenv.ANSI
	default:
		console := device.NewConsole(os.Stdin, os.Stdout)
		dev, ctx.Profile = console, console.Profile()
	}
	if cfg.Trace {
		dev = device.Logged(dev)
	}
	defer dev.Close()

	log.Printf("hms: starting with %s device, width %d", cfg.Device, cfg.Width)
	nav := navigator.New(dev, ctx).Separator(cfg.Separator)
	if err := nav.Run(views.NewLogin(nav, store)); err != nil {
		log.Printf("### %v", err)
		dev.Close()
		fmt.Fprintf(os.Stderr, "hms: %v\n", err)
		return 1
	}
	return 0
}

func openLog(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(file)
	return file, nil
}

func openStore(seedFile string) (*repository.Store, error) {
	if seedFile == "" {
		return repository.Seeded()
	}
	return repository.Open(seedFile)
}
