// vector-sandbox is an interactive terminal for poking at vectors: set cartesian or
// spherical components, apply operators, and save/load snapshots
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/vector/persistence"
)

var (
	configFlag = flag.String("config", "vector-sandbox.toml", "Config file path")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/vector-sandbox.log")
	muteFlag   = flag.Bool("mute", false, "Disable feedback tones")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var store *persistence.Manager
	if cfg.Sandbox.Store != "" {
		store = persistence.NewManager(cfg.Sandbox.Store)
	}

	session, err := NewSession(cfg.Sandbox, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid initial vector: %v\n", err)
		os.Exit(1)
	}

	tones, err := newTonePlayer(cfg.Sandbox.Sound && !*muteFlag)
	if err != nil {
		// Non-fatal, sandbox runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	sb, err := NewSandbox(session, tones)
	if err != nil {
		tones.close()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	defer sb.cleanup()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			sb.cleanup()
			fmt.Fprintf(os.Stderr, "\nVECTOR-SANDBOX CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sb.run()
}
