// Dungeond serves the dungeon engine over WebSocket for browser clients.
// Each connection gets its own freshly loaded world.
// Usage: dungeond [--version] [--config <file>] [--addr <host:port>] <game_directory>
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/halvard/dungeon/config"
	"github.com/halvard/dungeon/engine"
	"github.com/halvard/dungeon/engine/dispatch"
	"github.com/halvard/dungeon/loader"
	"github.com/halvard/dungeon/server"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var gameDir string
	var configFile string
	var addr string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("dungeond %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--config requires a file path\n")
				os.Exit(1)
			}
			i++
			configFile = args[i]
		case "--addr":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--addr requires a host:port\n")
				os.Exit(1)
			}
			i++
			addr = args[i]
		default:
			if gameDir == "" {
				gameDir = args[i]
			}
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if gameDir == "" {
		gameDir = cfg.Game.Dir
	}
	if gameDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: dungeond [--version] [--config <file>] [--addr <host:port>] <game_directory>\n")
		os.Exit(1)
	}

	log := server.NewLogger(cfg.Logging)

	// Fail fast on broken game content before accepting connections.
	if _, err := loader.Load(gameDir); err != nil {
		log.Error("game content failed to load", "dir", gameDir, "error", err)
		os.Exit(1)
	}

	factory := func() (*engine.Engine, error) {
		result, err := loader.Load(gameDir)
		if err != nil {
			return nil, err
		}
		result.SetDifficulty(cfg.Engine.Difficulty)
		seed := cfg.Engine.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return result.NewEngine(seed, dispatch.Policy(cfg.Engine.Policy)), nil
	}

	srv := server.New(cfg, log, factory)
	log.Info("listening", "addr", cfg.Server.Addr, "game", gameDir)
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
