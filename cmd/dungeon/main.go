// Dungeon is a deterministic text adventure in the Zork tradition.
// Usage: dungeon [--version] [--plain] [--script <file>] [--seed <n>] [--config <file>] <game_directory>
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/halvard/dungeon/cli"
	"github.com/halvard/dungeon/config"
	"github.com/halvard/dungeon/engine/dispatch"
	"github.com/halvard/dungeon/loader"
	"github.com/halvard/dungeon/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var gameDir string
	var scriptFile string
	var configFile string
	var seedArg string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("dungeon %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			seedArg = args[i]
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--config requires a file path\n")
				os.Exit(1)
			}
			i++
			configFile = args[i]
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

	if gameDir == "" {
		gameDir = cfg.Game.Dir
	}
	if gameDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: dungeon [--version] [--plain] [--script <file>] [--seed <n>] [--config <file>] <game_directory>\n")
		os.Exit(1)
	}

	seed := cfg.Engine.Seed
	if seedArg != "" {
		seed, err = strconv.ParseInt(seedArg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid seed %q\n", seedArg)
			os.Exit(1)
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Load and compile Lua game content.
	result, err := loader.Load(gameDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	result.SetDifficulty(cfg.Engine.Difficulty)
	eng := result.NewEngine(seed, dispatch.Policy(cfg.Engine.Policy))
	game := result.World.Game

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		fmt.Printf("%s v%s by %s\n\n", game.Title, game.Version, game.Author)
		c := cli.New(eng)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		fmt.Printf("%s v%s by %s\n\n", game.Title, game.Version, game.Author)
		c := cli.New(eng)
		c.Run()
		return
	}

	if err := tui.Run(eng); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
