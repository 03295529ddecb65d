// TerminalRPG is a single-player text RPG with a living world clock,
// scheduled NPCs, nocturnal monsters, and slot-based saves.
// Usage: terminalrpg [--version] [--plain] [--slot <n>] [--new] <game_directory>
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/FelpHendeson/TerminalRPG/cli"
	"github.com/FelpHendeson/TerminalRPG/engine"
	"github.com/FelpHendeson/TerminalRPG/engine/entity"
	"github.com/FelpHendeson/TerminalRPG/engine/save"
	"github.com/FelpHendeson/TerminalRPG/loader"
	"github.com/FelpHendeson/TerminalRPG/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	plain := false
	forceNew := false
	slot := 1
	var gameDir string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("terminalrpg %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--new":
			forceNew = true
		case "--slot":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--slot requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				fmt.Fprintf(os.Stderr, "--slot requires a number, got %q\n", args[i])
				os.Exit(1)
			}
			slot = n
		default:
			if gameDir == "" {
				gameDir = args[i]
			}
		}
	}

	if gameDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: terminalrpg [--version] [--plain] [--slot <n>] [--new] <game_directory>\n")
		os.Exit(1)
	}

	// Load and compile Lua game content.
	defs, err := loader.Load(gameDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	store := save.NewStore(saveDir())
	if !store.ValidSlot(slot) {
		fmt.Fprintf(os.Stderr, "Slot %d out of range 1..%d\n", slot, store.MaxSlots)
		os.Exit(1)
	}

	// Resume the chosen slot when it holds a save; otherwise start fresh.
	var session *engine.Session
	if !forceNew {
		if sd, err := store.Load(slot); err == nil {
			session = engine.NewFromSave(defs, sd)
			fmt.Printf("Resuming %s (level %d) from slot %d.\n\n", sd.Player.Name, sd.Player.Level, slot)
		}
	}
	if session == nil {
		session = engine.New(defs, entity.NewPlayer(promptName()))
	}

	c := cli.New(session, store)
	c.Slot = slot

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		fmt.Printf("%s v%s by %s\n\n", defs.Game.Title, defs.Game.Version, defs.Game.Author)
		c.Run()
		return
	}

	if err := tui.Run(c, tickInterval()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// promptName asks for the character name on stdin. Empty input falls back
// to the engine's default.
func promptName() string {
	fmt.Print("Name your character: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// saveDir resolves the save directory: TERMINALRPG_SAVE_DIR when set,
// otherwise ~/.terminalrpg/saves.
func saveDir() string {
	if dir := os.Getenv("TERMINALRPG_SAVE_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".terminalrpg", "saves")
}

// tickInterval resolves how much real time one game hour takes in the TUI.
// TERMINALRPG_MS_PER_HOUR in milliseconds; 0 disables the live clock.
func tickInterval() time.Duration {
	ms := os.Getenv("TERMINALRPG_MS_PER_HOUR")
	if ms == "" {
		return 0
	}
	n, err := strconv.Atoi(ms)
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
