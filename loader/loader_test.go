package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeGame lays out lua files in a temp dir and returns its path.
func writeGame(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

const minimalGame = `
Game {
    title = "Minimal",
    version = "1.0",
    start = "hall",
}

Room "hall" {
    name = "Grand Hall",
    desc = "A grand hall.",
}
`

func TestLoad_MinimalGame(t *testing.T) {
	dir := writeGame(t, map[string]string{"game.lua": minimalGame})

	result, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if result.World.Game.Title != "Minimal" {
		t.Errorf("title = %q", result.World.Game.Title)
	}
	if result.World.Player.Location != "hall" {
		t.Errorf("player starts at %q, want hall", result.World.Player.Location)
	}
	room, ok := result.World.Rooms["hall"]
	if !ok {
		t.Fatal("room 'hall' not found")
	}
	if room.Description != "A grand hall." {
		t.Errorf("description = %q", room.Description)
	}
}

func TestLoad_MultipleFiles_GameFirst(t *testing.T) {
	// rooms.lua references nothing from game.lua, but game.lua must still
	// run first regardless of name ordering.
	dir := writeGame(t, map[string]string{
		"aaa.lua": `Room "cellar" { name = "Cellar", desc = "Dark.", exits = { up = "hall" } }`,
		"game.lua": `
Game { title = "Split", version = "1.0", start = "hall" }
Room "hall" { name = "Hall", desc = "A hall.", exits = { down = "cellar" } }
`,
	})

	result, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(result.World.Rooms) != 2 {
		t.Errorf("rooms = %d, want 2", len(result.World.Rooms))
	}
}

func TestLoad_NoLuaFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestLoad_LuaError(t *testing.T) {
	dir := writeGame(t, map[string]string{"game.lua": `this is not lua`})
	if _, err := Load(dir); err == nil {
		t.Error("expected error for invalid lua")
	}
}

func TestLoad_SandboxBlocksIO(t *testing.T) {
	dir := writeGame(t, map[string]string{"game.lua": minimalGame + `
local f = io and io.open("/etc/passwd") or nil
`})
	// The io library is never opened; referencing it must not crash the
	// loader, and dofile is removed outright.
	if _, err := Load(dir); err != nil {
		t.Fatalf("safe reference to missing io failed: %v", err)
	}

	dir = writeGame(t, map[string]string{"game.lua": minimalGame + `
dofile("evil.lua")
`})
	if _, err := Load(dir); err == nil {
		t.Error("dofile should be removed by the sandbox")
	}
}

func TestLoad_MissingStart(t *testing.T) {
	dir := writeGame(t, map[string]string{"game.lua": `
Game { title = "No Start", version = "1.0" }
Room "hall" { name = "Hall", desc = "A hall." }
`})
	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "start") {
		t.Errorf("expected missing-start error, got %v", err)
	}
}
