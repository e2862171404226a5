package messages

import (
	"strings"
	"testing"

	"github.com/halvard/dungeon/engine/rng"
)

func testCatalog(seed int64) *Catalog {
	c := NewCatalog(rng.New(seed))
	c.Register("thief", Table{Tables: map[string][]string{
		"attack": {
			"The thief lunges at you with his {weapon}!",
			"The thief slashes wildly with his {weapon}.",
			"A quick thrust of the {weapon} barely misses you.",
		},
		"steal": {
			"A seedy-looking figure slips the {item} into his bag.",
		},
	}})
	return c
}

func TestCatalog_Deterministic(t *testing.T) {
	c1 := testCatalog(42)
	c2 := testCatalog(42)

	for i := 0; i < 20; i++ {
		a, ok1 := c1.Random("thief", "attack", nil)
		b, ok2 := c2.Random("thief", "attack", nil)
		if !ok1 || !ok2 {
			t.Fatal("expected messages")
		}
		if a != b {
			t.Fatalf("draw %d: got %q and %q from same seed", i, a, b)
		}
	}
}

func TestCatalog_Substitution(t *testing.T) {
	c := testCatalog(1)

	msg, ok := c.Random("thief", "steal", map[string]string{"item": "jeweled egg"})
	if !ok {
		t.Fatal("expected a message")
	}
	if !strings.Contains(msg, "jeweled egg") {
		t.Errorf("placeholder not substituted: %q", msg)
	}
	if strings.Contains(msg, "{item}") {
		t.Errorf("placeholder token left behind: %q", msg)
	}
}

func TestCatalog_UnmatchedPlaceholderLeftIntact(t *testing.T) {
	c := testCatalog(1)

	msg, ok := c.Random("thief", "attack", map[string]string{"nothing": "x"})
	if !ok {
		t.Fatal("expected a message")
	}
	if !strings.Contains(msg, "{weapon}") {
		t.Errorf("unmatched placeholder should remain: %q", msg)
	}
}

func TestCatalog_Missing(t *testing.T) {
	c := testCatalog(1)

	if _, ok := c.Random("nope", "attack", nil); ok {
		t.Error("expected miss for unknown table")
	}
	if _, ok := c.Random("thief", "nope", nil); ok {
		t.Error("expected miss for unknown category")
	}

	c.Register("empty", Table{Tables: map[string][]string{"none": {}}})
	if _, ok := c.Random("empty", "none", nil); ok {
		t.Error("expected miss for empty variant list")
	}
}

func TestCatalog_RegisterMerges(t *testing.T) {
	c := testCatalog(1)
	c.Register("thief", Table{Tables: map[string][]string{
		"flee": {"The thief darts into the shadows."},
	}})

	if _, ok := c.Random("thief", "flee", nil); !ok {
		t.Error("merged category missing")
	}
	if _, ok := c.Random("thief", "attack", nil); !ok {
		t.Error("original category lost after merge")
	}

	// Overwrite an existing category.
	c.Register("thief", Table{Tables: map[string][]string{
		"steal": {"replacement"},
	}})
	msg, _ := c.Random("thief", "steal", nil)
	if msg != "replacement" {
		t.Errorf("expected overwritten variant, got %q", msg)
	}
}

func TestCatalog_RandomOr(t *testing.T) {
	c := testCatalog(1)

	if msg := c.RandomOr("nope", "nope", nil, "fallback"); msg != "fallback" {
		t.Errorf("expected fallback, got %q", msg)
	}
	if msg := c.RandomOr("thief", "steal", nil, "fallback"); msg == "fallback" {
		t.Error("expected catalog message, got fallback")
	}
}
