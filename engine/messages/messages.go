// Package messages holds named tables of templated message variants,
// selected through the deterministic RNG for reproducible flavor text.
package messages

import (
	"strings"

	"github.com/halvard/dungeon/engine/rng"
)

// Table groups message variants by category.
type Table struct {
	Tables map[string][]string
}

// Catalog is a registry of named message tables.
type Catalog struct {
	rng    *rng.Generator
	tables map[string]map[string][]string
}

// NewCatalog creates an empty catalog drawing from the given generator.
func NewCatalog(g *rng.Generator) *Catalog {
	return &Catalog{
		rng:    g,
		tables: map[string]map[string][]string{},
	}
}

// Register merges a named table into the catalog. Categories already
// present under the same name are overwritten.
func (c *Catalog) Register(name string, table Table) {
	dst, ok := c.tables[name]
	if !ok {
		dst = map[string][]string{}
		c.tables[name] = dst
	}
	for category, variants := range table.Tables {
		dst[category] = append([]string(nil), variants...)
	}
}

// Random selects one variant from table/category via the RNG and substitutes
// {placeholder} tokens from replacements. Unmatched placeholders are left
// intact. The second return is false when the table, category, or variant
// list is missing or empty.
func (c *Catalog) Random(table, category string, replacements map[string]string) (string, bool) {
	cats, ok := c.tables[table]
	if !ok {
		return "", false
	}
	variants, ok := cats[category]
	if !ok {
		return "", false
	}
	msg, ok := rng.Choice(c.rng, variants)
	if !ok {
		return "", false
	}
	for key, val := range replacements {
		msg = strings.ReplaceAll(msg, "{"+key+"}", val)
	}
	return msg, true
}

// RandomOr is Random with a literal fallback, so narration never fails
// even with incomplete message data.
func (c *Catalog) RandomOr(table, category string, replacements map[string]string, fallback string) string {
	if msg, ok := c.Random(table, category, replacements); ok {
		return msg
	}
	return fallback
}
