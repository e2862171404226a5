// Package resolve maps object names from parsed commands to object IDs,
// producing scored candidate lists for disambiguation prompts.
package resolve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/halvard/dungeon/engine/fuzzy"
	"github.com/halvard/dungeon/engine/state"
	"github.com/halvard/dungeon/types"
)

// fuzzyThreshold is the floor for offering a near-miss name as a candidate.
const fuzzyThreshold = 0.6

// AmbiguityError indicates multiple objects matched a name. Candidates are
// ordered by score for the disambiguation callback.
type AmbiguityError struct {
	Name       string
	Candidates []types.Candidate
}

func (e *AmbiguityError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = c.DisplayName
	}
	return fmt.Sprintf("Which %s do you mean: %s?", e.Name, strings.Join(names, ", "))
}

// NotFoundError indicates no object matched a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("You can't see any %s here.", e.Name)
}

// Object resolves a name to a single object ID among what the player can
// reach: observable objects in the current room and carried items. Exact
// and alias matches beat fuzzy matches; several equally good matches
// surface as an AmbiguityError.
func Object(w *state.World, name string) (string, error) {
	candidates := Candidates(w, name)
	switch len(candidates) {
	case 0:
		return "", &NotFoundError{Name: name}
	case 1:
		return candidates[0].ID, nil
	}
	// A strictly best-scoring candidate wins outright.
	if candidates[0].Score > candidates[1].Score {
		return candidates[0].ID, nil
	}
	return "", &AmbiguityError{Name: name, Candidates: candidates}
}

// Candidates returns every reachable object matching the name, scored and
// sorted descending. Exact name/alias/ID matches score 1.0; fuzzy name
// matches score below that.
func Candidates(w *state.World, name string) []types.Candidate {
	nameLower := strings.ToLower(strings.TrimSpace(name))
	if nameLower == "" {
		return nil
	}

	var out []types.Candidate
	add := func(id, context string, score float64) {
		for _, c := range out {
			if c.ID == id {
				return
			}
		}
		out = append(out, types.Candidate{
			ID:          id,
			DisplayName: w.DisplayName(id),
			Score:       score,
			Context:     context,
		})
	}

	score := func(obj *types.Object) float64 {
		if matchesExact(obj, nameLower) {
			return 1.0
		}
		if m, ok := fuzzy.BestMatch(nameLower, objectNames(obj), fuzzyThreshold); ok {
			return m.Score
		}
		return 0
	}

	// Observable objects in the current room.
	for _, id := range w.ObjectsInRoom(w.Player.Location) {
		if s := score(w.Objects[id]); s > 0 {
			add(id, "here", s)
		}
	}
	// Carried items, regardless of room.
	for _, id := range w.Player.Inventory {
		if obj, ok := w.Objects[id]; ok {
			if s := score(obj); s > 0 {
				add(id, "carried", s)
			}
		}
	}
	// Contents of open containers that are in the room or carried.
	for _, id := range containedIDs(w) {
		obj := w.Objects[id]
		if s := score(obj); s > 0 {
			add(id, "inside", s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// containedIDs lists observable objects sitting in reachable open
// containers, sorted for stable candidate ordering.
func containedIDs(w *state.World) []string {
	var out []string
	for id, obj := range w.Objects {
		holder, ok := w.Objects[obj.Location]
		if !ok || holder.Container == nil || !holder.Container.Open {
			continue
		}
		reachable := holder.Location == w.Player.Location ||
			holder.Location == types.LocationPlayer
		if reachable && w.Observable(obj) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// matchesExact checks name, aliases, individual name words, and the
// underscore/hyphen-normalized ID.
func matchesExact(obj *types.Object, nameLower string) bool {
	if strings.ToLower(obj.Name) == nameLower {
		return true
	}
	for _, alias := range obj.Aliases {
		if strings.ToLower(alias) == nameLower {
			return true
		}
	}
	// "lamp" matches "brass lamp"; "guard" matches "castle guard".
	for _, word := range strings.Fields(strings.ToLower(obj.Name)) {
		if word == nameLower {
			return true
		}
	}
	idLower := strings.ToLower(obj.ID)
	if idLower == nameLower {
		return true
	}
	normalized := strings.NewReplacer(" ", "-").Replace(nameLower)
	return normalized == idLower
}

// objectNames collects the strings a fuzzy match may hit.
func objectNames(obj *types.Object) []string {
	names := []string{obj.Name, obj.ID}
	names = append(names, obj.Aliases...)
	return names
}
