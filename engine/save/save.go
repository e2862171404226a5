// Package save implements JSON serialization and deserialization of the
// full game state: rooms, objects, player, actors, and the RNG stream.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/halvard/dungeon/engine/state"
	"github.com/halvard/dungeon/types"
)

// FormatVersion guards against loading incompatible save files.
const FormatVersion = 1

// RoomState is the dynamic part of a room worth persisting.
type RoomState struct {
	Visited bool `json:"visited"`
}

// Payload is the JSON save format. It is sufficient for exact restoration:
// object locations/visibility/properties, player state, actor modes and
// inventories, and the RNG seed plus position.
type Payload struct {
	Format      int                      `json:"format"`
	Game        string                   `json:"game"`
	Version     string                   `json:"version"`
	Player      types.Player             `json:"player"`
	Rooms       map[string]RoomState     `json:"rooms"`
	Objects     map[string]*types.Object `json:"objects"`
	Actors      []types.ActorState       `json:"actors"`
	Flags       map[string]bool          `json:"flags"`
	RNGSeed     int64                    `json:"rng_seed"`
	RNGPosition int64                    `json:"rng_position"`
}

// Snapshot captures the world and actor state as JSON bytes.
func Snapshot(w *state.World, actors []types.ActorState, rngSeed, rngPosition int64) ([]byte, error) {
	p := Payload{
		Format:      FormatVersion,
		Game:        w.Game.Title,
		Version:     w.Game.Version,
		Player:      *w.Player,
		Rooms:       map[string]RoomState{},
		Objects:     w.Objects,
		Actors:      actors,
		Flags:       w.Flags,
		RNGSeed:     rngSeed,
		RNGPosition: rngPosition,
	}
	for id, room := range w.Rooms {
		p.Rooms[id] = RoomState{Visited: room.Visited}
	}
	return json.MarshalIndent(p, "", "  ")
}

// Load parses and validates save bytes without touching any live state.
// Corrupt or incompatible data fails closed: the caller's world is only
// modified after Load succeeds in full.
func Load(data []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse save data: %w", err)
	}
	if p.Format != FormatVersion {
		return nil, fmt.Errorf("unsupported save format %d", p.Format)
	}
	if p.Player.Location == "" {
		return nil, fmt.Errorf("save data missing player location")
	}

	// Never hand back nil maps.
	if p.Rooms == nil {
		p.Rooms = map[string]RoomState{}
	}
	if p.Objects == nil {
		p.Objects = map[string]*types.Object{}
	}
	if p.Flags == nil {
		p.Flags = map[string]bool{}
	}
	if p.Player.Inventory == nil {
		p.Player.Inventory = []string{}
	}
	for id, obj := range p.Objects {
		if obj == nil {
			return nil, fmt.Errorf("save data has null object %q", id)
		}
	}
	return &p, nil
}
