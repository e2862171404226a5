// Package types defines the shared data structures for the Dungeon engine.
// This package contains only type definitions, no logic.
package types

import "time"

// LocationPlayer is the location marker for objects carried by the player.
const LocationPlayer = "player"

// ExitCondition gates a conditional exit on world state.
type ExitCondition struct {
	Kind           string // "object_open", "not_blocked", "flag_set", "has_item"
	Ref            string // object ID or flag name, per Kind
	FailureMessage string
}

// Exit is a directed connection out of a room.
type Exit struct {
	To        string
	Condition *ExitCondition // nil for unconditional exits
}

// Room is a location in the world.
type Room struct {
	ID               string
	Name             string
	Description      string // long description, shown on first visit
	ShortDescription string // shown on revisits; falls back to Description
	Visited          bool
	Exits            map[string]Exit // direction → exit
	Objects          []string        // object IDs initially placed here
}

// Container holds the openable/lockable state of an object.
type Container struct {
	Open     bool
	Locked   bool
	KeyID    string // object required to unlock
	Capacity int    // 0 = unlimited
}

// Light marks an object as a light source.
type Light struct {
	Lit bool
}

// Door marks an object as a door or barrier.
type Door struct {
	BlocksPassage bool
	KeyID         string // object required to pass, if any
}

// Combat holds actor-facing combat fields mirrored onto an object.
type Combat struct {
	Strength   int
	ActorState string // "armed", "unconscious", "disarmed", "dead"
}

// Object is a thing in the world: item, scenery, treasure, or the physical
// half of an actor. Capability sub-structs are nil when the object lacks
// that capability.
type Object struct {
	ID          string
	Name        string
	Aliases     []string
	Description string
	Initial     string // first-reveal description, used until Touched
	Location    string // room ID, actor ID, or LocationPlayer

	Portable   bool
	Visible    bool     // false = magically hidden (e.g. stolen by the thief)
	Hidden     bool     // puzzle-hidden, distinct from Visible
	VisibleFor []string // condition tags that must hold for the object to show
	Touched    bool

	Readable string // text revealed by "read"; empty = not readable
	Edible   bool
	Tool     string // tool/weapon typing, e.g. "weapon", "key"
	Value    int    // treasure value; 0 = worthless
	Sacred   bool   // never stealable

	Container *Container
	Light     *Light
	Door      *Door
	Combat    *Combat
}

// Player holds the player's runtime state.
type Player struct {
	Location  string
	Inventory []string
	Moves     int
	Score     int
}

// ParsedCommand is the parser's structured output for one command.
type ParsedCommand struct {
	Verb           string // empty when parsing failed
	DirectObject   string
	IndirectObject string
	Preposition    string
	Raw            string
	Tokens         []string

	Valid       bool
	Error       string
	Suggestions []string

	MatchScore         float64 // fuzzy score when the verb was auto-corrected
	Suggestion         string  // candidate verb awaiting confirmation
	SuggestionScore    float64
	RejectedConfidence float64 // best score when fuzzy matching failed
}

// CommandOutput is the engine's result for a single executed command.
type CommandOutput struct {
	Success bool
	Kind    string // "description", "error", "system", "help", "inventory", ...
	Lines   []string
	Meta    map[string]any
}

// CommandResult is the dispatcher's record of one command in a batch.
type CommandResult struct {
	Command string
	Output  CommandOutput
	Success bool
	Skipped bool
	Started time.Time
	Ended   time.Time
}

// ExecutionReport summarizes one dispatch of a command batch.
type ExecutionReport struct {
	Policy     string
	Total      int
	Executed   int
	Successful int
	Failed     int
	Skipped    int
	Results    []CommandResult
	Success    bool // AND of all non-skipped outcomes
	Started    time.Time
	Ended      time.Time
}

// Candidate is one entry in a disambiguation prompt.
type Candidate struct {
	ID          string
	DisplayName string
	Score       float64
	Context     string // where the candidate was seen, e.g. "here" or "carried"
}

// ActorState is the serializable snapshot of an actor.
type ActorState struct {
	ID          string
	Name        string
	Location    string // empty = nowhere
	Inventory   []string
	Mode        string
	Flags       map[string]any
	TickEnabled bool
}

// GameInfo holds game metadata from the world definition.
type GameInfo struct {
	Title   string
	Author  string
	Version string
	Start   string // starting room ID
	Intro   string
}
