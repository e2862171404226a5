// Package engine owns room/object/player state and applies single-command
// effects: movement, object manipulation, combat, and actor ticks. Batches
// of commands are split and dispatched through engine/dispatch.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/halvard/dungeon/engine/actors"
	"github.com/halvard/dungeon/engine/dispatch"
	"github.com/halvard/dungeon/engine/messages"
	"github.com/halvard/dungeon/engine/parser"
	"github.com/halvard/dungeon/engine/resolve"
	"github.com/halvard/dungeon/engine/rng"
	"github.com/halvard/dungeon/engine/save"
	"github.com/halvard/dungeon/engine/state"
	"github.com/halvard/dungeon/types"
)

// DisambiguateFunc chooses between candidate objects. Returning nil cancels
// the command.
type DisambiguateFunc func(candidates []types.Candidate, prompt string) *types.Candidate

// AutocorrectFunc confirms or rejects a suggested verb correction.
type AutocorrectFunc func(original, suggestion string, confidence float64) bool

// defaultAutocorrectConfidence is the acceptance floor used when no
// autocorrect callback is registered, so headless runs never block.
const defaultAutocorrectConfidence = 0.65

// Engine holds the world, the deterministic RNG, and the command pipeline.
type Engine struct {
	World   *state.World
	RNG     *rng.Generator
	Parser  *parser.Parser
	Catalog *messages.Catalog
	Policy  dispatch.Policy

	// Optional UI suspend points. Nil values resolve deterministically:
	// disambiguation picks the first candidate, autocorrect applies the
	// fixed confidence threshold.
	Disambiguate DisambiguateFunc
	Autocorrect  AutocorrectFunc

	actorList   []actors.Actor
	actorByObj  map[string]actors.Actor
	playerHits  float64 // player's chance to land a blow
	trollDisarm float64 // chance a landed blow disarms an armed troll
}

// New creates an engine over a world with a seeded RNG. Player-side combat
// numbers start at the normal difficulty tier.
func New(w *state.World, seed int64) *Engine {
	g := rng.New(seed)
	e := &Engine{
		World:      w,
		RNG:        g,
		Parser:     parser.New(nil),
		Catalog:    messages.NewCatalog(g),
		Policy:     dispatch.FailEarly,
		actorByObj: map[string]actors.Actor{},
	}
	e.SetDifficulty(actors.Normal)
	return e
}

// SetDifficulty applies a profile's player-side combat numbers. Each actor
// carries its own profile for the actor-side numbers.
func (e *Engine) SetDifficulty(p actors.Difficulty) {
	e.playerHits = p.PlayerHitProbability
	e.trollDisarm = p.DisarmProbability
}

// AddActor registers an actor, bound to the GameObject the player interacts
// with (attack, give).
func (e *Engine) AddActor(a actors.Actor, objectID string) {
	e.actorList = append(e.actorList, a)
	if objectID != "" {
		e.actorByObj[objectID] = a
	}
}

// Actors returns the registered actors in registration order.
func (e *Engine) Actors() []actors.Actor {
	return e.actorList
}

// Step splits raw input into commands and dispatches them under the
// engine's policy. This is the main UI entry point.
func (e *Engine) Step(raw string) types.ExecutionReport {
	split := parser.SplitCommands(raw, nil)
	return dispatch.Run(split.Commands, e.Policy, dispatch.ExecutorFunc(e.Execute))
}

// Execute parses and runs a single command.
func (e *Engine) Execute(command string) types.CommandOutput {
	cmd := e.Parser.Parse(command)

	if !cmd.Valid {
		out := errorOutput(cmd.Error)
		if len(cmd.Suggestions) > 0 {
			out.Lines = append(out.Lines,
				"Did you mean: "+strings.Join(cmd.Suggestions, ", ")+"?")
			out.Meta = map[string]any{"suggestions": cmd.Suggestions}
		}
		return out
	}

	// Flagged fuzzy correction: confirm via callback or the fixed default.
	if cmd.Suggestion != "" {
		accept := e.confirmAutocorrect(tokenOrRaw(cmd), cmd.Suggestion, cmd.SuggestionScore)
		if !accept {
			return errorOutput(fmt.Sprintf("I don't understand %q.", tokenOrRaw(cmd)))
		}
	}

	return e.run(cmd)
}

func tokenOrRaw(cmd types.ParsedCommand) string {
	if len(cmd.Tokens) > 0 {
		return cmd.Tokens[0]
	}
	return cmd.Raw
}

func (e *Engine) confirmAutocorrect(original, suggestion string, confidence float64) bool {
	if e.Autocorrect != nil {
		return e.Autocorrect(original, suggestion, confidence)
	}
	return confidence >= defaultAutocorrectConfidence
}

// run routes a valid command to its verb handler.
func (e *Engine) run(cmd types.ParsedCommand) types.CommandOutput {
	var out types.CommandOutput
	turn := true // whether this command consumes a game turn

	switch cmd.Verb {
	case "go":
		out = e.cmdGo(cmd.DirectObject)
	case "look":
		if cmd.DirectObject == "" {
			out = e.describeRoom(e.World.Player.Location, true)
		} else {
			out = e.cmdExamine(cmd)
		}
		turn = false
	case "examine", "read":
		out = e.cmdExamine(cmd)
		turn = false
	case "take":
		out = e.cmdTake(cmd)
	case "drop":
		out = e.cmdDrop(cmd)
	case "put":
		out = e.cmdPut(cmd)
	case "throw":
		out = e.cmdThrow(cmd)
	case "open":
		out = e.cmdOpen(cmd)
	case "close":
		out = e.cmdClose(cmd)
	case "unlock":
		out = e.cmdUnlock(cmd)
	case "turn":
		out = e.cmdTurn(cmd)
	case "light":
		out = e.cmdLight(cmd, true)
	case "attack":
		out = e.cmdAttack(cmd)
	case "give":
		out = e.cmdGive(cmd)
	case "eat", "drink":
		out = e.cmdConsume(cmd)
	case "inventory":
		out = e.cmdInventory()
		turn = false
	case "wait":
		out = descOutput("Time passes.")
	case "score":
		out = e.cmdScore()
		turn = false
	case "diagnose":
		out = systemOutput("You are in perfect health.")
		turn = false
	case "help":
		out = e.cmdHelp()
		turn = false
	default:
		out = errorOutput(fmt.Sprintf("You can't %s here.", cmd.Verb))
	}

	if turn && out.Success {
		e.World.Player.Moves++
		e.tickActors(&out)
	}
	return out
}

// tickActors runs every tick-enabled actor's autonomous behavior and
// appends any narration to the command output.
func (e *Engine) tickActors(out *types.CommandOutput) {
	ctx := e.actorContext()
	for _, a := range e.actorList {
		if !a.TickEnabled() {
			continue
		}
		if lines := a.OnTick(ctx); len(lines) > 0 {
			out.Lines = append(out.Lines, lines...)
		}
	}
}

func (e *Engine) actorContext() *actors.Context {
	return &actors.Context{
		RNG:             e.RNG,
		World:           e.World.Objects,
		Messages:        e.Catalog,
		PlayerRoom:      e.World.Player.Location,
		PlayerInventory: &e.World.Player.Inventory,
	}
}

// resolveObject maps a name to an object ID, running the disambiguation
// suspend point when needed. The returned output is non-nil on failure.
func (e *Engine) resolveObject(name string) (string, *types.CommandOutput) {
	id, err := resolve.Object(e.World, name)
	if err == nil {
		return id, nil
	}

	if amb, ok := err.(*resolve.AmbiguityError); ok {
		choice := e.disambiguate(amb.Candidates, amb.Error())
		if choice == nil {
			out := errorOutput("Never mind.")
			return "", &out
		}
		return choice.ID, nil
	}

	out := errorOutput(err.Error())
	return "", &out
}

func (e *Engine) disambiguate(candidates []types.Candidate, prompt string) *types.Candidate {
	if e.Disambiguate != nil {
		return e.Disambiguate(candidates, prompt)
	}
	if len(candidates) == 0 {
		return nil
	}
	return &candidates[0]
}

// --- Movement and description ---

func (e *Engine) cmdGo(direction string) types.CommandOutput {
	if direction == "" {
		return errorOutput("Go where?")
	}

	target, failure, ok := e.World.EvaluateExit(e.World.Player.Location, direction)
	if !ok {
		return errorOutput(failure)
	}

	e.World.Player.Location = target
	out := e.describeRoom(target, false)

	// Encounter hooks for actors in the destination room.
	ctx := e.actorContext()
	for _, a := range e.actorList {
		if a.Location() == target {
			out.Lines = append(out.Lines, a.OnEncounter(ctx)...)
		}
	}
	return out
}

// describeRoom narrates a room: long description on first visit (or when
// forced by "look"), short description on revisits.
func (e *Engine) describeRoom(roomID string, force bool) types.CommandOutput {
	room, ok := e.World.Rooms[roomID]
	if !ok {
		return errorOutput("You are somewhere unknown.")
	}

	var lines []string
	lines = append(lines, room.Name)
	if !room.Visited || force || room.ShortDescription == "" {
		lines = append(lines, room.Description)
	} else {
		lines = append(lines, room.ShortDescription)
	}
	room.Visited = true

	for _, id := range e.World.ObjectsInRoom(roomID) {
		obj := e.World.Objects[id]
		switch {
		case obj.Initial != "" && !obj.Touched:
			lines = append(lines, obj.Initial)
		case obj.Portable:
			lines = append(lines, fmt.Sprintf("There is a %s here.", obj.Name))
		}
	}

	if dirs := e.exitList(room); len(dirs) > 0 {
		lines = append(lines, "Exits: "+strings.Join(dirs, ", ")+".")
	}

	return types.CommandOutput{Success: true, Kind: "description", Lines: lines}
}

func (e *Engine) exitList(room *types.Room) []string {
	dirs := make([]string, 0, len(room.Exits))
	for dir := range room.Exits {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// --- Object manipulation ---

func (e *Engine) cmdExamine(cmd types.ParsedCommand) types.CommandOutput {
	if cmd.DirectObject == "" {
		return errorOutput(fmt.Sprintf("What do you want to %s?", cmd.Verb))
	}
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	obj := e.World.Objects[id]
	e.Parser.SetReferent(cmd.DirectObject)

	if cmd.Verb == "read" {
		if obj.Readable == "" {
			return errorOutput(fmt.Sprintf("There is nothing written on the %s.", obj.Name))
		}
		return descOutput(obj.Readable)
	}

	var lines []string
	if obj.Description != "" {
		lines = append(lines, obj.Description)
	} else {
		lines = append(lines, fmt.Sprintf("You see nothing special about the %s.", obj.Name))
	}

	if obj.Container != nil && obj.Container.Open {
		contents := e.contentsOf(id)
		if len(contents) == 0 {
			lines = append(lines, fmt.Sprintf("The %s is empty.", obj.Name))
		} else {
			var names []string
			for _, cid := range contents {
				names = append(names, e.World.DisplayName(cid))
			}
			lines = append(lines, fmt.Sprintf("The %s contains: %s.", obj.Name, strings.Join(names, ", ")))
		}
	}
	return types.CommandOutput{Success: true, Kind: "description", Lines: lines}
}

func (e *Engine) contentsOf(containerID string) []string {
	var out []string
	for id, obj := range e.World.Objects {
		if obj.Location == containerID && e.World.Observable(obj) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func (e *Engine) cmdTake(cmd types.ParsedCommand) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	obj := e.World.Objects[id]

	if e.World.HasItem(id) {
		return errorOutput("You already have that.")
	}
	if !obj.Portable {
		return errorOutput(fmt.Sprintf("You can't take the %s.", obj.Name))
	}

	// First touch of a treasure scores.
	if !obj.Touched && obj.Value > 0 {
		e.World.Player.Score += obj.Value
	}

	obj.Location = types.LocationPlayer
	obj.Touched = true
	e.World.Player.Inventory = append(e.World.Player.Inventory, id)
	e.Parser.SetReferent(cmd.DirectObject)
	return descOutput("Taken.")
}

func (e *Engine) cmdDrop(cmd types.ParsedCommand) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	if !e.World.HasItem(id) {
		return errorOutput("You don't have that.")
	}

	e.World.RemoveFromInventory(id)
	e.World.Objects[id].Location = e.World.Player.Location
	e.Parser.SetReferent(cmd.DirectObject)
	return descOutput("Dropped.")
}

// cmdThrow hurls a carried item. Thrown at an actor it lands as a weak
// attack (1 damage on a hit); either way the item ends up on the floor.
func (e *Engine) cmdThrow(cmd types.ParsedCommand) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	if !e.World.HasItem(id) {
		return errorOutput("You aren't carrying that.")
	}
	obj := e.World.Objects[id]

	e.World.RemoveFromInventory(id)
	obj.Location = e.World.Player.Location
	e.Parser.SetReferent(cmd.DirectObject)

	if cmd.IndirectObject == "" {
		return descOutput("Thrown.")
	}

	targetID, failOut := e.resolveObject(cmd.IndirectObject)
	if failOut != nil {
		return *failOut
	}
	target, ok := e.actorByObj[targetID]
	if !ok {
		return descOutput(fmt.Sprintf(
			"The %s bounces off the %s.", obj.Name, e.World.DisplayName(targetID)))
	}

	if !e.RNG.Bool(e.playerHits) {
		return types.CommandOutput{
			Success: true,
			Kind:    "combat",
			Lines: []string{fmt.Sprintf(
				"The %s sails past the %s and clatters to the floor.", obj.Name, target.Name())},
		}
	}

	lines, accepted := target.OnDamage(e.actorContext(), 1)
	if !accepted {
		out := errorOutput("")
		out.Lines = lines
		return out
	}
	return types.CommandOutput{Success: true, Kind: "combat", Lines: lines}
}

func (e *Engine) cmdPut(cmd types.ParsedCommand) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	if !e.World.HasItem(id) {
		return errorOutput("You aren't carrying that.")
	}

	destID, failOut := e.resolveObject(cmd.IndirectObject)
	if failOut != nil {
		return *failOut
	}
	dest := e.World.Objects[destID]
	if dest.Container == nil {
		return errorOutput(fmt.Sprintf("You can't put anything in the %s.", dest.Name))
	}
	if !dest.Container.Open {
		return errorOutput(fmt.Sprintf("The %s is closed.", dest.Name))
	}
	if limit := dest.Container.Capacity; limit > 0 && len(e.contentsOf(destID)) >= limit {
		return errorOutput(fmt.Sprintf("There's no room in the %s.", dest.Name))
	}

	e.World.RemoveFromInventory(id)
	e.World.Objects[id].Location = destID
	return descOutput("Done.")
}

func (e *Engine) cmdOpen(cmd types.ParsedCommand) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	obj := e.World.Objects[id]
	if obj.Container == nil {
		return errorOutput(fmt.Sprintf("You can't open the %s.", obj.Name))
	}
	if obj.Container.Locked {
		return errorOutput(fmt.Sprintf("The %s is locked.", obj.Name))
	}
	if obj.Container.Open {
		return errorOutput("It's already open.")
	}

	obj.Container.Open = true
	obj.Touched = true
	e.Parser.SetReferent(cmd.DirectObject)

	contents := e.contentsOf(id)
	if len(contents) > 0 {
		var names []string
		for _, cid := range contents {
			names = append(names, e.World.DisplayName(cid))
		}
		return descOutput(fmt.Sprintf("Opening the %s reveals: %s.", obj.Name, strings.Join(names, ", ")))
	}
	return descOutput("Opened.")
}

func (e *Engine) cmdClose(cmd types.ParsedCommand) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	obj := e.World.Objects[id]
	if obj.Container == nil {
		return errorOutput(fmt.Sprintf("You can't close the %s.", obj.Name))
	}
	if !obj.Container.Open {
		return errorOutput("It's already closed.")
	}
	obj.Container.Open = false
	return descOutput("Closed.")
}

func (e *Engine) cmdUnlock(cmd types.ParsedCommand) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	obj := e.World.Objects[id]
	if obj.Container == nil || !obj.Container.Locked {
		return errorOutput(fmt.Sprintf("The %s isn't locked.", obj.Name))
	}
	if cmd.IndirectObject == "" {
		return errorOutput(fmt.Sprintf("What do you want to unlock the %s with?", obj.Name))
	}

	keyID, failOut := e.resolveObject(cmd.IndirectObject)
	if failOut != nil {
		return *failOut
	}
	if !e.World.HasItem(keyID) {
		return errorOutput("You aren't carrying that.")
	}
	if obj.Container.KeyID != keyID {
		return errorOutput(fmt.Sprintf("The %s doesn't fit.", e.World.DisplayName(keyID)))
	}

	obj.Container.Locked = false
	return descOutput("Unlocked.")
}

func (e *Engine) cmdTurn(cmd types.ParsedCommand) types.CommandOutput {
	switch cmd.Preposition {
	case "on":
		return e.cmdLight(cmd, true)
	case "off":
		return e.cmdLight(cmd, false)
	}
	return errorOutput(fmt.Sprintf("Turning the %s does nothing.", cmd.DirectObject))
}

func (e *Engine) cmdLight(cmd types.ParsedCommand, on bool) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	obj := e.World.Objects[id]
	if obj.Light == nil {
		return errorOutput(fmt.Sprintf("You can't light the %s.", obj.Name))
	}
	if obj.Light.Lit == on {
		if on {
			return errorOutput("It's already on.")
		}
		return errorOutput("It's already off.")
	}

	obj.Light.Lit = on
	if on {
		return descOutput(fmt.Sprintf("The %s is now on.", obj.Name))
	}
	return descOutput(fmt.Sprintf("The %s is now off.", obj.Name))
}

// --- Combat and interaction with actors ---

func (e *Engine) cmdAttack(cmd types.ParsedCommand) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}

	target, ok := e.actorByObj[id]
	if !ok {
		return errorOutput(fmt.Sprintf("Attacking the %s is pointless.", e.World.DisplayName(id)))
	}

	ctx := e.actorContext()
	if !e.RNG.Bool(e.playerHits) {
		return types.CommandOutput{
			Success: true,
			Kind:    "combat",
			Lines: []string{e.Catalog.RandomOr("combat", "miss", nil,
				fmt.Sprintf("You swing at the %s and miss.", target.Name()))},
		}
	}

	// A clean hit on an armed troll can knock the axe loose instead of
	// wounding him.
	if troll, isTroll := target.(*actors.Troll); isTroll &&
		troll.State() == actors.TrollArmed && e.RNG.Bool(e.trollDisarm) {
		return types.CommandOutput{Success: true, Kind: "combat", Lines: troll.Disarm(ctx)}
	}

	damage := e.RNG.IntN(1, 3)
	lines, accepted := target.OnDamage(ctx, damage)
	if !accepted {
		out := errorOutput("")
		out.Lines = lines
		return out
	}
	return types.CommandOutput{Success: true, Kind: "combat", Lines: lines}
}

func (e *Engine) cmdGive(cmd types.ParsedCommand) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	if !e.World.HasItem(id) {
		return errorOutput("You aren't carrying that.")
	}

	recipientID, failOut := e.resolveObject(cmd.IndirectObject)
	if failOut != nil {
		return *failOut
	}
	recipient, ok := e.actorByObj[recipientID]
	if !ok {
		return errorOutput(fmt.Sprintf("The %s shows no interest.", e.World.DisplayName(recipientID)))
	}

	obj := e.World.Objects[id]
	thief, isThief := recipient.(*actors.Thief)
	if !isThief {
		return errorOutput(fmt.Sprintf("The %s ignores your offer.", recipient.Name()))
	}
	if err := thief.AcceptGift(id, obj.Value); err != nil {
		return errorOutput(err.Error())
	}

	e.World.RemoveFromInventory(id)
	obj.Location = thief.ID()
	obj.Visible = false

	if thief.Engrossed() {
		return descOutput(fmt.Sprintf(
			"The thief is taken aback by your unexpected generosity, and examines the %s with obvious delight.", obj.Name))
	}
	return descOutput(fmt.Sprintf("The thief stuffs the %s into his bag.", obj.Name))
}

func (e *Engine) cmdConsume(cmd types.ParsedCommand) types.CommandOutput {
	id, failOut := e.resolveObject(cmd.DirectObject)
	if failOut != nil {
		return *failOut
	}
	obj := e.World.Objects[id]
	if !obj.Edible {
		return errorOutput(fmt.Sprintf("I don't think the %s would agree with you.", obj.Name))
	}

	e.World.RemoveFromInventory(id)
	obj.Location = ""
	obj.Visible = false
	return descOutput("Thank you very much. It really hit the spot.")
}

// --- Informational commands ---

func (e *Engine) cmdInventory() types.CommandOutput {
	inv := e.World.Player.Inventory
	if len(inv) == 0 {
		return types.CommandOutput{Success: true, Kind: "inventory", Lines: []string{"You are empty-handed."}}
	}
	lines := []string{"You are carrying:"}
	for _, id := range inv {
		lines = append(lines, "  "+e.World.DisplayName(id))
	}
	return types.CommandOutput{Success: true, Kind: "inventory", Lines: lines}
}

func (e *Engine) cmdScore() types.CommandOutput {
	p := e.World.Player
	return systemOutput(fmt.Sprintf(
		"Your score is %d, in %d moves.", p.Score, p.Moves))
}

func (e *Engine) cmdHelp() types.CommandOutput {
	return types.CommandOutput{
		Success: true,
		Kind:    "help",
		Lines: []string{
			"Move with compass directions (north, sw, up). Other useful commands:",
			"look, examine <thing>, take, drop, put <x> in <y>, open, close, read,",
			"turn on/off, attack, throw <x> at <y>, give <x> to <y>, inventory, score, wait.",
			"Chain commands with \"and\" or commas: open mailbox and take leaflet.",
		},
	}
}

// --- Save / restore ---

// Save serializes the complete game state.
func (e *Engine) Save() ([]byte, error) {
	states := make([]types.ActorState, 0, len(e.actorList))
	for _, a := range e.actorList {
		states = append(states, a.Snapshot())
	}
	return save.Snapshot(e.World, states, e.RNG.Seed(), e.RNG.Position())
}

// Restore applies saved state atomically: the payload is fully parsed and
// validated first, so a corrupt save leaves the current game untouched.
func (e *Engine) Restore(data []byte) error {
	p, err := save.Load(data)
	if err != nil {
		return err
	}
	if _, ok := e.World.Rooms[p.Player.Location]; !ok {
		return fmt.Errorf("save data references unknown room %q", p.Player.Location)
	}
	byID := map[string]types.ActorState{}
	for _, s := range p.Actors {
		byID[s.ID] = s
	}
	for _, a := range e.actorList {
		if _, ok := byID[a.ID()]; !ok {
			return fmt.Errorf("save data missing actor %q", a.ID())
		}
	}

	// Validation passed; apply.
	*e.World.Player = p.Player
	e.World.Flags = p.Flags
	e.World.Objects = p.Objects
	for id, rs := range p.Rooms {
		if room, ok := e.World.Rooms[id]; ok {
			room.Visited = rs.Visited
		}
	}
	for _, a := range e.actorList {
		a.Restore(byID[a.ID()])
	}
	// Seek in place so the catalog's generator reference stays live.
	e.RNG.Seek(p.RNGSeed, p.RNGPosition)
	return nil
}

// --- Output helpers ---

func descOutput(lines ...string) types.CommandOutput {
	return types.CommandOutput{Success: true, Kind: "description", Lines: lines}
}

func errorOutput(msg string) types.CommandOutput {
	out := types.CommandOutput{Kind: "error"}
	if msg != "" {
		out.Lines = []string{msg}
	}
	return out
}

func systemOutput(lines ...string) types.CommandOutput {
	return types.CommandOutput{Success: true, Kind: "system", Lines: lines}
}
