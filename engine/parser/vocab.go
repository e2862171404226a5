package parser

// VerbDef describes a canonical verb's grammar.
type VerbDef struct {
	Name           string
	RequiresObject bool
	AllowsIndirect bool
}

// Phrase maps a multi-word verb phrase to a canonical verb, optionally
// carrying an implied preposition ("turn on lamp" → turn/on).
type Phrase struct {
	Verb        string
	Preposition string
}

// Vocabulary is the parser's injected word data. The parser treats all of
// this as configuration, not constants.
type Vocabulary struct {
	Verbs        map[string]VerbDef
	Aliases      map[string]string // alias → canonical verb
	Phrases      map[string]Phrase // space-joined phrase → expansion
	Prepositions map[string]bool
	NoiseWords   map[string]bool // dropped during tokenization
	Pronouns     map[string]bool
	Directions   map[string]string // name or abbreviation → canonical

	FuzzyThreshold       float64 // minimum score to accept a fuzzy verb at all
	AutocorrectThreshold float64 // score at which correction is silent
	MaxSuggestions       int
}

// DefaultVocabulary returns the built-in word lists and thresholds.
// Callers may modify or replace any table before constructing a Parser.
func DefaultVocabulary() *Vocabulary {
	verbs := map[string]VerbDef{
		"go":        {Name: "go", RequiresObject: true},
		"look":      {Name: "look", AllowsIndirect: true},
		"examine":   {Name: "examine", RequiresObject: true},
		"take":      {Name: "take", RequiresObject: true, AllowsIndirect: true},
		"drop":      {Name: "drop", RequiresObject: true},
		"put":       {Name: "put", RequiresObject: true, AllowsIndirect: true},
		"open":      {Name: "open", RequiresObject: true, AllowsIndirect: true},
		"close":     {Name: "close", RequiresObject: true},
		"read":      {Name: "read", RequiresObject: true},
		"attack":    {Name: "attack", RequiresObject: true, AllowsIndirect: true},
		"give":      {Name: "give", RequiresObject: true, AllowsIndirect: true},
		"throw":     {Name: "throw", RequiresObject: true, AllowsIndirect: true},
		"turn":      {Name: "turn", RequiresObject: true, AllowsIndirect: true},
		"light":     {Name: "light", RequiresObject: true},
		"eat":       {Name: "eat", RequiresObject: true},
		"drink":     {Name: "drink", RequiresObject: true},
		"unlock":    {Name: "unlock", RequiresObject: true, AllowsIndirect: true},
		"inventory": {Name: "inventory"},
		"wait":      {Name: "wait"},
		"score":     {Name: "score"},
		"help":      {Name: "help"},
		"diagnose":  {Name: "diagnose"},
	}

	aliases := map[string]string{
		// Look / Examine
		"l":       "look",
		"x":       "examine",
		"inspect": "examine",
		"check":   "examine",
		"study":   "examine",
		"observe": "examine",
		"search":  "examine",

		// Movement
		"walk":   "go",
		"run":    "go",
		"head":   "go",
		"travel": "go",

		// Take / Drop
		"get":     "take",
		"grab":    "take",
		"carry":   "take",
		"discard": "drop",

		// Combat
		"hit":    "attack",
		"fight":  "attack",
		"strike": "attack",
		"kill":   "attack",
		"stab":   "attack",
		"smash":  "attack",

		// Give / Throw
		"offer": "give",
		"hand":  "give",
		"toss":  "throw",
		"hurl":  "throw",

		// Container / door
		"shut": "close",

		// Consumption
		"consume": "eat",
		"devour":  "eat",
		"quaff":   "drink",
		"sip":     "drink",

		// Misc
		"inv":    "inventory",
		"i":      "inventory",
		"z":      "wait",
		"peruse": "read",
	}

	phrases := map[string]Phrase{
		"pick up":    {Verb: "take"},
		"put down":   {Verb: "drop"},
		"look at":    {Verb: "examine"},
		"look in":    {Verb: "look", Preposition: "in"},
		"look under": {Verb: "look", Preposition: "under"},
		"turn on":    {Verb: "turn", Preposition: "on"},
		"turn off":   {Verb: "turn", Preposition: "off"},
		"switch on":  {Verb: "turn", Preposition: "on"},
		"switch off": {Verb: "turn", Preposition: "off"},
	}

	directions := map[string]string{
		"north": "north", "n": "north",
		"south": "south", "s": "south",
		"east": "east", "e": "east",
		"west": "west", "w": "west",
		"northeast": "northeast", "ne": "northeast",
		"northwest": "northwest", "nw": "northwest",
		"southeast": "southeast", "se": "southeast",
		"southwest": "southwest", "sw": "southwest",
		"up": "up", "u": "up",
		"down": "down", "d": "down",
	}

	return &Vocabulary{
		Verbs:   verbs,
		Aliases: aliases,
		Phrases: phrases,
		Prepositions: map[string]bool{
			"in": true, "on": true, "at": true, "to": true,
			"with": true, "from": true, "under": true, "off": true,
		},
		NoiseWords: map[string]bool{
			"the": true, "a": true, "an": true, "some": true,
		},
		Pronouns: map[string]bool{
			"it": true, "them": true, "that": true,
		},
		Directions:           directions,
		FuzzyThreshold:       0.6,
		AutocorrectThreshold: 0.75,
		MaxSuggestions:       3,
	}
}

// verbCandidates returns the union of verb names and aliases for fuzzy lookup.
func (v *Vocabulary) verbCandidates() []string {
	out := make([]string, 0, len(v.Verbs)+len(v.Aliases))
	for name := range v.Verbs {
		out = append(out, name)
	}
	for alias := range v.Aliases {
		out = append(out, alias)
	}
	return out
}

// canonical resolves a verb name or alias to its canonical VerbDef.
func (v *Vocabulary) canonical(word string) (VerbDef, bool) {
	if def, ok := v.Verbs[word]; ok {
		return def, true
	}
	if name, ok := v.Aliases[word]; ok {
		if def, ok := v.Verbs[name]; ok {
			return def, true
		}
	}
	return VerbDef{}, false
}
