package models

import "sort"

// ArchetypeInfo describes one entry of the closed archetype enumeration.
type ArchetypeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Resonance   string `json:"resonance"`
}

// archetypeCatalog is the closed set of personality categories the quiz can
// produce. Score sets and legacy submissions are validated against it;
// Resonance feeds the session greeting templates.
var archetypeCatalog = map[string]ArchetypeInfo{
	"innocent": {
		Name:        "innocent",
		Description: "Optimistic and trusting; seeks safety and simple happiness.",
		Resonance:   "holds on to a simple, stubborn optimism",
	},
	"everyman": {
		Name:        "everyman",
		Description: "Grounded and relatable; seeks belonging and connection.",
		Resonance:   "finds meaning in ordinary connection",
	},
	"hero": {
		Name:        "hero",
		Description: "Courageous and determined; proves worth through mastery.",
		Resonance:   "meets challenge head-on",
	},
	"caregiver": {
		Name:        "caregiver",
		Description: "Compassionate and generous; protects and cares for others.",
		Resonance:   "moves first to protect and nurture",
	},
	"explorer": {
		Name:        "explorer",
		Description: "Restless and independent; seeks freedom and discovery.",
		Resonance:   "is restless for the next horizon",
	},
	"rebel": {
		Name:        "rebel",
		Description: "Disruptive and radical; overturns what no longer works.",
		Resonance:   "questions every rule worth questioning",
	},
	"lover": {
		Name:        "lover",
		Description: "Passionate and committed; seeks intimacy and experience.",
		Resonance:   "leads with devotion and feeling",
	},
	"creator": {
		Name:        "creator",
		Description: "Imaginative and expressive; realizes a vision in form.",
		Resonance:   "needs to make something that lasts",
	},
	"jester": {
		Name:        "jester",
		Description: "Playful and spontaneous; lightens what is heavy.",
		Resonance:   "finds the lightness hiding in everything",
	},
	"sage": {
		Name:        "sage",
		Description: "Reflective and analytical; seeks truth through understanding.",
		Resonance:   "seeks wisdom before action",
	},
	"magician": {
		Name:        "magician",
		Description: "Visionary and transformative; makes the impossible real.",
		Resonance:   "senses how things could transform",
	},
	"ruler": {
		Name:        "ruler",
		Description: "Responsible and authoritative; creates order from chaos.",
		Resonance:   "takes responsibility for the whole",
	},
}

// Archetypes returns every archetype name in the closed enumeration, sorted
// for deterministic iteration.
func Archetypes() []string {
	names := make([]string, 0, len(archetypeCatalog))
	for name := range archetypeCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ArchetypeCatalog returns every catalog entry, sorted by name.
func ArchetypeCatalog() []ArchetypeInfo {
	names := Archetypes()
	infos := make([]ArchetypeInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, archetypeCatalog[name])
	}
	return infos
}

// IsArchetype reports whether name belongs to the closed enumeration.
func IsArchetype(name string) bool {
	_, ok := archetypeCatalog[name]
	return ok
}

// ArchetypeByName returns catalog info for a known archetype.
func ArchetypeByName(name string) (ArchetypeInfo, bool) {
	info, ok := archetypeCatalog[name]
	return info, ok
}
