// Package world defines the six themed worlds of the island and the unlock
// chain that links them.
package world

import "github.com/vovakirdan/island-of-structure/internal/core"

// ID identifies a world. The zero value means "no world".
type ID string

const (
	Gate    ID = "gate"
	Canyon  ID = "canyon"
	Village ID = "village"
	Fields  ID = "fields"
	Bridge  ID = "bridge"
	Arena   ID = "arena"

	None ID = ""
)

// Character is the guide who greets the player in a world.
type Character struct {
	Name string
	Role string
	Icon string
}

// World is an immutable world descriptor.
type World struct {
	ID        ID
	Title     string
	Theme     string
	Next      ID // None for the last world
	Character Character
	Dialogue  []string
	Color     core.Color
}

// HasNext reports whether completing this world unlocks another.
func (w World) HasNext() bool {
	return w.Next != None
}

var worlds = []World{
	{
		ID:        Gate,
		Title:     "The Gate",
		Theme:     "mystical",
		Next:      Canyon,
		Character: Character{Name: "Gatekeeper", Role: "Guardian", Icon: "🧙"},
		Dialogue: []string{
			"Halt, Traveler.",
			"To enter the Island of Structure, you must see the patterns.",
			"Complete 10 challenges to prove your worth.",
		},
		Color: core.ColorBlue,
	},
	{
		ID:        Canyon,
		Title:     "Echo Canyon",
		Theme:     "canyon",
		Next:      Village,
		Character: Character{Name: "Echo", Role: "Guide", Icon: "🦇"},
		Dialogue: []string{
			"Hello... hello...!",
			"To cross the canyon, you must hop on the stones in rhythm.",
			"Listen to the numbers and find the missing beat.",
		},
		Color: core.ColorOrange,
	},
	{
		ID:        Village,
		Title:     "Village of Groups",
		Theme:     "village",
		Next:      Fields,
		Character: Character{Name: "Milo", Role: "Builder", Icon: "👷"},
		Dialogue: []string{
			"Good to see you!",
			"We build by sharing fairly. Division is just sharing!",
			"Help me split these bricks into equal piles.",
		},
		Color: core.ColorGreen,
	},
	{
		ID:        Fields,
		Title:     "Fields of Arrays",
		Theme:     "farm",
		Next:      Bridge,
		Character: Character{Name: "Rowan", Role: "Farmer", Icon: "🌾"},
		Dialogue: []string{
			"Welcome to the harvest.",
			"We plant in rows and columns. It's the fastest way to count!",
			"Show me you can grow structure from chaos.",
		},
		Color: core.ColorYellow,
	},
	{
		ID:        Bridge,
		Title:     "The Broken Bridge",
		Theme:     "engineering",
		Next:      Arena,
		Character: Character{Name: "Architect", Role: "Engineer", Icon: "📐"},
		Dialogue: []string{
			"The bridge is out!",
			"We have the answer, but we're missing a piece of the equation.",
			"Find the missing factor to fix the span.",
		},
		Color: core.ColorCyan,
	},
	{
		ID:        Arena,
		Title:     "The Arena",
		Theme:     "arcade",
		Next:      None,
		Character: Character{Name: "The Master", Role: "Champion", Icon: "🧞"},
		Dialogue: []string{
			"You have mastered the concepts.",
			"Now, pure speed. No helpers. No blocks.",
			"Enter the flow state.",
		},
		Color: core.ColorMagenta,
	},
}

// First returns the world every journey starts in.
func First() ID {
	return worlds[0].ID
}

// All returns every world in chain order. The slice is a copy.
func All() []World {
	out := make([]World, len(worlds))
	copy(out, worlds)
	return out
}

// Count returns the number of worlds.
func Count() int {
	return len(worlds)
}

// Lookup returns the world with the given ID.
func Lookup(id ID) (World, bool) {
	for _, w := range worlds {
		if w.ID == id {
			return w, true
		}
	}
	return World{}, false
}

// Index returns the chain position of id, or -1 if unknown.
func Index(id ID) int {
	for i, w := range worlds {
		if w.ID == id {
			return i
		}
	}
	return -1
}
