package primitive

import "fmt"

// Interaction is the mouse cursor hint that accompanies a primitive tree.
// Renderers pass it through unchanged.
type Interaction uint8

const (
	Idle Interaction = iota
	Pointer
	Grab
	TextCursor
	Crosshair
	Working
	Grabbing
	ResizingHorizontally
	ResizingVertically
)

var interactionNames = [...]string{
	Idle:                 "idle",
	Pointer:              "pointer",
	Grab:                 "grab",
	TextCursor:           "text",
	Crosshair:            "crosshair",
	Working:              "working",
	Grabbing:             "grabbing",
	ResizingHorizontally: "resizing_horizontally",
	ResizingVertically:   "resizing_vertically",
}

func (i Interaction) String() string {
	if int(i) < len(interactionNames) {
		return interactionNames[i]
	}
	return fmt.Sprintf("Interaction(%d)", uint8(i))
}

// ParseInteraction is the inverse of Interaction.String. An empty string
// parses as Idle.
func ParseInteraction(s string) (Interaction, error) {
	if s == "" {
		return Idle, nil
	}
	for i, name := range interactionNames {
		if name == s {
			return Interaction(i), nil
		}
	}
	return Idle, fmt.Errorf("primitive: unknown interaction %q", s)
}
