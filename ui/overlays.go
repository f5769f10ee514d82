package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayCollisionBoxes  OverlayID = "collision_boxes"
	OverlayTargetPipe      OverlayID = "target_pipe"
	OverlayChampionNet     OverlayID = "champion_net"
	OverlaySelectedNet     OverlayID = "selected_net"
	OverlayGenerationStats OverlayID = "generation_stats"
	OverlayPerf            OverlayID = "perf"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID   // Unique identifier
	Name        string      // Display name
	Description string      // What this overlay shows
	Key         int32       // Keyboard key to toggle (0 = no key)
	KeyLabel    string      // Key label for display (e.g., "B", "N")
	Category    string      // Grouping (e.g., "network", "debug")
	Exclusive   []OverlayID // Other overlays to disable when this is enabled
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:          OverlayChampionNet,
		Name:        "Champion Network",
		Description: "Show the stored champion instead of the lead bird",
		Key:         rl.KeyN,
		KeyLabel:    "N",
		Category:    "network",
		Exclusive:   []OverlayID{OverlaySelectedNet},
	})

	r.Register(OverlayDescriptor{
		ID:          OverlaySelectedNet,
		Name:        "Selected Network",
		Description: "Show the network of the bird picked with the mouse",
		Key:         rl.KeyM,
		KeyLabel:    "M",
		Category:    "network",
		Exclusive:   []OverlayID{OverlayChampionNet},
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayTargetPipe,
		Name:        "Target Pipe",
		Description: "Line from the lead bird to the pair it steers by",
		Key:         rl.KeyT,
		KeyLabel:    "T",
		Category:    "perception",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayCollisionBoxes,
		Name:        "Collision Boxes",
		Description: "Outline bird and pipe boxes",
		Key:         rl.KeyB,
		KeyLabel:    "B",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayGenerationStats,
		Name:        "Generation Stats",
		Description: "Stats of the last finished generation",
		Key:         rl.KeyG,
		KeyLabel:    "G",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayPerf,
		Name:        "Performance",
		Description: "Per-phase tick timing",
		Key:         rl.KeyP,
		KeyLabel:    "P",
		Category:    "debug",
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = false
}

// Toggle switches an overlay on/off and handles exclusivity.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	desc, ok := r.byID[id]
	if !ok {
		return false
	}

	on := !r.enabled[id]
	r.enabled[id] = on
	if on {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
	return on
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeys toggles every overlay whose key was pressed this frame.
func (r *OverlayRegistry) HandleKeys() {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			r.Toggle(desc.ID)
		}
	}
}
