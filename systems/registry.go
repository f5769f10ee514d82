package systems

// SystemInfo describes a simulation system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "core", "visual", "ai")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds the tick phases in execution order.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: "physics", Name: "Physics", Description: "Applies gravity and moves birds", Category: "physics"})
	r.Register(SystemInfo{ID: "pipes", Name: "Pipes", Description: "Scrolls, retires and spawns pipe pairs", Category: "world"})
	r.Register(SystemInfo{ID: "brains", Name: "Brains", Description: "Builds features and evaluates networks", Category: "ai"})
	r.Register(SystemInfo{ID: "collisions", Name: "Collisions", Description: "Removes crashed birds and stores the last survivor as champion", Category: "physics"})
	r.Register(SystemInfo{ID: "evolution", Name: "Evolution", Description: "Seeds the next generation after extinction", Category: "ai"})
	r.Register(SystemInfo{ID: "telemetry", Name: "Telemetry", Description: "Aggregates events and writes stats", Category: "internal"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
