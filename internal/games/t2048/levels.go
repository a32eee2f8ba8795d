package t2048

// Level is one campaign stage. Its Target is installed as the model's
// max piece while the level is active.
type Level struct {
	ID     int
	Name   string
	Target int
	Spawn4 float64 // chance that a new tile is a 4
}

// Levels doubles the target from 128 up to 65536. From level 6 on the
// chance of a 4 grows as well.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 128, Spawn4: 0.10},
	{ID: 2, Name: "Getting Started", Target: 256, Spawn4: 0.10},
	{ID: 3, Name: "Building Momentum", Target: 512, Spawn4: 0.10},
	{ID: 4, Name: "The Climb", Target: 1024, Spawn4: 0.10},
	{ID: 5, Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
	{ID: 6, Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
	{ID: 7, Name: "Master Class", Target: 8192, Spawn4: 0.15},
	{ID: 8, Name: "Expert Challenge", Target: 16384, Spawn4: 0.18},
	{ID: 9, Name: "Grandmaster", Target: 32768, Spawn4: 0.20},
	{ID: 10, Name: "Ultimate Champion", Target: 65536, Spawn4: 0.25},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the 0-based level index, or nil when out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames lists the level names in campaign order.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
