package datasource

// DataSource is the normalized snapshot a trigger produces each tick.
// Fields a trigger does not populate stay at their zero value and are
// read as 0, false or "" downstream.
type DataSource struct {
	ID   int
	Icon int
	Name string

	Value     float64
	Stacks    int
	MaxStacks int

	Duration float64
	Cooldown float64

	Active      bool
	ComboActive bool
	InRange     bool
	InLos       bool
	HasPet      bool

	Level int
	HP    int
	MaxHP int
	MP    int
	MaxMP int
	CP    int
	MaxCP int
	GP    int
	MaxGP int
}

// At returns data[i], or a zero DataSource when i is out of range
func At(data []DataSource, i int) DataSource {
	if i < 0 || i >= len(data) {
		return DataSource{}
	}
	return data[i]
}
