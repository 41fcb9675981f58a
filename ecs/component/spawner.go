package component

// Spawner produces one item kind on a fixed delay while the session runs and
// the item cap has room.
type Spawner struct {
	Kind    string
	Delay   float64
	Elapsed float64
	Waiting bool
}

var SpawnerComponent = NewComponent[Spawner]()
