package models

// Action is a named effect available at a board location. The identifier is
// resolved against the game service's static dispatch table.
type Action struct {
	// Desc is the player-facing description of the action
	Desc string `json:"desc"`

	// ID is the dispatch identifier
	ID string `json:"id"`
}

// Location is one stop on the board ring.
type Location struct {
	// Idx is the location's position on the ring, in [0, boardSize)
	Idx int `json:"idx"`

	// Name is the display name of the location
	Name string `json:"name"`

	// Actions are the effects a player may trigger here, in display order
	Actions []Action `json:"actions"`
}
