package config

// StateID identifies the visual variant of the player.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Running
	Jump
)

// StateToName maps each variant to its sprite name.
var StateToName = map[StateID]string{
	Idle:    "idle",
	Running: "run",
	Jump:    "jump",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "none"
}
