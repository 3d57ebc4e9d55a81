package components

import (
	cfg "github.com/automoto/folio/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	FacingRight bool
	Variant     cfg.StateID

	// Ground shadow scale, also used as its opacity
	ShadowScale float64
}

var Player = donburi.NewComponentType[PlayerData]()
