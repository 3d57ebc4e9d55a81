package components

import (
	cfg "github.com/automoto/folio/config"
	"github.com/yohamta/donburi"
)

// LocalizedView is anything that shows text and must be redrawn in the
// new language when it changes.
type LocalizedView interface {
	Localize(lang cfg.Language)
}

// LanguageSelector shows the startup language choice.
type LanguageSelector interface {
	ShowLanguageSelect()
	HideLanguageSelect()
}

type UIStateData struct {
	Language cfg.Language

	// Startup language choice is on screen
	LanguageSelectOpen bool
	Selector           LanguageSelector

	Views []LocalizedView

	// Draw collision boxes and hit areas
	Debug bool
}

// ModalOpen reports whether any modal currently owns the pointer.
func (u *UIStateData) ModalOpen() bool {
	return u.LanguageSelectOpen
}

var UIState = donburi.NewComponentType[UIStateData]()
