package components

import (
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/content"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DialogueView renders the modal dialogue. The ui package implements it;
// tests substitute a recorder.
type DialogueView interface {
	ShowDialogue(section content.Section, lang cfg.Language)
	HideDialogue()
}

type DialogueData struct {
	Open  bool
	Topic content.Topic
	View  DialogueView

	// Backdrop fade
	Fade  *gween.Tween
	Alpha float32
}

var Dialogue = donburi.NewComponentType[DialogueData]()
