package systems

import (
	"log"

	cfg "github.com/automoto/folio/config"
	"github.com/yohamta/donburi/ecs"
)

// saveSettings persists the chosen language; tests replace it.
var saveSettings = SaveSettings

// SetLanguage switches the interface language, closes the language choice
// if it is showing and re-localizes every registered view.
func SetLanguage(ecs *ecs.ECS, lang cfg.Language) {
	if !lang.Valid() {
		return
	}
	ui := GetOrCreateUIState(ecs)
	ui.Language = lang
	CloseLanguageSelect(ecs)
	relocalize(ecs)
	if err := saveSettings(&SavedSettings{Language: lang}); err != nil {
		log.Printf("Warning: Could not save language: %v", err)
	}
}

// ToggleLanguage flips between English and Japanese.
func ToggleLanguage(ecs *ecs.ECS) {
	SetLanguage(ecs, GetOrCreateUIState(ecs).Language.Toggle())
}

// OpenLanguageSelect shows the startup language choice.
func OpenLanguageSelect(ecs *ecs.ECS) {
	ui := GetOrCreateUIState(ecs)
	if ui.LanguageSelectOpen {
		return
	}
	ui.LanguageSelectOpen = true
	ReleaseVirtual(getOrCreateInput(ecs))
	if ui.Selector != nil {
		ui.Selector.ShowLanguageSelect()
	}
}

func CloseLanguageSelect(ecs *ecs.ECS) {
	ui := GetOrCreateUIState(ecs)
	if !ui.LanguageSelectOpen {
		return
	}
	ui.LanguageSelectOpen = false
	if ui.Selector != nil {
		ui.Selector.HideLanguageSelect()
	}
}

func relocalize(ecs *ecs.ECS) {
	ui := GetOrCreateUIState(ecs)
	for _, v := range ui.Views {
		v.Localize(ui.Language)
	}
	relocalizeDialogue(ecs, ui.Language)
}

// UpdateLanguage handles the toggle and download keys. Neither applies
// while the language choice is showing.
func UpdateLanguage(ecs *ecs.ECS) {
	ui := GetOrCreateUIState(ecs)
	if ui.LanguageSelectOpen {
		return
	}
	input := getOrCreateInput(ecs)
	if WasJustPressed(input, cfg.ActionToggleLanguage) {
		ToggleLanguage(ecs)
	}
	if WasJustPressed(input, cfg.ActionDownload) {
		OpenDownload(ecs)
	}
}
