package systems

import (
	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateUIState returns the singleton UIState component. A new one
// starts in English.
func GetOrCreateUIState(ecs *ecs.ECS) *components.UIStateData {
	entry, ok := components.UIState.First(ecs.World)
	if !ok {
		entry = archetypes.UIState.Spawn(ecs)
		components.UIState.SetValue(entry, components.UIStateData{Language: cfg.English})
	}
	return components.UIState.Get(entry)
}

// AddView registers a view to be re-localized on language changes and
// localizes it once.
func AddView(ecs *ecs.ECS, view components.LocalizedView) {
	ui := GetOrCreateUIState(ecs)
	ui.Views = append(ui.Views, view)
	view.Localize(ui.Language)
}

// ModalOpen reports whether the dialogue or the language choice is on
// screen. Gameplay pointer input is ignored while it is.
func ModalOpen(ecs *ecs.ECS) bool {
	return GetOrCreateDialogue(ecs).Open || GetOrCreateUIState(ecs).ModalOpen()
}
