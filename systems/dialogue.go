package systems

import (
	"image/color"

	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/content"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDialogue returns the singleton Dialogue component, creating if needed.
func GetOrCreateDialogue(ecs *ecs.ECS) *components.DialogueData {
	entry, ok := components.Dialogue.First(ecs.World)
	if !ok {
		entry = archetypes.Dialogue.Spawn(ecs)
	}
	return components.Dialogue.Get(entry)
}

// SetDialogueView attaches the view that renders the dialogue.
func SetDialogueView(ecs *ecs.ECS, view components.DialogueView) {
	GetOrCreateDialogue(ecs).View = view
}

// ShowDialogue opens the dialogue for topic in the current language. It
// returns false, changing nothing, when a dialogue is already open or the
// language has no content for the topic.
func ShowDialogue(ecs *ecs.ECS, topic content.Topic) bool {
	d := GetOrCreateDialogue(ecs)
	if d.Open {
		return false
	}

	lang := GetOrCreateUIState(ecs).Language
	section, ok := Feed(ecs).Section(lang, topic)
	if !ok {
		return false
	}

	d.Open = true
	d.Topic = topic
	d.Fade = gween.New(d.Alpha, cfg.Dialogue.BackdropAlpha, cfg.Dialogue.FadeDuration, ease.OutQuad)
	if d.View != nil {
		d.View.ShowDialogue(section, lang)
	}
	return true
}

// CloseDialogue closes the dialogue. Closing a closed dialogue does nothing.
func CloseDialogue(ecs *ecs.ECS) {
	d := GetOrCreateDialogue(ecs)
	if !d.Open {
		return
	}
	// Clear state before the view runs: its close event calls back here
	d.Open = false
	d.Fade = nil
	d.Alpha = 0
	if d.View != nil {
		d.View.HideDialogue()
	}
}

// relocalizeDialogue shows the open dialogue again in lang, when lang has
// content for it.
func relocalizeDialogue(ecs *ecs.ECS, lang cfg.Language) {
	d := GetOrCreateDialogue(ecs)
	if !d.Open || d.View == nil {
		return
	}
	if section, ok := Feed(ecs).Section(lang, d.Topic); ok {
		d.View.ShowDialogue(section, lang)
	}
}

// UpdateDialogue handles the keyboard side of the dialogue: Escape closes
// it, the topic keys open one directly. It also advances the backdrop fade.
func UpdateDialogue(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	d := GetOrCreateDialogue(ecs)

	if d.Open && WasJustPressed(input, cfg.ActionClose) {
		CloseDialogue(ecs)
	} else if input.TopicKey > 0 && input.TopicKey <= len(content.Topics) && !GetOrCreateUIState(ecs).ModalOpen() {
		ShowDialogue(ecs, content.Topics[input.TopicKey-1])
	}

	if d.Fade != nil {
		alpha, done := d.Fade.Update(float32(GetOrCreateClock(ecs).Delta))
		d.Alpha = alpha
		if done {
			d.Fade = nil
		}
	}
}

// DrawBackdrop dims the world behind an open modal.
func DrawBackdrop(ecs *ecs.ECS, screen *ebiten.Image) {
	alpha := GetOrCreateDialogue(ecs).Alpha
	if GetOrCreateUIState(ecs).LanguageSelectOpen {
		alpha = cfg.Dialogue.SelectionAlpha
	}
	if alpha <= 0 {
		return
	}

	b := screen.Bounds()
	c := color.RGBA{A: uint8(alpha * 255)}
	// premultiplied: black keeps zero channels
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
