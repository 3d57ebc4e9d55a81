package systems

import (
	"math"

	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/content"
	"github.com/automoto/folio/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// recorderView records what the dialogue was asked to show.
type recorderView struct {
	shown  []content.Section
	langs  []cfg.Language
	hidden int
}

func (r *recorderView) ShowDialogue(section content.Section, lang cfg.Language) {
	r.shown = append(r.shown, section)
	r.langs = append(r.langs, lang)
}

func (r *recorderView) HideDialogue() {
	r.hidden++
}

// recorderLocalizer records every language it was localized to, and the
// language choice being shown or hidden.
type recorderLocalizer struct {
	langs   []cfg.Language
	showing bool
}

func (r *recorderLocalizer) Localize(lang cfg.Language) {
	r.langs = append(r.langs, lang)
}

func (r *recorderLocalizer) ShowLanguageSelect() { r.showing = true }
func (r *recorderLocalizer) HideLanguageSelect() { r.showing = false }

// fixedMeasurer gives every label the same width.
type fixedMeasurer float64

func (m fixedMeasurer) Measure(string, fonts.FontName) float64 {
	return float64(m)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
