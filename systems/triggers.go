package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/automoto/folio/shared/gamemath"
	"github.com/automoto/folio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// measurer sizes trigger labels; tests replace it.
var measurer fonts.Measurer = fonts.FaceMeasurer{}

// UpdateTriggers moves the triggers and opens the dialogue of the one the
// player jumps into. Must run before UpdatePlayer.
func UpdateTriggers(ecs *ecs.ECS) {
	vp := GetOrCreateViewport(ecs)
	clock := GetOrCreateClock(ecs)
	amp := AmplitudeMultiplier(vp.Width)

	triggers := orderedTriggers(ecs)
	for _, e := range triggers {
		positionTrigger(components.Trigger.Get(e), components.Object.Get(e).Object, clock.Elapsed, amp, vp.Width, vp.Height)
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry).Object
	physics := components.Physics.Get(playerEntry)

	hit := overlappingTrigger(playerObject)
	if hit == nil {
		return
	}

	trigger := components.Trigger.Get(hit)
	// Only a jump into the trigger opens it, never a fall onto it
	if physics.SpeedY >= 0 || !trigger.Ready(clock.Now, cfg.World.Cooldown) {
		return
	}
	if ShowDialogue(ecs, trigger.Topic) {
		trigger.Opened = true
	}
	// Stamped even when the dialogue did not open
	trigger.LastTriggered = clock.Now
	trigger.Triggered = true
}

// positionTrigger places a trigger for this tick and syncs its collision box
// with the size measured by the last draw.
func positionTrigger(t *components.TriggerData, obj *resolv.Object, elapsed, amp, width, height float64) {
	t.X = t.FactorX*width + gamemath.Oscillate(elapsed, t.MoveSpeed, t.Phase, t.Amplitude*amp)
	t.Y = t.FactorY * height

	obj.X, obj.Y = t.X, t.Y
	obj.W, obj.H = t.Width, t.Height
	obj.Update()
}

// overlappingTrigger returns the last trigger, in trigger order, that
// strictly overlaps the player box. The space narrows the candidates.
func overlappingTrigger(playerObject *resolv.Object) *donburi.Entry {
	check := playerObject.Check(0, 0, tags.ResolvTrigger)
	if check == nil {
		return nil
	}

	player := rectOf(playerObject)
	var hit *donburi.Entry
	hitOrder := math.MinInt
	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		t := components.Trigger.Get(e)
		if !player.Overlaps(triggerRect(t)) {
			continue
		}
		if t.Order >= hitOrder {
			hit, hitOrder = e, t.Order
		}
	}
	return hit
}

func rectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func triggerRect(t *components.TriggerData) gamemath.Rect {
	return gamemath.Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}
}

func orderedTriggers(ecs *ecs.ECS) []*donburi.Entry {
	var triggers []*donburi.Entry
	tags.Trigger.Each(ecs.World, func(e *donburi.Entry) {
		triggers = append(triggers, e)
	})
	sort.SliceStable(triggers, func(i, j int) bool {
		return components.Trigger.Get(triggers[i]).Order < components.Trigger.Get(triggers[j]).Order
	})
	return triggers
}

// measureTrigger sizes a trigger box around its label.
func measureTrigger(t *components.TriggerData, label string, width float64) {
	scale := UIScale(width)
	t.Width = measurer.Measure(label, triggerFont(width)) + math.Round(cfg.World.TriggerPadding*scale)
	t.Height = math.Round(cfg.World.TriggerHeight * scale)
}

// DrawTriggers measures and draws every trigger with its localized label.
// The measured size is what the next update collides with.
func DrawTriggers(ecs *ecs.ECS, screen *ebiten.Image) {
	vp := GetOrCreateViewport(ecs)
	lang := GetOrCreateUIState(ecs).Language
	feed := Feed(ecs)
	font := triggerFont(vp.Width)
	bob := gamemath.Bob(GetOrCreateClock(ecs).Elapsed, cfg.World.BobPeriod, cfg.World.BobAmplitude)

	for _, e := range orderedTriggers(ecs) {
		t := components.Trigger.Get(e)
		label := feed.Label(lang, t.Topic)
		measureTrigger(t, label, vp.Width)

		fill, shadow, border := cfg.World.Fill, cfg.World.Shadow, cfg.World.Border
		if t.Opened {
			fill, shadow, border = cfg.World.OpenedFill, cfg.World.OpenedShadow, cfg.World.OpenedBorder
		}

		x, y := float32(t.X), float32(t.Y+bob)
		w, h := float32(t.Width), float32(t.Height)
		off := float32(cfg.World.ShadowOffset)
		vector.FillRect(screen, x+off, y+off, w, h, shadow, false)
		vector.FillRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, float32(cfg.World.BorderWidth), border, false)

		drawCentered(screen, label, font, float64(x+w/2), float64(y+h/2), cfg.World.LabelColor)
	}
}

// drawCentered draws s centred on (cx, cy).
func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, name.Face(), op)
}
