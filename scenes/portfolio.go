package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/folio/assets"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/content"
	"github.com/automoto/folio/systems"
	"github.com/automoto/folio/systems/factory"
	"github.com/automoto/folio/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures the portfolio scene at startup.
type Options struct {
	// Language skips the language choice when valid. Otherwise the choice is
	// shown with Preferred selected underneath it.
	Language  cfg.Language
	Preferred cfg.Language

	ContentPath string
	Watch       bool
	Debug       bool
}

type PortfolioScene struct {
	ecs     *ecs.ECS
	overlay *ui.Overlay
	opts    Options
	once    sync.Once

	width, height int
}

func NewPortfolioScene(opts Options) *PortfolioScene {
	return &PortfolioScene{
		opts:   opts,
		width:  cfg.Screen.DefaultWidth,
		height: cfg.Screen.DefaultHeight,
	}
}

func (ps *PortfolioScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PortfolioScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Resize applies the window's outside size. It may be called before the
// first update; the size is then used when the world is built.
func (ps *PortfolioScene) Resize(width, height int) {
	ps.width, ps.height = width, height
	if ps.ecs == nil {
		return
	}
	if systems.ApplyViewport(ps.ecs, width, height) {
		ps.overlay.Resize(width, height)
	}
}

// Close stops the content watcher, if any.
func (ps *PortfolioScene) Close() error {
	if ps.ecs == nil {
		return nil
	}
	if w := systems.GetOrCreateContent(ps.ecs).Watcher; w != nil {
		return w.Close()
	}
	return nil
}

func (ps *PortfolioScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock and input first; ClearJustPressed strictly last
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	// Controls read the modal state before the overlay can close a modal
	// with the same click
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(ps.updateOverlay)
	ecs.AddSystem(systems.UpdateDialogue)
	ecs.AddSystem(systems.UpdateLanguage)
	ecs.AddSystem(systems.UpdateContent)
	// Triggers read the player's upward speed before the player moves
	ecs.AddSystem(systems.UpdateTriggers)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.ClearJustPressed)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawControls)
	ecs.AddRenderer(cfg.Default, systems.DrawTriggers)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	ecs.AddRenderer(cfg.Default, ps.drawOverlay)

	ps.ecs = ecs

	// World size first: the space, player and triggers are built from it
	systems.ApplyViewport(ps.ecs, ps.width, ps.height)
	vp := systems.GetOrCreateViewport(ps.ecs)
	factory.ResizeSpace(ps.ecs, int(vp.Width), int(vp.Height))

	factory.CreatePlayer(ps.ecs, cfg.Player.StartX, cfg.Player.StartY, systems.PlayerSize(vp.Width))
	factory.CreateTriggers(ps.ecs, assets.NewLayoutLoader().MustLoadLayout(), vp.Width, vp.Height)

	ps.loadContent()
	systems.GetOrCreateUIState(ps.ecs).Debug = ps.opts.Debug

	ps.overlay = ui.NewOverlay(ps.ecs)
	ps.overlay.Resize(int(vp.Width), int(vp.Height))
	systems.SetDialogueView(ps.ecs, ps.overlay)
	systems.GetOrCreateUIState(ps.ecs).Selector = ps.overlay
	systems.AddView(ps.ecs, ps.overlay)

	if ps.opts.Language.Valid() {
		systems.SetLanguage(ps.ecs, ps.opts.Language)
	} else {
		if ps.opts.Preferred.Valid() {
			systems.GetOrCreateUIState(ps.ecs).Language = ps.opts.Preferred
		}
		systems.OpenLanguageSelect(ps.ecs)
	}
}

// loadContent replaces the embedded feed with the external file and starts
// watching it when asked. Failures keep the embedded feed.
func (ps *PortfolioScene) loadContent() {
	c := systems.GetOrCreateContent(ps.ecs)
	if ps.opts.ContentPath == "" {
		return
	}
	c.Path = ps.opts.ContentPath

	feed, err := content.Load(ps.opts.ContentPath)
	if err != nil {
		log.Printf("Warning: Could not load content, using embedded: %v", err)
	} else {
		c.Feed = feed
	}

	if !ps.opts.Watch {
		return
	}
	w, err := content.NewWatcher(ps.opts.ContentPath)
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", ps.opts.ContentPath, err)
		return
	}
	c.Watcher = w
}

func (ps *PortfolioScene) updateOverlay(_ *ecs.ECS) {
	ps.overlay.Update()
}

func (ps *PortfolioScene) drawOverlay(_ *ecs.ECS, screen *ebiten.Image) {
	ps.overlay.Draw(screen)
}
