package main

import (
	"fmt"
	"log"
	"os"

	"github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/automoto/folio/scenes"
	"github.com/automoto/folio/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

// Game runs the scene until a tick fails. After that it only shows the
// error.
type Game struct {
	scene Scene
	err   error
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	if g.err != nil {
		return nil
	}
	defer g.recoverInto("update")
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		screen.Fill(config.Black)
		systems.DrawError(screen, g.err)
		return
	}
	defer g.recoverInto("draw")
	g.scene.Draw(screen)
}

// recoverInto latches a panic as the game error.
func (g *Game) recoverInto(phase string) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	log.Printf("Game error during %s: %v", phase, err)
	g.err = err
}

// Halted reports whether a failed tick stopped the game.
func (g *Game) Halted() bool {
	return g.err != nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth, outsideHeight
	if w <= 0 || h <= 0 {
		w, h = config.Screen.DefaultWidth, config.Screen.DefaultHeight
	}
	if g.err == nil {
		g.scene.Resize(w, h)
	}
	return w, h
}

func main() {
	flags, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	config.App.SiteURL = flags.SiteURL

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if flags.FontPath != "" {
		if err := loadFallbackFont(flags.FontPath); err != nil {
			log.Printf("Warning: Could not load font %s: %v", flags.FontPath, err)
		}
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	opts := scenes.Options{
		ContentPath: flags.ContentPath,
		Watch:       flags.Watch,
		Debug:       flags.Debug,
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		opts.Preferred = saved.Language
	}
	if flags.Lang != "" {
		// validated by ParseFlags
		opts.Language, _ = config.ParseLanguage(flags.Lang)
	}

	scene := scenes.NewPortfolioScene(opts)
	defer scene.Close()

	ebiten.SetWindowSize(flags.Width, flags.Height)
	ebiten.SetWindowTitle(config.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}

func loadFallbackFont(path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return fonts.LoadFallback(ttf)
}
