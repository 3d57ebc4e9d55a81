package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/automoto/folio/content"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:layout
	layoutFS embed.FS
)

// TriggerSpawn places one topic trigger. The position is stored as a
// fraction of the viewport so the layout follows the window size.
type TriggerSpawn struct {
	Topic   content.Topic
	Order   int
	FactorX float64
	FactorY float64
}

// Layout is the trigger arrangement authored in Tiled.
type Layout struct {
	Name     string
	Width    int // authored map size in pixels
	Height   int
	Triggers []TriggerSpawn
}

type LayoutLoader struct{}

func NewLayoutLoader() *LayoutLoader {
	return &LayoutLoader{}
}

// MustLoadLayout loads the embedded trigger layout, panicking on error.
func (l *LayoutLoader) MustLoadLayout() Layout {
	layout, err := l.LoadLayout(path.Join("layout", "triggers.tmx"))
	if err != nil {
		panic(err)
	}
	return layout
}

// LoadLayout reads a Tiled map from the embedded layout directory. Every
// object in the "Triggers" group becomes a spawn; its topic comes from the
// "topic" property, falling back to the object name.
func (l *LayoutLoader) LoadLayout(layoutPath string) (Layout, error) {
	levelMap, err := tiled.LoadFile(layoutPath, tiled.WithFileSystem(layoutFS))
	if err != nil {
		return Layout{}, fmt.Errorf("load layout %s: %w", layoutPath, err)
	}

	layout := Layout{
		Name:   layoutPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	if layout.Width <= 0 || layout.Height <= 0 {
		return Layout{}, fmt.Errorf("layout %s has no size", layoutPath)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Triggers" {
			continue
		}
		for _, o := range og.Objects {
			topic := content.Topic(o.Properties.GetString("topic"))
			if topic == "" {
				topic = content.Topic(o.Name)
			}
			layout.Triggers = append(layout.Triggers, TriggerSpawn{
				Topic:   topic,
				Order:   o.Properties.GetInt("order"),
				FactorX: o.X / float64(layout.Width),
				FactorY: o.Y / float64(layout.Height),
			})
		}
	}

	if err := validateTriggers(layout.Triggers); err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", layoutPath, err)
	}

	// Later entries win overlaps, so the order must be stable
	sort.SliceStable(layout.Triggers, func(i, j int) bool {
		return layout.Triggers[i].Order < layout.Triggers[j].Order
	})

	return layout, nil
}

// validateTriggers requires exactly one spawn per topic.
func validateTriggers(spawns []TriggerSpawn) error {
	if len(spawns) != len(content.Topics) {
		return fmt.Errorf("has %d triggers, want %d", len(spawns), len(content.Topics))
	}
	seen := make(map[content.Topic]bool, len(spawns))
	for _, s := range spawns {
		if seen[s.Topic] {
			return fmt.Errorf("topic %q placed twice", s.Topic)
		}
		seen[s.Topic] = true
	}
	for _, topic := range content.Topics {
		if !seen[topic] {
			return fmt.Errorf("topic %q has no trigger", topic)
		}
	}
	return nil
}
