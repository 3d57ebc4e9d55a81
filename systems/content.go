package systems

import (
	"log"

	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	"github.com/automoto/folio/content"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateContent returns the singleton Content component. A new one
// holds the embedded feed.
func GetOrCreateContent(ecs *ecs.ECS) *components.ContentData {
	entry, ok := components.Content.First(ecs.World)
	if !ok {
		entry = archetypes.Content.Spawn(ecs)
		components.Content.SetValue(entry, components.ContentData{Feed: content.Default()})
	}
	return components.Content.Get(entry)
}

// Feed returns the content currently shown.
func Feed(ecs *ecs.ECS) *content.Feed {
	return GetOrCreateContent(ecs).Feed
}

// UpdateContent swaps in a reloaded feed when the watcher reports a change.
// A file that fails to parse keeps the previous feed.
func UpdateContent(ecs *ecs.ECS) {
	c := GetOrCreateContent(ecs)
	if c.Watcher == nil {
		return
	}

	select {
	case path := <-c.Watcher.Events:
		feed, err := content.Load(path)
		if err != nil {
			log.Printf("Warning: Could not reload content: %v", err)
			return
		}
		c.Feed = feed
		log.Printf("Reloaded content from %s", path)
		relocalize(ecs)
	case err := <-c.Watcher.Errors:
		log.Printf("Warning: Content watcher: %v", err)
	default:
	}
}
