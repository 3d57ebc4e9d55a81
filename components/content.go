package components

import (
	"github.com/automoto/folio/content"
	"github.com/yohamta/donburi"
)

type ContentData struct {
	Feed    *content.Feed
	Path    string           // external file, empty for the embedded feed
	Watcher *content.Watcher // nil unless hot reload is on
}

var Content = donburi.NewComponentType[ContentData]()
