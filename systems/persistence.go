package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/folio/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk.
// Trigger progress is deliberately not part of it.
type SavedSettings struct {
	Language cfg.Language `json:"language"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.App.Name,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing is
// stored or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	settings, err := decodeSettings(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return settings, nil
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	if !settings.Language.Valid() {
		settings.Language = cfg.English
	}
	return &settings, nil
}

// SaveSettings saves settings to disk. Callers log the failure.
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
