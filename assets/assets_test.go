package assets

import (
	"math"
	"testing"

	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/content"
)

func TestLoadLayout(t *testing.T) {
	layout := NewLayoutLoader().MustLoadLayout()

	if layout.Width != 800 || layout.Height != 600 {
		t.Fatalf("layout size = %dx%d, want 800x600", layout.Width, layout.Height)
	}

	want := []struct {
		topic content.Topic
		fx    float64
		fy    float64
	}{
		{content.About, 0.20, 0.6},
		{content.Skills, 0.60, 0.7},
		{content.Improve, 0.15, 0.5},
		{content.BestMe, 0.70, 0.56},
		{content.Tidbits, 0.35, 0.4},
	}
	if len(layout.Triggers) != len(want) {
		t.Fatalf("got %d triggers, want %d", len(layout.Triggers), len(want))
	}
	for i, w := range want {
		got := layout.Triggers[i]
		if got.Topic != w.topic {
			t.Errorf("trigger %d topic = %s, want %s", i, got.Topic, w.topic)
		}
		if got.Order != i {
			t.Errorf("trigger %d order = %d", i, got.Order)
		}
		if math.Abs(got.FactorX-w.fx) > 1e-9 || math.Abs(got.FactorY-w.fy) > 1e-9 {
			t.Errorf("trigger %s factors = (%v, %v), want (%v, %v)", got.Topic, got.FactorX, got.FactorY, w.fx, w.fy)
		}
	}
}

func TestLoadLayoutMissing(t *testing.T) {
	if _, err := NewLayoutLoader().LoadLayout("layout/missing.tmx"); err == nil {
		t.Fatal("expected error for missing layout")
	}
}

func TestValidateTriggers(t *testing.T) {
	all := func() []TriggerSpawn {
		spawns := make([]TriggerSpawn, len(content.Topics))
		for i, topic := range content.Topics {
			spawns[i] = TriggerSpawn{Topic: topic, Order: i}
		}
		return spawns
	}

	tests := []struct {
		name    string
		spawns  func() []TriggerSpawn
		wantErr bool
	}{
		{"one per topic", all, false},
		{"empty", func() []TriggerSpawn { return nil }, true},
		{"missing one", func() []TriggerSpawn { return all()[1:] }, true},
		{"extra spawn", func() []TriggerSpawn {
			return append(all(), TriggerSpawn{Topic: content.About, Order: 5})
		}, true},
		{"duplicate replaces a topic", func() []TriggerSpawn {
			s := all()
			s[4].Topic = content.About
			return s
		}, true},
		{"unknown topic", func() []TriggerSpawn {
			s := all()
			s[0].Topic = "contact"
			return s
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTriggers(tt.spawns())
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateTriggers() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlayerPixels(t *testing.T) {
	for _, state := range []cfg.StateID{cfg.Idle, cfg.Running, cfg.Jump} {
		t.Run(state.String(), func(t *testing.T) {
			img, err := PlayerPixels(state)
			if err != nil {
				t.Fatalf("PlayerPixels: %v", err)
			}
			if b := img.Bounds(); b.Dx() != SpriteSize || b.Dy() != SpriteSize {
				t.Fatalf("bounds = %v", b)
			}
			opaque := 0
			for i := 3; i < len(img.Pix); i += 4 {
				if img.Pix[i] != 0 {
					opaque++
				}
			}
			if opaque == 0 {
				t.Fatal("sprite is empty")
			}
		})
	}
	if _, err := PlayerPixels(cfg.StateNone); err == nil {
		t.Fatal("expected error for unknown state")
	}
}

func TestBackgroundPixelsIsOpaque(t *testing.T) {
	img := BackgroundPixels()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d not opaque", i/4)
		}
	}
}

func TestShadowPixelsFadesOut(t *testing.T) {
	img := ShadowPixels(cfg.Player.ShadowColor)
	centre := img.RGBAAt(ShadowWidth/2, ShadowHeight/2).A
	corner := img.RGBAAt(0, 0).A
	if centre == 0 {
		t.Fatal("centre is transparent")
	}
	if corner != 0 {
		t.Fatalf("corner alpha = %d, want 0", corner)
	}
	if edge := img.RGBAAt(2, ShadowHeight/2).A; edge >= centre {
		t.Fatalf("edge alpha %d not below centre %d", edge, centre)
	}
}
