package triggers

import (
	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

// Synthetic values returned while previewing. PreviewValue is written to
// Value, Duration and Cooldown so the preview countdown has a start point.
const (
	PreviewValue     = 10.0
	PreviewMaxStacks = 3
)

// MaxLevel is the level cap a level condition compares against when set to
// compare against the maximum
const MaxLevel = 100

func previewData(d *gamestate.Descriptor) datasource.DataSource {
	ds := datasource.DataSource{
		Value:       PreviewValue,
		Duration:    PreviewValue,
		Cooldown:    PreviewValue,
		Stacks:      PreviewMaxStacks,
		MaxStacks:   PreviewMaxStacks,
		Active:      true,
		ComboActive: true,
		InRange:     true,
		InLos:       true,
	}
	if d != nil {
		ds.ID = d.ID
		ds.Icon = d.Icon
		ds.Name = d.Name
		if d.MaxStacks > 0 {
			ds.Stacks = d.MaxStacks
			ds.MaxStacks = d.MaxStacks
		}
	}
	return ds
}

func previewVitals(ds datasource.DataSource) datasource.DataSource {
	ds.Level = 90
	ds.HP, ds.MaxHP = 75_000, 100_000
	ds.MP, ds.MaxMP = 8_000, 10_000
	ds.CP, ds.MaxCP = 500, 600
	ds.GP, ds.MaxGP = 700, 900
	ds.HasPet = true
	return ds
}

func firstDescriptor(ds []gamestate.Descriptor) *gamestate.Descriptor {
	if len(ds) == 0 {
		return nil
	}
	return &ds[0]
}
