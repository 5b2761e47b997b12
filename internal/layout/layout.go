package layout

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/element"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/repositories/elements"
	"github.com/KirkDiggler/trigger-overlay/internal/uuid"
)

// File is the on-disk layout
type File struct {
	Elements []*element.Element `yaml:"elements"`
}

// Loader reads layout files and fills in handles the author left out
type Loader struct {
	elementIDs   uuid.Generator
	conditionIDs uuid.Generator
}

// LoaderConfig holds the handle generators; both default to prefixed UUIDs
type LoaderConfig struct {
	ElementIDs   uuid.Generator
	ConditionIDs uuid.Generator
}

// NewLoader creates a layout loader
func NewLoader(cfg *LoaderConfig) *Loader {
	l := &Loader{
		elementIDs:   uuid.NewPrefixedGenerator("el"),
		conditionIDs: uuid.NewPrefixedGenerator("cond"),
	}
	if cfg == nil {
		return l
	}
	if cfg.ElementIDs != nil {
		l.elementIDs = cfg.ElementIDs
	}
	if cfg.ConditionIDs != nil {
		l.conditionIDs = cfg.ConditionIDs
	}
	return l
}

// Parse decodes a layout and normalizes every element
func (l *Loader) Parse(data []byte) ([]*element.Element, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, overlayerr.WrapWithCode(err, overlayerr.CodeInvalidArgument, "failed to parse layout")
	}

	seen := make(map[string]bool, len(f.Elements))
	out := make([]*element.Element, 0, len(f.Elements))
	for i, el := range f.Elements {
		if el == nil {
			continue
		}
		l.normalize(el)

		if err := el.Validate(); err != nil {
			return nil, overlayerr.Wrapf(err, "element %d", i+1)
		}
		if seen[el.ID] {
			return nil, overlayerr.InvalidArgumentf("duplicate element id %q", el.ID).
				WithMeta("element_id", el.ID)
		}
		seen[el.ID] = true
		out = append(out, el)
	}

	return out, nil
}

func (l *Loader) normalize(el *element.Element) {
	if el.ID == "" {
		el.ID = l.elementIDs.New()
	}

	el.Triggers.SetDefaults()

	chain := el.Chain()
	for _, cond := range chain.Conditions {
		if cond.ID == "" {
			cond.ID = l.conditionIDs.New()
		}
	}
	chain.UpdateTriggerCount(el.Triggers.Len())
}

// Load reads the layout at path
func (l *Loader) Load(path string) ([]*element.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, overlayerr.NotFoundf("layout %s not found", path)
		}
		return nil, overlayerr.Wrapf(err, "failed to read layout %s", path)
	}

	els, err := l.Parse(data)
	if err != nil {
		return nil, overlayerr.Wrap(err, path)
	}
	return els, nil
}

// Save writes els to path as a layout file
func Save(path string, els []*element.Element) error {
	data, err := yaml.Marshal(File{Elements: els})
	if err != nil {
		return overlayerr.Wrap(err, "failed to encode layout")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return overlayerr.Wrapf(err, "failed to write layout %s", path)
	}
	return nil
}

// Seed stores els in repo, replacing elements that already exist
func Seed(ctx context.Context, repo elements.Repository, els []*element.Element) error {
	for _, el := range els {
		err := repo.Create(ctx, el)
		if overlayerr.IsAlreadyExists(err) {
			err = repo.Update(ctx, el)
		}
		if err != nil {
			return overlayerr.Wrapf(err, "failed to seed element %s", el.ID)
		}
	}
	return nil
}
