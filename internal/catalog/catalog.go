package catalog

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

var _ gamestate.DescriptorResolver = (*Catalog)(nil)

// File is the on-disk catalog layout
type File struct {
	Statuses  []gamestate.Descriptor `yaml:"statuses"`
	Abilities []gamestate.Descriptor `yaml:"abilities"`
	Items     []gamestate.Descriptor `yaml:"items"`
}

// Catalog resolves descriptors by name or ID. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	entries map[gamestate.DescriptorKind][]entry
}

type entry struct {
	folded     string
	descriptor gamestate.Descriptor
}

// Suggestion is a near match for a query that resolved nothing
type Suggestion struct {
	Descriptor gamestate.Descriptor
	Distance   int
}

// New indexes the descriptors in f
func New(f File) *Catalog {
	c := &Catalog{entries: make(map[gamestate.DescriptorKind][]entry, 3)}
	c.add(gamestate.KindStatus, f.Statuses)
	c.add(gamestate.KindAbility, f.Abilities)
	c.add(gamestate.KindItem, f.Items)
	return c
}

func (c *Catalog) add(kind gamestate.DescriptorKind, descriptors []gamestate.Descriptor) {
	list := make([]entry, 0, len(descriptors))
	for _, d := range descriptors {
		list = append(list, entry{
			folded:     fold(strings.TrimSpace(d.Name)),
			descriptor: d.Clone(),
		})
	}
	c.entries[kind] = list
}

// Parse decodes a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, overlayerr.WrapWithCode(err, overlayerr.CodeInvalidArgument, "failed to parse catalog")
	}
	return New(f), nil
}

// Load reads and parses the catalog at path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, overlayerr.NotFoundf("catalog %s not found", path)
		}
		return nil, overlayerr.Wrapf(err, "failed to read catalog %s", path)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, overlayerr.Wrap(err, path)
	}
	return c, nil
}

// Len returns how many descriptors of kind the catalog holds
func (c *Catalog) Len(kind gamestate.DescriptorKind) int {
	return len(c.entries[kind])
}

// ResolveDescriptors returns every descriptor of kind matching query. A
// numeric query matches by ID, anything else by case-insensitive name.
// Misses return an empty result, never an error.
func (c *Catalog) ResolveDescriptors(query string, kind gamestate.DescriptorKind) []gamestate.Descriptor {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var match func(entry) bool
	if id, err := strconv.Atoi(query); err == nil {
		match = func(e entry) bool { return e.descriptor.ID == id }
	} else {
		folded := fold(query)
		match = func(e entry) bool { return e.folded == folded }
	}

	var out []gamestate.Descriptor
	for _, e := range c.entries[kind] {
		if match(e) {
			out = append(out, e.descriptor.Clone())
		}
	}
	return out
}

// Suggest returns up to limit descriptors whose names are close to query,
// nearest first. Names sharing a prefix with the query always qualify.
func (c *Catalog) Suggest(query string, kind gamestate.DescriptorKind, limit int) []Suggestion {
	folded := fold(strings.TrimSpace(query))
	if folded == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]bool)
	var out []Suggestion
	for _, e := range c.entries[kind] {
		if seen[e.folded] {
			continue
		}

		dist := levenshtein.ComputeDistance(folded, e.folded)
		if dist > distanceLimit(len(e.folded)) && !strings.HasPrefix(e.folded, folded) {
			continue
		}

		seen[e.folded] = true
		out = append(out, Suggestion{Descriptor: e.descriptor.Clone(), Distance: dist})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance == out[j].Distance {
			return out[i].Descriptor.Name < out[j].Descriptor.Name
		}
		return out[i].Distance < out[j].Distance
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
