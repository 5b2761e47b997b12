package replay

import (
	"os"
	"strconv"
	"sync"

	"github.com/tidwall/gjson"

	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

// DefaultAbilityRange applies to abilities whose recast entry has no range
const DefaultAbilityRange = 25.0

var _ gamestate.Provider = (*Provider)(nil)

// Provider answers game state queries from a recorded JSON snapshot:
//
//	{
//	  "actors": {
//	    "self":   {"id": 1, "name": "...", "level": 90, "hp": 1, "max_hp": 1, ...,
//	               "has_pet": false, "statuses": [{"id": 1871, "remaining": 12.5,
//	               "stacks": 0, "source_is_self": true}]},
//	    "target": {"id": 2, "name": "...", "distance": 3, "in_los": true}
//	  },
//	  "recasts": {"3571": {"recast": 40, "elapsed": 15, "max_charges": 1,
//	              "usable": true, "range": 25}},
//	  "items":   {"39730": {"recast": 270, "elapsed": 250, "quantity": 12}},
//	  "combo":   true
//	}
//
// Missing keys read as zero, except usable and in_los which default to true.
type Provider struct {
	mu  sync.RWMutex
	raw string
}

// New creates a provider from snapshot JSON
func New(data []byte) (*Provider, error) {
	p := &Provider{}
	if err := p.Update(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads a snapshot file
func Load(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, overlayerr.NotFoundf("snapshot %s not found", path)
		}
		return nil, overlayerr.Wrapf(err, "failed to read snapshot %s", path)
	}
	return New(data)
}

// Update swaps in a new snapshot. Invalid JSON leaves the old one in place.
func (p *Provider) Update(data []byte) error {
	if !gjson.ValidBytes(data) {
		return overlayerr.InvalidArgument("snapshot is not valid JSON")
	}

	p.mu.Lock()
	p.raw = string(data)
	p.mu.Unlock()
	return nil
}

func (p *Provider) get(path string) gjson.Result {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return gjson.Get(p.raw, path)
}

// actor finds the snapshot entry for a resolved actor by ID. ID 0 is the
// unresolved actor and never matches.
func (p *Provider) actor(a gamestate.Actor) gjson.Result {
	var found gjson.Result
	if a.ID == 0 {
		return found
	}
	p.get("actors").ForEach(func(_, value gjson.Result) bool {
		if int(value.Get("id").Int()) == a.ID {
			found = value
			return false
		}
		return true
	})
	return found
}

func (p *Provider) FindActor(role gamestate.ActorRole) (gamestate.Actor, bool) {
	entry := p.get("actors." + role.String())
	if !entry.Exists() || !entry.IsObject() {
		return gamestate.Actor{}, false
	}
	return gamestate.Actor{
		ID:   int(entry.Get("id").Int()),
		Name: entry.Get("name").String(),
	}, true
}

func (p *Provider) Vitals(actor gamestate.Actor) gamestate.Vitals {
	entry := p.actor(actor)
	if !entry.Exists() {
		return gamestate.Vitals{}
	}

	v := gjson.GetMany(entry.Raw,
		"level", "hp", "max_hp", "mp", "max_mp", "cp", "max_cp", "gp", "max_gp", "has_pet")
	return gamestate.Vitals{
		Level:  int(v[0].Int()),
		HP:     int(v[1].Int()),
		MaxHP:  int(v[2].Int()),
		MP:     int(v[3].Int()),
		MaxMP:  int(v[4].Int()),
		CP:     int(v[5].Int()),
		MaxCP:  int(v[6].Int()),
		GP:     int(v[7].Int()),
		MaxGP:  int(v[8].Int()),
		HasPet: v[9].Bool(),
	}
}

func (p *Provider) StatusEffects(actor gamestate.Actor) []gamestate.StatusEffect {
	statuses := p.actor(actor).Get("statuses").Array()
	if len(statuses) == 0 {
		return nil
	}

	effects := make([]gamestate.StatusEffect, 0, len(statuses))
	for _, s := range statuses {
		effects = append(effects, gamestate.StatusEffect{
			DescriptorID:  int(s.Get("id").Int()),
			RemainingTime: s.Get("remaining").Float(),
			StackCount:    int(s.Get("stacks").Int()),
			SourceIsSelf:  s.Get("source_is_self").Bool(),
		})
	}
	return effects
}

func recastFrom(entry gjson.Result) gamestate.Recast {
	return gamestate.Recast{
		RecastTime: entry.Get("recast").Float(),
		Elapsed:    entry.Get("elapsed").Float(),
		MaxCharges: int(entry.Get("max_charges").Int()),
	}
}

func (p *Provider) AbilityRecast(abilityID int) gamestate.Recast {
	return recastFrom(p.get("recasts." + strconv.Itoa(abilityID)))
}

func (p *Provider) IsAbilityUsable(abilityID int, _ gamestate.Actor) bool {
	return boolOr(p.get("recasts."+strconv.Itoa(abilityID)+".usable"), true)
}

func (p *Provider) IsInRange(abilityID int, _, target gamestate.Actor) bool {
	entry := p.actor(target)
	if !entry.Exists() {
		return false
	}

	reach := p.get("recasts." + strconv.Itoa(abilityID) + ".range")
	limit := DefaultAbilityRange
	if reach.Exists() {
		limit = reach.Float()
	}
	return entry.Get("distance").Float() <= limit
}

func (p *Provider) IsInLos(_, target gamestate.Actor) bool {
	entry := p.actor(target)
	if !entry.Exists() {
		return false
	}
	return boolOr(entry.Get("in_los"), true)
}

func (p *Provider) IsComboWindowOpen() bool {
	return p.get("combo").Bool()
}

func (p *Provider) ItemRecast(itemID int) gamestate.Recast {
	return recastFrom(p.get("items." + strconv.Itoa(itemID)))
}

func (p *Provider) ItemQuantity(itemID int) int {
	return int(p.get("items." + strconv.Itoa(itemID) + ".quantity").Int())
}

func boolOr(r gjson.Result, def bool) bool {
	if !r.Exists() {
		return def
	}
	return r.Bool()
}
