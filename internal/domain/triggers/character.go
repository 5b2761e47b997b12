package triggers

import (
	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

// CharacterStateTrigger fires on the level, resources and pet presence of
// the actor in Role
type CharacterStateTrigger struct {
	Role  gamestate.ActorRole `json:"role" yaml:"role"`
	Level VitalCondition      `json:"level" yaml:"level"`
	HP    VitalCondition      `json:"hp" yaml:"hp"`
	MP    VitalCondition      `json:"mp" yaml:"mp"`
	CP    VitalCondition      `json:"cp" yaml:"cp"`
	GP    VitalCondition      `json:"gp" yaml:"gp"`
	Pet   BoolCondition       `json:"pet" yaml:"pet"`
}

// Evaluate implements the character state variant of Trigger.Evaluate
func (t *CharacterStateTrigger) Evaluate(p gamestate.Provider, preview bool) (bool, datasource.DataSource) {
	if preview {
		ds := previewVitals(previewData(nil))
		ds.Name = t.Role.String()
		return true, ds
	}

	actor, ok := p.FindActor(t.Role)
	if !ok {
		return false, datasource.DataSource{}
	}

	v := p.Vitals(actor)
	ds := datasource.DataSource{
		ID:     actor.ID,
		Name:   actor.Name,
		Level:  v.Level,
		HP:     v.HP,
		MaxHP:  v.MaxHP,
		MP:     v.MP,
		MaxMP:  v.MaxMP,
		CP:     v.CP,
		MaxCP:  v.MaxCP,
		GP:     v.GP,
		MaxGP:  v.MaxGP,
		HasPet: v.HasPet,
	}

	triggered := t.Level.Check(v.Level, MaxLevel) &&
		t.HP.Check(v.HP, v.MaxHP) &&
		t.MP.Check(v.MP, v.MaxMP) &&
		t.CP.Check(v.CP, v.MaxCP) &&
		t.GP.Check(v.GP, v.MaxGP) &&
		t.Pet.Check(v.HasPet)
	return triggered, ds
}
