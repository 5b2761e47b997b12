package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/triggers"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

func statusTrigger(name string, id int) triggers.Trigger {
	return triggers.NewStatus(triggers.StatusTrigger{
		Descriptors: []gamestate.Descriptor{{Name: name, ID: id}},
		Target:      gamestate.RoleTarget,
	})
}

func TestValidate(t *testing.T) {
	el := New("dots", "DoTs")
	require.NoError(t, el.Validate())

	err := New("", "nameless").Validate()
	assert.True(t, overlayerr.IsInvalidArgument(err))

	err = New("x", " ").Validate()
	assert.True(t, overlayerr.IsInvalidArgument(err))

	el.Triggers.Entries = append(el.Triggers.Entries, triggers.Entry{Trigger: triggers.Trigger{Kind: "buff"}})
	err = el.Validate()
	require.Error(t, err)
	assert.True(t, overlayerr.IsInvalidArgument(err))
	assert.Equal(t, 1, overlayerr.GetMeta(err)["trigger"])
}

func TestTriggerCountFollowsSet(t *testing.T) {
	el := New("dots", "DoTs")
	el.AddTrigger(statusTrigger("Dia", 1871), "")
	el.AddTrigger(statusTrigger("Aero", 143), triggers.CombineOr)
	el.AddTrigger(statusTrigger("Aero II", 144), triggers.CombineOr)

	assert.Equal(t, triggers.CombineAnd, el.Triggers.Entries[0].Combine)
	assert.Len(t, el.Chain().TriggerLabels(), 4)

	cond := el.Chain().Add("third", Style{Foreground: "#ff0000"})
	cond.TriggerIndex = 3

	require.NoError(t, el.RemoveTrigger(0))
	assert.Equal(t, 2, el.Triggers.Len())
	assert.Equal(t, "Status: Aero", el.Triggers.Entries[0].Trigger.Label())
	assert.Equal(t, 2, cond.TriggerIndex)

	err := el.RemoveTrigger(5)
	assert.True(t, overlayerr.IsInvalidArgument(err))
}

func TestChainCreatedOnDemand(t *testing.T) {
	el := &Element{ID: "a", Name: "a"}
	el.Triggers.Entries = []triggers.Entry{{Trigger: statusTrigger("Dia", 1871)}}

	assert.Equal(t, []string{"Dynamic", "Trigger 1"}, el.Chain().TriggerLabels())
}

func TestClone(t *testing.T) {
	el := New("dots", "DoTs")
	el.BaseStyle = Style{Foreground: "#ffffff", Padding: []int{0, 1}}
	el.AddTrigger(statusTrigger("Dia", 1871), "")
	el.Chain().Add("low", Style{Foreground: "#ff0000", Padding: []int{1}})

	clone := el.Clone()
	clone.BaseStyle.Padding[1] = 9
	clone.Chain().Conditions[0].Style.Padding[0] = 9
	clone.Triggers.Entries[0].Trigger.Status.Descriptors[0].Name = "Aero"

	assert.Equal(t, 1, el.BaseStyle.Padding[1])
	assert.Equal(t, 1, el.Chain().Conditions[0].Style.Padding[0])
	assert.Equal(t, "Dia", el.Triggers.Entries[0].Trigger.Status.Descriptors[0].Name)
}
