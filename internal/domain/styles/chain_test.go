package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/compare"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/styles"
)

type color struct {
	Name  string
	Flags []string
}

func (c color) Clone() color {
	c.Flags = append([]string(nil), c.Flags...)
	return c
}

type openSet map[string]bool

func (o openSet) IsOpenForEdit(id string) bool {
	return o[id]
}

func red() color    { return color{Name: "red"} }
func yellow() color { return color{Name: "yellow"} }
func green() color  { return color{Name: "green"} }

func newChain(triggers int) *styles.Chain[color] {
	return styles.NewChain[color](triggers)
}

func TestSelect_FirstMatchWins(t *testing.T) {
	chain := newChain(1)
	low := chain.Add("low", red())
	low.Op, low.Threshold = compare.LessThan, 3

	mid := chain.Add("mid", yellow())
	mid.Op, mid.Threshold = compare.LessThan, 8

	data := []datasource.DataSource{{Value: 2}}

	style, ok := chain.Select(data, 0, nil)
	require.True(t, ok)
	assert.Equal(t, "red", style.Name, "both match, earlier one wins")

	data[0].Value = 5
	style, ok = chain.Select(data, 0, nil)
	require.True(t, ok)
	assert.Equal(t, "yellow", style.Name)

	cond, ok := chain.Match(data, 0, nil)
	require.True(t, ok)
	assert.Equal(t, "mid", cond.ID)

	data[0].Value = 9
	_, ok = chain.Select(data, 0, nil)
	assert.False(t, ok, "no match leaves the base style to the caller")
	_, ok = chain.Match(data, 0, nil)
	assert.False(t, ok)
}

func TestSelect_DynamicIndex(t *testing.T) {
	chain := newChain(3)
	cond := chain.Add("dyn", green())
	cond.Field = datasource.FieldStacks
	cond.Op, cond.Threshold = compare.Equals, 2

	data := []datasource.DataSource{{Stacks: 0}, {Stacks: 2}, {Stacks: 0}}

	_, ok := chain.Select(data, 0, nil)
	assert.False(t, ok, "dynamic points at trigger 1")

	style, ok := chain.Select(data, 1, nil)
	require.True(t, ok, "dynamic points at trigger 2 which fired")
	assert.Equal(t, "green", style.Name)
}

func TestSelect_FixedIndex(t *testing.T) {
	chain := newChain(3)
	cond := chain.Add("third", red())
	cond.TriggerIndex = 3
	cond.Field = datasource.FieldHP
	cond.Op, cond.Threshold = compare.LessThanEq, 100

	data := []datasource.DataSource{{HP: 500}, {HP: 500}, {HP: 50}}

	style, ok := chain.Select(data, 0, nil)
	require.True(t, ok)
	assert.Equal(t, "red", style.Name)
}

func TestSelect_ClampsStaleIndex(t *testing.T) {
	chain := newChain(2)
	cond := chain.Add("stale", red())
	cond.TriggerIndex = 5
	cond.Op, cond.Threshold = compare.Equals, 7

	data := []datasource.DataSource{{Value: 1}, {Value: 7}}

	style, ok := chain.Select(data, 0, nil)
	require.True(t, ok, "index 5 clamps to the last trigger")
	assert.Equal(t, "red", style.Name)

	_, ok = chain.Select(data, 9, nil)
	require.True(t, ok)
}

func TestSelect_EmptyData(t *testing.T) {
	chain := newChain(0)
	cond := chain.Add("zero", red())
	cond.Op, cond.Threshold = compare.Equals, 0

	style, ok := chain.Select(nil, 0, nil)
	require.True(t, ok, "missing data reads as zero")
	assert.Equal(t, "red", style.Name)
}

func TestSelect_OpenForEditPins(t *testing.T) {
	chain := newChain(1)
	first := chain.Add("first", red())
	first.Op, first.Threshold = compare.LessThan, 0

	second := chain.Add("second", yellow())
	second.Op, second.Threshold = compare.GreaterThan, 1000

	data := []datasource.DataSource{{Value: 10}}

	_, ok := chain.Select(data, 0, openSet{})
	assert.False(t, ok)

	style, ok := chain.Select(data, 0, openSet{"second": true})
	require.True(t, ok)
	assert.Equal(t, "yellow", style.Name, "the condition being edited matches regardless of its test")
}

func TestAdd_OwnsStyleCopy(t *testing.T) {
	shared := color{Name: "red", Flags: []string{"bold"}}

	chain := newChain(1)
	a := chain.Add("a", shared)
	b := chain.Add("b", shared)

	a.Style.Flags[0] = "italic"
	a.Style.Name = "blue"

	assert.Equal(t, "bold", b.Style.Flags[0])
	assert.Equal(t, "red", b.Style.Name)
	assert.Equal(t, "bold", shared.Flags[0])
}

func TestChain_RemoveAndMove(t *testing.T) {
	chain := newChain(1)
	for _, id := range []string{"a", "b", "c", "d"} {
		chain.Add(id, red())
	}

	ids := func() []string {
		out := make([]string, 0, chain.Len())
		for _, c := range chain.Conditions {
			out = append(out, c.ID)
		}
		return out
	}

	require.True(t, chain.Move("d", -2))
	assert.Equal(t, []string{"a", "d", "b", "c"}, ids())

	require.True(t, chain.Move("a", 10))
	assert.Equal(t, []string{"d", "b", "c", "a"}, ids())

	require.True(t, chain.Move("b", -5))
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids())

	assert.True(t, chain.Remove("c"))
	assert.False(t, chain.Remove("c"))
	assert.False(t, chain.Move("missing", 1))
	assert.Equal(t, []string{"b", "d", "a"}, ids())

	_, ok := chain.Get("d")
	assert.True(t, ok)
}

func TestUpdateTriggerCount(t *testing.T) {
	chain := newChain(4)
	dyn := chain.Add("dyn", red())
	fourth := chain.Add("fourth", red())
	fourth.TriggerIndex = 4
	second := chain.Add("second", red())
	second.TriggerIndex = 2

	assert.Equal(t, []string{"Dynamic", "Trigger 1", "Trigger 2", "Trigger 3", "Trigger 4"}, chain.TriggerLabels())

	chain.UpdateTriggerCount(2)
	assert.Equal(t, 0, dyn.TriggerIndex)
	assert.Equal(t, 2, fourth.TriggerIndex)
	assert.Equal(t, 2, second.TriggerIndex)
	assert.Equal(t, []string{"Dynamic", "Trigger 1", "Trigger 2"}, chain.TriggerLabels())

	chain.UpdateTriggerCount(3)
	assert.Equal(t, 2, fourth.TriggerIndex, "growing does not restore old indexes")
	assert.Len(t, chain.TriggerLabels(), 4)

	chain.UpdateTriggerCount(0)
	assert.Equal(t, 0, fourth.TriggerIndex)
	assert.Equal(t, []string{"Dynamic"}, chain.TriggerLabels())
}

func TestChain_Clone(t *testing.T) {
	chain := newChain(2)
	chain.Add("a", color{Name: "red", Flags: []string{"bold"}})

	clone := chain.Clone()
	clone.Conditions[0].Style.Flags[0] = "italic"
	clone.Conditions[0].Threshold = 42

	assert.Equal(t, "bold", chain.Conditions[0].Style.Flags[0])
	assert.Zero(t, chain.Conditions[0].Threshold)
	assert.Equal(t, 2, clone.TriggerCount)
}
