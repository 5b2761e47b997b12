package triggers_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/compare"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/triggers"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
	mockgamestate "github.com/KirkDiggler/trigger-overlay/internal/gamestate/mock"
)

var (
	assize   = gamestate.Descriptor{Name: "Assize", ID: 3571, Icon: 2634}
	stone    = gamestate.Descriptor{Name: "Heavy Swing", ID: 31, Icon: 260, ComboIDs: []int{37}}
	potion   = gamestate.Descriptor{Name: "Grade 8 Tincture", ID: 39727, Icon: 22451}
	charged  = gamestate.Descriptor{Name: "Divine Benison", ID: 7432, Icon: 2638}
	noTarget = gamestate.Actor{}
)

type CooldownTriggerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	provider *mockgamestate.MockProvider
}

func (s *CooldownTriggerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.provider = mockgamestate.NewMockProvider(s.ctrl)
}

func (s *CooldownTriggerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCooldownTriggerSuite(t *testing.T) {
	suite.Run(t, new(CooldownTriggerSuite))
}

func (s *CooldownTriggerSuite) expectSelfAndTarget(hasTarget bool) {
	s.provider.EXPECT().FindActor(gamestate.RoleSelf).Return(player, true)
	if hasTarget {
		s.provider.EXPECT().FindActor(gamestate.RoleTarget).Return(enemy, true)
		return
	}
	s.provider.EXPECT().FindActor(gamestate.RoleTarget).Return(noTarget, false)
}

func (s *CooldownTriggerSuite) TestNoDescriptor() {
	trigger := &triggers.CooldownTrigger{}

	fired, ds := trigger.Evaluate(s.provider, false)
	s.False(fired)
	s.Equal(datasource.DataSource{}, ds)
}

func (s *CooldownTriggerSuite) TestPreview() {
	trigger := &triggers.CooldownTrigger{Descriptor: &assize}

	fired, ds := trigger.Evaluate(s.provider, true)
	s.True(fired)
	s.Equal("Assize", ds.Name)
	s.Equal(triggers.PreviewValue, ds.Cooldown)
	s.True(ds.InRange)
}

func (s *CooldownTriggerSuite) TestNoSelf() {
	trigger := &triggers.CooldownTrigger{Descriptor: &assize}
	s.provider.EXPECT().FindActor(gamestate.RoleSelf).Return(gamestate.Actor{}, false)

	fired, ds := trigger.Evaluate(s.provider, false)
	s.False(fired)
	s.Equal(datasource.DataSource{}, ds)
}

func (s *CooldownTriggerSuite) TestRecasting() {
	trigger := &triggers.CooldownTrigger{Descriptor: &assize}
	s.expectSelfAndTarget(true)
	s.provider.EXPECT().AbilityRecast(assize.ID).Return(gamestate.Recast{RecastTime: 40, Elapsed: 15, MaxCharges: 1})
	s.provider.EXPECT().IsAbilityUsable(assize.ID, enemy).Return(false)
	s.provider.EXPECT().IsInRange(assize.ID, player, enemy).Return(true)
	s.provider.EXPECT().IsInLos(player, enemy).Return(true)

	fired, ds := trigger.Evaluate(s.provider, false)
	s.True(fired, "no sub-condition enabled")
	s.Equal(25.0, ds.Value)
	s.Equal(25.0, ds.Cooldown)
	s.Equal(0, ds.Stacks)
	s.Equal(1, ds.MaxStacks)
	s.True(ds.Active)
	s.True(ds.InRange)
	s.True(ds.InLos)
	s.False(ds.ComboActive)
}

func (s *CooldownTriggerSuite) TestCharges() {
	trigger := &triggers.CooldownTrigger{
		Descriptor: &charged,
		Charges:    triggers.NumericCondition{Enabled: true, Op: compare.GreaterThanEq, Value: 1},
	}
	s.expectSelfAndTarget(false)
	s.provider.EXPECT().AbilityRecast(charged.ID).Return(gamestate.Recast{RecastTime: 60, Elapsed: 45, MaxCharges: 2})
	s.provider.EXPECT().IsAbilityUsable(charged.ID, noTarget).Return(true)

	fired, ds := trigger.Evaluate(s.provider, false)
	s.True(fired)
	s.Equal(1, ds.Stacks)
	s.Equal(2, ds.MaxStacks)
	s.Equal(15.0, ds.Value)
	s.False(ds.InRange, "no target means out of range")
	s.False(ds.InLos)
}

func (s *CooldownTriggerSuite) TestReady() {
	trigger := &triggers.CooldownTrigger{
		Descriptor: &charged,
		Cooldown:   triggers.NumericCondition{Enabled: true, Op: compare.Equals, Value: 0},
		Usable:     triggers.BoolCondition{Enabled: true, Value: true},
	}
	s.expectSelfAndTarget(false)
	s.provider.EXPECT().AbilityRecast(charged.ID).Return(gamestate.Recast{RecastTime: 0, Elapsed: 0, MaxCharges: 2})
	s.provider.EXPECT().IsAbilityUsable(charged.ID, noTarget).Return(true)

	fired, ds := trigger.Evaluate(s.provider, false)
	s.True(fired)
	s.Equal(2, ds.Stacks)
	s.Zero(ds.Value)
	s.False(ds.Active)
}

func (s *CooldownTriggerSuite) TestRangeAndLos() {
	trigger := &triggers.CooldownTrigger{
		Descriptor: &assize,
		Range:      triggers.BoolCondition{Enabled: true, Value: true},
		Los:        triggers.BoolCondition{Enabled: true, Value: true},
	}
	s.expectSelfAndTarget(true)
	s.provider.EXPECT().AbilityRecast(assize.ID).Return(gamestate.Recast{})
	s.provider.EXPECT().IsAbilityUsable(assize.ID, enemy).Return(true)
	s.provider.EXPECT().IsInRange(assize.ID, player, enemy).Return(true)
	s.provider.EXPECT().IsInLos(player, enemy).Return(false)

	fired, _ := trigger.Evaluate(s.provider, false)
	s.False(fired)
}

func (s *CooldownTriggerSuite) TestCombo() {
	trigger := &triggers.CooldownTrigger{
		Descriptor: &stone,
		Combo:      triggers.BoolCondition{Enabled: true, Value: true},
	}
	s.expectSelfAndTarget(true)
	s.provider.EXPECT().AbilityRecast(stone.ID).Return(gamestate.Recast{RecastTime: 2.5, Elapsed: 2.5})
	s.provider.EXPECT().IsAbilityUsable(stone.ID, enemy).Return(true)
	s.provider.EXPECT().IsInRange(stone.ID, player, enemy).Return(true)
	s.provider.EXPECT().IsInLos(player, enemy).Return(true)
	s.provider.EXPECT().IsComboWindowOpen().Return(true)

	fired, ds := trigger.Evaluate(s.provider, false)
	s.True(fired)
	s.True(ds.ComboActive)
}

func (s *CooldownTriggerSuite) TestComboWithoutComboSet() {
	trigger := &triggers.CooldownTrigger{
		Descriptor: &assize,
		Combo:      triggers.BoolCondition{Enabled: true, Value: true},
	}
	s.expectSelfAndTarget(false)
	s.provider.EXPECT().AbilityRecast(assize.ID).Return(gamestate.Recast{})
	s.provider.EXPECT().IsAbilityUsable(assize.ID, noTarget).Return(true)

	fired, ds := trigger.Evaluate(s.provider, false)
	s.False(fired)
	s.False(ds.ComboActive)
}

func (s *CooldownTriggerSuite) TestItemNoDescriptor() {
	trigger := &triggers.ItemCooldownTrigger{}

	fired, ds := trigger.Evaluate(s.provider, true)
	s.False(fired)
	s.Equal(datasource.DataSource{}, ds)
}

func (s *CooldownTriggerSuite) TestItem() {
	trigger := &triggers.ItemCooldownTrigger{
		Descriptor: &potion,
		Quantity:   triggers.NumericCondition{Enabled: true, Op: compare.GreaterThan, Value: 0},
		Cooldown:   triggers.NumericCondition{Enabled: true, Op: compare.LessThan, Value: 30},
	}
	s.provider.EXPECT().ItemRecast(potion.ID).Return(gamestate.Recast{RecastTime: 270, Elapsed: 250, MaxCharges: 5})
	s.provider.EXPECT().ItemQuantity(potion.ID).Return(12)

	fired, ds := trigger.Evaluate(s.provider, false)
	s.True(fired)
	s.Equal(20.0, ds.Value)
	s.Equal(20.0, ds.Cooldown)
	s.Equal(12, ds.Stacks)
	s.Equal(12, ds.MaxStacks)
	s.Equal("Grade 8 Tincture", ds.Name)
}

func (s *CooldownTriggerSuite) TestItemOutOfStock() {
	trigger := &triggers.ItemCooldownTrigger{
		Descriptor: &potion,
		Quantity:   triggers.NumericCondition{Enabled: true, Op: compare.GreaterThan, Value: 0},
	}
	s.provider.EXPECT().ItemRecast(potion.ID).Return(gamestate.Recast{})
	s.provider.EXPECT().ItemQuantity(potion.ID).Return(0)

	fired, ds := trigger.Evaluate(s.provider, false)
	s.False(fired)
	s.Zero(ds.Stacks)
}
