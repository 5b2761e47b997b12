package elements

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mockclock "github.com/KirkDiggler/trigger-overlay/internal/clock/mock"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/element"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/triggers"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

type RedisRepoTestSuite struct {
	suite.Suite
	client       *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mockclock.MockTimeProvider
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockclock.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.client,
		TimeProvider: s.timeProvider,
	})
	s.now = time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func testElement(id string) *element.Element {
	el := element.New(id, "DoT tracker")
	el.Template = "[name] [value.1]"
	el.AddTrigger(triggers.NewStatus(triggers.StatusTrigger{
		Descriptors: []gamestate.Descriptor{{Name: "Dia", ID: 1871, Icon: 12642}},
		Target:      gamestate.RoleTarget,
		OnlyMine:    true,
	}), "")
	el.Chain().Add("cond-1", element.Style{Foreground: "#ff0000", Bold: true})
	return el
}

func (s *RedisRepoTestSuite) marshal(data Data) string {
	raw, err := json.Marshal(data)
	s.Require().NoError(err)
	return string(raw)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	el := testElement("dots")
	s.timeProvider.EXPECT().Now().Return(s.now)

	s.mock.ExpectExists("element:dots").SetVal(0)
	s.mock.ExpectSet("element:dots", s.marshal(Data{Element: el, CreatedAt: s.now, UpdatedAt: s.now}), 0).SetVal("OK")
	s.mock.ExpectSAdd("elements", "dots").SetVal(1)

	s.NoError(s.repo.Create(ctx, el))
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()
	s.mock.ExpectExists("element:dots").SetVal(1)

	err := s.repo.Create(ctx, testElement("dots"))
	s.Error(err)

	var overlayErr *overlayerr.Error
	s.ErrorAs(err, &overlayErr)
	s.Equal(overlayerr.CodeAlreadyExists, overlayErr.Code)
}

func (s *RedisRepoTestSuite) TestCreate_InputValidation() {
	ctx := context.Background()
	s.True(overlayerr.IsInvalidArgument(s.repo.Create(ctx, nil)))
	s.True(overlayerr.IsInvalidArgument(s.repo.Create(ctx, &element.Element{})))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	el := testElement("dots")

	// Happy path
	s.mock.ExpectGet("element:dots").SetVal(s.marshal(Data{Element: el, CreatedAt: s.now, UpdatedAt: s.now}))

	got, err := s.repo.Get(ctx, "dots")
	s.Require().NoError(err)
	s.Equal("dots", got.ID)
	s.Equal("[name] [value.1]", got.Template)
	s.Require().Equal(1, got.Triggers.Len())
	s.Equal(gamestate.RoleTarget, got.Triggers.Entries[0].Trigger.Status.Target)
	s.Require().Equal(1, got.Chain().Len())
	s.True(got.Chain().Conditions[0].Style.Bold)

	// Missing
	s.mock.ExpectGet("element:gone").RedisNil()

	_, err = s.repo.Get(ctx, "gone")
	s.True(overlayerr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("element:dots").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "dots")
	s.Error(err)
	s.Equal(overlayerr.CodeUnavailable, overlayerr.GetCode(err))

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.True(overlayerr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	el := testElement("dots")
	created := s.now.Add(-time.Hour)

	s.mock.ExpectGet("element:dots").SetVal(s.marshal(Data{Element: el, CreatedAt: created, UpdatedAt: created}))
	s.timeProvider.EXPECT().Now().Return(s.now)

	el.Template = "[name:t]"
	s.mock.ExpectSet("element:dots", s.marshal(Data{Element: el, CreatedAt: created, UpdatedAt: s.now}), 0).SetVal("OK")
	s.mock.ExpectSAdd("elements", "dots").SetVal(0)

	s.NoError(s.repo.Update(ctx, el))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	s.mock.ExpectGet("element:dots").RedisNil()

	err := s.repo.Update(ctx, testElement("dots"))
	s.True(overlayerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	// Happy path
	s.mock.ExpectDel("element:dots").SetVal(1)
	s.mock.ExpectSRem("elements", "dots").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "dots"))

	// Missing
	s.mock.ExpectDel("element:dots").SetVal(0)
	s.mock.ExpectSRem("elements", "dots").SetVal(0)

	s.True(overlayerr.IsNotFound(s.repo.Delete(ctx, "dots")))

	// Input validation
	s.True(overlayerr.IsInvalidArgument(s.repo.Delete(ctx, "")))
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()
	first := testElement("a-dots")
	second := testElement("b-procs")

	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("elements").SetVal([]string{"b-procs", "a-dots"})
	s.mock.ExpectGet("element:b-procs").SetVal(s.marshal(Data{Element: second, CreatedAt: s.now, UpdatedAt: s.now}))
	s.mock.ExpectGet("element:a-dots").SetVal(s.marshal(Data{Element: first, CreatedAt: s.now, UpdatedAt: s.now}))

	got, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("a-dots", got[0].ID)
	s.Equal("b-procs", got[1].ID)
}

func (s *RedisRepoTestSuite) TestList_DependencyError() {
	ctx := context.Background()
	s.mock.ExpectSMembers("elements").SetErr(errors.New("redis error"))

	_, err := s.repo.List(ctx)
	s.Error(err)
}
