package initiativeorders_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	initiativeorders "github.com/KirkDiggler/vtm-api/internal/repositories/initiative_orders"
	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
	"github.com/KirkDiggler/vtm-api/internal/testutils"
	"github.com/KirkDiggler/vtm-api/internal/testutils/builders"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T) initiativeorders.Repository
	repo    initiativeorders.Repository
	ctx     context.Context
	now     time.Time
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(_ *testing.T) initiativeorders.Repository {
			return initiativeorders.NewInMemoryRepository()
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T) initiativeorders.Repository {
			client, _ := testutils.CreateTestRedisClient(t)
			repo, err := initiativeorders.NewRedisRepository(&initiativeorders.RedisConfig{Client: client})
			if err != nil {
				t.Fatal(err)
			}
			return repo
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2024, 2, 14, 21, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) start(id, sessionID string) *initiative.Order {
	order, err := initiative.Start(nil, id, sessionID, "", s.now)
	s.Require().NoError(err)
	return order
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	order := s.start("init_1", "session_1")
	s.Require().NoError(order.Add(&initiative.Entry{ID: "entry_1", Name: "Theo", InitiativeModifier: 4}))

	_, err := s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: order})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, initiativeorders.GetInput{OrderID: "init_1"})
	s.Require().NoError(err)
	s.Equal("session_1", out.Order.SessionID)
	s.Equal(initiative.DefaultName, out.Order.Name)
	s.True(out.Order.Active)
	s.Require().Len(out.Order.Entries, 1)
	s.Equal("Theo", out.Order.Entries[0].Name)
	s.Equal(4, out.Order.Entries[0].InitiativeModifier)
	s.True(s.now.Equal(out.Order.CreatedAt))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, initiativeorders.GetInput{OrderID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestGetRequiresID() {
	_, err := s.repo.Get(s.ctx, initiativeorders.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestCreateRejectsInvalidOrder() {
	_, err := s.repo.Create(s.ctx, initiativeorders.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: &initiative.Order{ID: "init_1"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestOneActiveOrderPerSession() {
	_, err := s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: s.start("init_1", "session_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: s.start("init_2", "session_1")})
	s.True(errors.IsAlreadyExists(err))

	_, err = s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: s.start("init_3", "session_2")})
	s.NoError(err)
}

func (s *RepositoryTestSuite) TestGetActive() {
	_, err := s.repo.GetActive(s.ctx, initiativeorders.GetActiveInput{SessionID: "session_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: s.start("init_1", "session_1")})
	s.Require().NoError(err)

	out, err := s.repo.GetActive(s.ctx, initiativeorders.GetActiveInput{SessionID: "session_1"})
	s.Require().NoError(err)
	s.Equal("init_1", out.Order.ID)
}

func (s *RepositoryTestSuite) TestEndedOrderFreesSession() {
	order := s.start("init_1", "session_1")
	_, err := s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: order})
	s.Require().NoError(err)

	order.End(s.now.Add(time.Hour))
	_, err = s.repo.Update(s.ctx, initiativeorders.UpdateInput{Order: order})
	s.Require().NoError(err)

	_, err = s.repo.GetActive(s.ctx, initiativeorders.GetActiveInput{SessionID: "session_1"})
	s.True(errors.IsNotFound(err))

	stored, err := s.repo.Get(s.ctx, initiativeorders.GetInput{OrderID: "init_1"})
	s.Require().NoError(err)
	s.False(stored.Order.Active)
	s.Require().NotNil(stored.Order.EndedAt)

	_, err = s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: s.start("init_2", "session_1")})
	s.NoError(err)
}

func (s *RepositoryTestSuite) TestUpdatingOldOrderKeepsNewerActive() {
	old := s.start("init_1", "session_1")
	_, err := s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: old})
	s.Require().NoError(err)
	old.End(s.now)
	_, err = s.repo.Update(s.ctx, initiativeorders.UpdateInput{Order: old})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: s.start("init_2", "session_1")})
	s.Require().NoError(err)

	_ = old.Remove("anything")
	_, err = s.repo.Update(s.ctx, initiativeorders.UpdateInput{Order: old})
	s.Require().NoError(err)

	out, err := s.repo.GetActive(s.ctx, initiativeorders.GetActiveInput{SessionID: "session_1"})
	s.Require().NoError(err)
	s.Equal("init_2", out.Order.ID)
}

func (s *RepositoryTestSuite) TestUpdatePersistsChanges() {
	order := s.start("init_1", "session_1")
	_, err := s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: order})
	s.Require().NoError(err)

	s.Require().NoError(order.Add(&initiative.Entry{ID: "entry_1", Name: "Theo", InitiativeValue: 9}))
	s.Require().NoError(order.Add(&initiative.Entry{ID: "entry_2", Name: "Beckett", InitiativeValue: 7}))
	s.Require().NoError(order.Advance())

	_, err = s.repo.Update(s.ctx, initiativeorders.UpdateInput{Order: order})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, initiativeorders.GetInput{OrderID: "init_1"})
	s.Require().NoError(err)
	s.Len(out.Order.Entries, 2)
	s.Equal(1, out.Order.CurrentTurnIndex)
	s.True(out.Order.Entries[0].HasActed)
}

func (s *RepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, initiativeorders.UpdateInput{Order: s.start("init_1", "session_1")})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestReturnedOrdersAreIsolated() {
	order := s.start("init_1", "session_1")
	_, err := s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: order})
	s.Require().NoError(err)

	order.Name = "changed after create"

	out, err := s.repo.Get(s.ctx, initiativeorders.GetInput{OrderID: "init_1"})
	s.Require().NoError(err)
	s.Equal(initiative.DefaultName, out.Order.Name)
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: s.start("init_1", "session_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, initiativeorders.DeleteInput{OrderID: "init_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, initiativeorders.GetInput{OrderID: "init_1"})
	s.True(errors.IsNotFound(err))
	_, err = s.repo.GetActive(s.ctx, initiativeorders.GetActiveInput{SessionID: "session_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, initiativeorders.DeleteInput{OrderID: "init_1"})
	s.True(errors.IsNotFound(err))
}

func TestNewRedisRepositoryRequiresClient(t *testing.T) {
	_, err := initiativeorders.NewRedisRepository(&initiativeorders.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = initiativeorders.NewRedisRepository(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func (s *RepositoryTestSuite) TestEndedOrderRoundTrip() {
	endedAt := s.now.Add(time.Hour)
	order := builders.NewOrderBuilder().
		WithID("init_1").
		WithSessionID("session_1").
		WithCombatant("Theo", 14).
		WithNPC("Ghoul", 9).
		AtTurn(3, 1).
		Ended(endedAt).
		Build()

	_, err := s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: order})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, initiativeorders.GetInput{OrderID: "init_1"})
	s.Require().NoError(err)
	s.False(out.Order.Active)
	s.Require().NotNil(out.Order.EndedAt)
	s.True(endedAt.Equal(*out.Order.EndedAt))
	s.Equal(3, out.Order.CurrentRound)
	s.Equal(1, out.Order.CurrentTurnIndex)
	s.True(out.Order.Entries[1].IsNPC)

	_, err = s.repo.GetActive(s.ctx, initiativeorders.GetActiveInput{SessionID: "session_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestMidRoundFixturePersists() {
	order := testutils.CreateTestOrderAtStage(testutils.TestSessionID, testutils.StageMidRound)

	_, err := s.repo.Create(s.ctx, initiativeorders.CreateInput{Order: order})
	s.Require().NoError(err)

	out, err := s.repo.GetActive(s.ctx, initiativeorders.GetActiveInput{SessionID: testutils.TestSessionID})
	s.Require().NoError(err)
	s.Equal(order.ID, out.Order.ID)
	s.Require().NotNil(out.Order.Current())
	s.Equal("Ghoul", out.Order.Current().Name)
}
