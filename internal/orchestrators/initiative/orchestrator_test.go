package initiative_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	orch "github.com/KirkDiggler/vtm-api/internal/orchestrators/initiative"
	"github.com/KirkDiggler/vtm-api/internal/pkg/clock"
	"github.com/KirkDiggler/vtm-api/internal/pkg/idgen"
	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
	initiativeorders "github.com/KirkDiggler/vtm-api/internal/repositories/initiative_orders"
	initiativeordersmock "github.com/KirkDiggler/vtm-api/internal/repositories/initiative_orders/mock"
	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
	"github.com/KirkDiggler/vtm-api/internal/testutils"
	"github.com/KirkDiggler/vtm-api/internal/testutils/builders"
	"github.com/KirkDiggler/vtm-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	clock *clock.Fixed
	repo  initiativeorders.Repository
	ctx   context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.clock = clock.NewFixed(time.Date(2024, 2, 14, 21, 0, 0, 0, time.UTC))
	s.repo = initiativeorders.NewInMemoryRepository()
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) orchestrator(faces ...int) orch.Service {
	svc, err := orch.NewOrchestrator(&orch.Config{
		Repository:  s.repo,
		IDGenerator: idgen.NewSequential("init"),
		Clock:       s.clock,
		Source:      roller.NewScripted(faces...),
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) start(svc orch.Service) *initiative.Order {
	out, err := svc.StartCombat(s.ctx, &orch.StartCombatInput{SessionID: "session_1"})
	s.Require().NoError(err)
	return out.View.Order
}

func (s *OrchestratorTestSuite) add(svc orch.Service, orderID, name string, value int) *initiative.Entry {
	out, err := svc.AddCombatant(s.ctx, &orch.AddCombatantInput{
		OrderID:         orderID,
		Name:            name,
		InitiativeValue: &value,
	})
	s.Require().NoError(err)
	return out.Entry
}

func (s *OrchestratorTestSuite) TestStartCombat() {
	svc := s.orchestrator()

	out, err := svc.StartCombat(s.ctx, &orch.StartCombatInput{SessionID: "session_1"})
	s.Require().NoError(err)
	s.Equal(initiative.DefaultName, out.View.Order.Name)
	s.Equal(1, out.View.Order.CurrentRound)
	s.True(out.View.Order.Active)
	s.Nil(out.View.Current)

	_, err = svc.StartCombat(s.ctx, &orch.StartCombatInput{SessionID: "session_1"})
	s.True(errors.IsFailedPrecondition(err))

	_, err = svc.StartCombat(s.ctx, &orch.StartCombatInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestStartAfterEnd() {
	svc := s.orchestrator()
	order := s.start(svc)

	_, err := svc.EndCombat(s.ctx, &orch.EndCombatInput{OrderID: order.ID})
	s.Require().NoError(err)

	out, err := svc.StartCombat(s.ctx, &orch.StartCombatInput{SessionID: "session_1", Name: "Round two"})
	s.Require().NoError(err)
	s.NotEqual(order.ID, out.View.Order.ID)
	s.Equal("Round two", out.View.Order.Name)
}

func (s *OrchestratorTestSuite) TestAddCombatantPendingRoll() {
	svc := s.orchestrator()
	order := s.start(svc)

	out, err := svc.AddCombatant(s.ctx, &orch.AddCombatantInput{
		OrderID:            order.ID,
		CharacterID:        "char_1",
		Name:               "Theo",
		InitiativeModifier: 5,
	})
	s.Require().NoError(err)
	s.Equal(0, out.Entry.InitiativeValue)
	s.Equal(5, out.Entry.InitiativeModifier)
	s.Equal(s.clock.Now(), out.Entry.CreatedAt)
	s.Require().NotNil(out.View.Current)
	s.Equal(out.Entry.ID, out.View.Current.ID)

	_, err = svc.AddCombatant(s.ctx, &orch.AddCombatantInput{OrderID: order.ID})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.AddCombatant(s.ctx, &orch.AddCombatantInput{OrderID: "missing", Name: "Theo"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAddToEndedCombat() {
	svc := s.orchestrator()
	order := s.start(svc)
	_, err := svc.EndCombat(s.ctx, &orch.EndCombatInput{OrderID: order.ID})
	s.Require().NoError(err)

	_, err = svc.AddCombatant(s.ctx, &orch.AddCombatantInput{OrderID: order.ID, Name: "Late"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRollInitiative() {
	svc := s.orchestrator(7, 3)
	order := s.start(svc)

	_, err := svc.AddCombatant(s.ctx, &orch.AddCombatantInput{OrderID: order.ID, Name: "Theo", InitiativeModifier: 2})
	s.Require().NoError(err)
	_, err = svc.AddCombatant(s.ctx, &orch.AddCombatantInput{OrderID: order.ID, Name: "Beckett", InitiativeModifier: 8})
	s.Require().NoError(err)

	out, err := svc.RollInitiative(s.ctx, &orch.RollInitiativeInput{OrderID: order.ID})
	s.Require().NoError(err)
	s.Require().Len(out.Rolls, 2)
	s.Equal(7, out.Rolls[0].Face)
	s.Equal(9, out.Rolls[0].Value)
	s.Equal(3, out.Rolls[1].Face)
	s.Equal(11, out.Rolls[1].Value)

	s.Equal("Beckett", out.View.Sorted[0].Name)
	s.Equal("Beckett", out.View.Current.Name)
}

func (s *OrchestratorTestSuite) TestAdvanceWrapsRound() {
	svc := s.orchestrator()
	order := s.start(svc)
	s.add(svc, order.ID, "Theo", 9)
	s.add(svc, order.ID, "Beckett", 12)

	out, err := svc.AdvanceTurn(s.ctx, &orch.AdvanceTurnInput{OrderID: order.ID})
	s.Require().NoError(err)
	s.False(out.NewRound)
	s.Equal("Theo", out.View.Current.Name)
	s.True(out.View.Sorted[0].HasActed)

	out, err = svc.AdvanceTurn(s.ctx, &orch.AdvanceTurnInput{OrderID: order.ID})
	s.Require().NoError(err)
	s.True(out.NewRound)
	s.Equal(2, out.View.Order.CurrentRound)
	s.Equal(0, out.View.Order.CurrentTurnIndex)
	for _, e := range out.View.Order.Entries {
		s.False(e.HasActed)
	}
}

func (s *OrchestratorTestSuite) TestAdvanceEmptyOrEnded() {
	svc := s.orchestrator()
	order := s.start(svc)

	_, err := svc.AdvanceTurn(s.ctx, &orch.AdvanceTurnInput{OrderID: order.ID})
	s.True(errors.IsFailedPrecondition(err))

	s.add(svc, order.ID, "Theo", 9)
	_, err = svc.EndCombat(s.ctx, &orch.EndCombatInput{OrderID: order.ID})
	s.Require().NoError(err)

	_, err = svc.AdvanceTurn(s.ctx, &orch.AdvanceTurnInput{OrderID: order.ID})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRemoveCombatant() {
	svc := s.orchestrator()
	order := s.start(svc)
	theo := s.add(svc, order.ID, "Theo", 9)
	s.add(svc, order.ID, "Beckett", 12)

	out, err := svc.RemoveCombatant(s.ctx, &orch.RemoveCombatantInput{OrderID: order.ID, EntryID: theo.ID})
	s.Require().NoError(err)
	s.Len(out.View.Order.Entries, 1)

	_, err = svc.RemoveCombatant(s.ctx, &orch.RemoveCombatantInput{OrderID: order.ID, EntryID: theo.ID})
	s.True(errors.IsNotFound(err))
	s.ErrorIs(err, core.ErrEntityNotFound)
	s.Equal(theo.ID, errors.GetMeta(err)["entry_id"])
	s.Equal(order.ID, errors.GetMeta(err)["order_id"])
}

func (s *OrchestratorTestSuite) TestUpdateCombatant() {
	svc := s.orchestrator()
	order := s.start(svc)
	theo := s.add(svc, order.ID, "Theo", 9)
	s.add(svc, order.ID, "Beckett", 12)

	value := 15
	delayed := true
	out, err := svc.UpdateCombatant(s.ctx, &orch.UpdateCombatantInput{
		OrderID: order.ID,
		EntryID: theo.ID,
		Patch:   initiative.EntryPatch{InitiativeValue: &value, IsDelayed: &delayed},
	})
	s.Require().NoError(err)
	s.Equal(15, out.Entry.InitiativeValue)
	s.True(out.Entry.IsDelayed)
	s.Equal(theo.ID, out.View.Sorted[0].ID)

	_, err = svc.UpdateCombatant(s.ctx, &orch.UpdateCombatantInput{OrderID: order.ID, EntryID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEndCombatIdempotent() {
	svc := s.orchestrator()
	order := s.start(svc)

	first, err := svc.EndCombat(s.ctx, &orch.EndCombatInput{OrderID: order.ID})
	s.Require().NoError(err)
	s.Require().NotNil(first.View.Order.EndedAt)
	endedAt := *first.View.Order.EndedAt

	s.clock.Advance(time.Hour)
	second, err := svc.EndCombat(s.ctx, &orch.EndCombatInput{OrderID: order.ID})
	s.Require().NoError(err)
	s.True(endedAt.Equal(*second.View.Order.EndedAt))
	s.Nil(second.View.Current)

	_, err = svc.GetActiveOrder(s.ctx, &orch.GetActiveOrderInput{SessionID: "session_1"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetOrderAndActive() {
	svc := s.orchestrator()
	order := s.start(svc)

	got, err := svc.GetOrder(s.ctx, &orch.GetOrderInput{OrderID: order.ID})
	s.Require().NoError(err)
	s.Equal(order.ID, got.View.Order.ID)

	active, err := svc.GetActiveOrder(s.ctx, &orch.GetActiveOrderInput{SessionID: "session_1"})
	s.Require().NoError(err)
	s.Equal(order.ID, active.View.Order.ID)

	_, err = svc.GetOrder(s.ctx, &orch.GetOrderInput{OrderID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestDeleteOrder() {
	svc := s.orchestrator()
	order := s.start(svc)

	_, err := svc.DeleteOrder(s.ctx, &orch.DeleteOrderInput{OrderID: order.ID})
	s.Require().NoError(err)

	_, err = svc.GetOrder(s.ctx, &orch.GetOrderInput{OrderID: order.ID})
	s.True(errors.IsNotFound(err))

	_, err = svc.StartCombat(s.ctx, &orch.StartCombatInput{SessionID: "session_1"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestConcurrentAddsAreSerialized() {
	svc := s.orchestrator()
	order := s.start(svc)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddCombatant(s.ctx, &orch.AddCombatantInput{OrderID: order.ID, Name: "Ghoul"})
			s.NoError(err)
		}()
	}
	wg.Wait()

	out, err := svc.GetOrder(s.ctx, &orch.GetOrderInput{OrderID: order.ID})
	s.Require().NoError(err)
	s.Len(out.View.Order.Entries, 20)
}

func (s *OrchestratorTestSuite) TestRedisBackedCombat() {
	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := initiativeorders.NewRedisRepository(&initiativeorders.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	svc := s.orchestrator()
	order := s.start(svc)
	s.add(svc, order.ID, "Theo", 9)

	out, err := svc.AdvanceTurn(s.ctx, &orch.AdvanceTurnInput{OrderID: order.ID})
	s.Require().NoError(err)
	s.Equal(2, out.View.Order.CurrentRound)

	_, err = svc.StartCombat(s.ctx, &orch.StartCombatInput{SessionID: "session_1"})
	s.True(errors.IsFailedPrecondition(err))
}

func TestStartCombatLosesRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := initiativeordersmock.NewMockRepository(ctrl)

	repo.EXPECT().GetActive(gomock.Any(), initiativeorders.GetActiveInput{SessionID: "session_1"}).
		Return(nil, errors.NotFound("no active initiative order"))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.AlreadyExists("session already has an active initiative order"))

	svc, err := orch.NewOrchestrator(&orch.Config{Repository: repo, IDGenerator: idgen.NewSequential("init")})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.StartCombat(context.Background(), &orch.StartCombatInput{SessionID: "session_1"})
	if !errors.IsFailedPrecondition(err) {
		t.Fatalf("expected failed precondition, got %v", err)
	}
}

func TestStartCombatRepositoryDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := initiativeordersmock.NewMockRepository(ctrl)

	repo.EXPECT().GetActive(gomock.Any(), gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	svc, err := orch.NewOrchestrator(&orch.Config{Repository: repo, IDGenerator: idgen.NewSequential("init")})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.StartCombat(context.Background(), &orch.StartCombatInput{SessionID: "session_1"})
	if errors.GetCode(err) != errors.CodeUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestAdvanceTurnPersistsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := initiativeordersmock.NewMockRepository(ctrl)
	ctx := context.Background()

	order := builders.NewOrderBuilder().
		WithCombatant("Theo", 9).
		WithNPC("Beckett", 12).
		Build()

	var saved *initiative.Order
	gomock.InOrder(
		mocks.ExpectOrderGet(ctx, repo, order),
		mocks.ExpectOrderUpdate(ctx, repo, &saved),
	)

	svc, err := orch.NewOrchestrator(&orch.Config{Repository: repo, IDGenerator: idgen.NewSequential("init")})
	if err != nil {
		t.Fatal(err)
	}

	out, err := svc.AdvanceTurn(ctx, &orch.AdvanceTurnInput{OrderID: order.ID})
	if err != nil {
		t.Fatal(err)
	}
	if out.NewRound {
		t.Fatal("expected the round to continue")
	}
	if saved == nil || saved.CurrentTurnIndex != 1 {
		t.Fatalf("expected turn index 1 to be saved, got %+v", saved)
	}
	if out.View.Current.Name != "Theo" {
		t.Fatalf("expected Theo to act next, got %s", out.View.Current.Name)
	}
}

func TestAdvanceTurnFromFixtureStartsRound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := initiativeordersmock.NewMockRepository(ctrl)
	ctx := context.Background()

	order := testutils.CreateTestOrderAtStage(testutils.TestSessionID, testutils.StageMidRound)

	var saved *initiative.Order
	mocks.ExpectOrderGet(ctx, repo, order)
	mocks.ExpectOrderUpdate(ctx, repo, &saved)

	svc, err := orch.NewOrchestrator(&orch.Config{Repository: repo, IDGenerator: idgen.NewSequential("init")})
	if err != nil {
		t.Fatal(err)
	}

	out, err := svc.AdvanceTurn(ctx, &orch.AdvanceTurnInput{OrderID: order.ID})
	if err != nil {
		t.Fatal(err)
	}
	if !out.NewRound || saved.CurrentRound != 2 {
		t.Fatalf("expected round 2, got %d", saved.CurrentRound)
	}
	for _, e := range saved.Entries {
		if e.HasActed {
			t.Fatalf("expected %s to be reset", e.Name)
		}
	}
}

func TestAdvanceEndedOrderDoesNotSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := initiativeordersmock.NewMockRepository(ctrl)
	ctx := context.Background()

	order := builders.NewOrderBuilder().
		WithCombatant("Theo", 9).
		Ended(time.Date(2024, 2, 14, 22, 0, 0, 0, time.UTC)).
		Build()

	// no Update expected
	mocks.ExpectOrderGet(ctx, repo, order)

	svc, err := orch.NewOrchestrator(&orch.Config{Repository: repo, IDGenerator: idgen.NewSequential("init")})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.AdvanceTurn(ctx, &orch.AdvanceTurnInput{OrderID: order.ID})
	if !errors.IsFailedPrecondition(err) {
		t.Fatalf("expected failed precondition, got %v", err)
	}
}

func TestRemoveCombatantOrderMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := initiativeordersmock.NewMockRepository(ctrl)
	ctx := context.Background()

	mocks.ExpectOrderGetError(ctx, repo, "order-missing", errors.NotFoundf("initiative order %s not found", "order-missing"))

	svc, err := orch.NewOrchestrator(&orch.Config{Repository: repo, IDGenerator: idgen.NewSequential("init")})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.RemoveCombatant(ctx, &orch.RemoveCombatantInput{OrderID: "order-missing", EntryID: "entry-1"})
	if !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func TestAddCombatantDuplicateID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := initiativeordersmock.NewMockRepository(ctrl)
	ctx := context.Background()

	order := builders.NewOrderBuilder().WithCombatant("Theo", 9).Build()

	// the entry is rejected before anything is saved
	mocks.ExpectOrderGet(ctx, repo, order)

	svc, err := orch.NewOrchestrator(&orch.Config{Repository: repo, IDGenerator: fixedID(order.Entries[0].ID)})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.AddCombatant(ctx, &orch.AddCombatantInput{OrderID: order.ID, Name: "Beckett"})
	if !errors.IsAlreadyExists(err) {
		t.Fatalf("expected already exists, got %v", err)
	}
	if got := errors.GetMeta(err)["entry_id"]; got != order.Entries[0].ID {
		t.Fatalf("expected entry_id meta %s, got %v", order.Entries[0].ID, got)
	}
}
