package vitae_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/history"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/vitae"
	"github.com/KirkDiggler/vtm-api/internal/pkg/clock"
	"github.com/KirkDiggler/vtm-api/internal/pkg/idgen"
	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
	"github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

type OrchestratorTestSuite struct {
	suite.Suite
	rollLog  *rolllog.InMemoryRepository
	recorder *history.Recorder
	ctx      context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	var err error
	s.rollLog, err = rolllog.NewInMemoryRepository(&rolllog.InMemoryConfig{
		Clock: clock.NewFixed(time.Date(2024, 2, 14, 21, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)

	s.recorder, err = history.NewRecorder(&history.Config{
		RollLog:     s.rollLog,
		IDGenerator: idgen.NewSequential("roll"),
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) orchestrator(faces ...int) vitae.Service {
	svc, err := vitae.NewOrchestrator(&vitae.Config{
		Recorder: s.recorder,
		Source:   roller.NewScripted(faces...),
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) TestIncreaseHunger() {
	out, err := s.orchestrator().IncreaseHunger(s.ctx, &vitae.IncreaseHungerInput{Current: 4, Amount: 2})
	s.Require().NoError(err)
	s.Equal(5, out.Change.New)
	s.Equal(1, out.Change.Change)
	s.True(out.Change.AtMaximum())

	_, err = s.orchestrator().IncreaseHunger(s.ctx, &vitae.IncreaseHungerInput{Current: 6, Amount: 1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDecreaseHunger() {
	out, err := s.orchestrator().DecreaseHunger(s.ctx, &vitae.DecreaseHungerInput{
		Current: 3, Amount: 2, BloodPotency: 2, Animal: true,
	})
	s.Require().NoError(err)
	s.Equal(3, out.Change.New)
	s.Equal("Animal blood no longer sustains you.", out.Change.Message)

	out, err = s.orchestrator().DecreaseHunger(s.ctx, &vitae.DecreaseHungerInput{Current: 3, Amount: 2, BloodPotency: 1})
	s.Require().NoError(err)
	s.Equal(1, out.Change.New)
	s.Equal(-2, out.Change.Change)

	_, err = s.orchestrator().DecreaseHunger(s.ctx, &vitae.DecreaseHungerInput{
		Current: 3, Amount: 1, Animal: true, Bagged: true,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSlakeHunger() {
	out, err := s.orchestrator().SlakeHunger(s.ctx, &vitae.SlakeHungerInput{Current: 4, BloodPotency: 5})
	s.Require().NoError(err)
	s.Equal(1, out.Change.New)

	out, err = s.orchestrator().SlakeHunger(s.ctx, &vitae.SlakeHungerInput{Current: 4, BloodPotency: 5, Kill: true})
	s.Require().NoError(err)
	s.Equal(0, out.Change.New)
	s.Equal(4, out.Change.Change)
}

func (s *OrchestratorTestSuite) TestRouseCheckFailure() {
	out, err := s.orchestrator(3).RouseCheck(s.ctx, &vitae.RouseCheckInput{
		RollContext: history.RollContext{ChronicleID: "chronicle_1"},
		Hunger:      2,
	})
	s.Require().NoError(err)
	s.False(out.Result.Success)
	s.Len(out.Result.Dice, 1)
	s.Equal(3, out.NewHunger)
	s.NotEmpty(out.RollID)

	logged, err := s.rollLog.List(s.ctx, rolllog.ListInput{ChronicleID: "chronicle_1"})
	s.Require().NoError(err)
	s.Require().Len(logged.Entries, 1)
	s.Equal(vitae.KindRouse, logged.Entries[0].Kind)
	s.Equal("failure", logged.Entries[0].Result)
}

func (s *OrchestratorTestSuite) TestRouseCheckReroll() {
	out, err := s.orchestrator(3, 7).RouseCheck(s.ctx, &vitae.RouseCheckInput{BloodPotency: 3, Hunger: 2})
	s.Require().NoError(err)
	s.True(out.Result.Success)
	s.True(out.Result.Rerolled)
	s.Equal([]int{3, 7}, out.Result.Dice)
	s.Equal(2, out.NewHunger)
}

func (s *OrchestratorTestSuite) TestRouseCheckAtMaxHunger() {
	out, err := s.orchestrator(2).RouseCheck(s.ctx, &vitae.RouseCheckInput{Hunger: 5})
	s.Require().NoError(err)
	s.False(out.Result.Success)
	s.Equal(0, out.Result.HungerIncrease)
	s.Equal(5, out.NewHunger)
}

func (s *OrchestratorTestSuite) TestMultipleRouseChecks() {
	out, err := s.orchestrator(2, 2, 8).MultipleRouseChecks(s.ctx, &vitae.MultipleRouseChecksInput{
		RollContext: history.RollContext{ChronicleID: "chronicle_1"},
		Count:       3,
		Hunger:      3,
	})
	s.Require().NoError(err)
	s.Len(out.Results, 3)
	s.Equal(5, out.FinalHunger)
	s.NotEmpty(out.RollID)

	_, err = s.orchestrator().MultipleRouseChecks(s.ctx, &vitae.MultipleRouseChecksInput{Count: 0})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestFrenzyCheckDefaultDifficulty() {
	out, err := s.orchestrator(6, 7, 8, 1, 1).FrenzyCheck(s.ctx, &vitae.FrenzyCheckInput{Willpower: 3, Humanity: 6})
	s.Require().NoError(err)
	s.Equal(vitae.DefaultFrenzyDifficulty, out.Roll.Difficulty)
	s.Equal(5, out.Roll.Pool())
	s.True(out.Success)
}

func (s *OrchestratorTestSuite) TestFrenzyCheckHungerSetsDifficulty() {
	out, err := s.orchestrator(6, 7, 8, 9, 1).FrenzyCheck(s.ctx, &vitae.FrenzyCheckInput{
		Willpower: 3,
		Humanity:  6,
		Hunger:    5,
	})
	s.Require().NoError(err)
	s.Equal(v5.HungerFrenzyDifficulty(5), out.Roll.Difficulty)
	s.Equal(4, out.Roll.Successes)
	s.False(out.Success)

	out, err = s.orchestrator(6).FrenzyCheck(s.ctx, &vitae.FrenzyCheckInput{
		Willpower: 1, Humanity: 0, Hunger: 3,
	})
	s.Require().NoError(err)
	s.Equal(vitae.DefaultFrenzyDifficulty, out.Roll.Difficulty)

	out, err = s.orchestrator(6).FrenzyCheck(s.ctx, &vitae.FrenzyCheckInput{
		Willpower: 1, Humanity: 0, Hunger: 4, Difficulty: 2,
	})
	s.Require().NoError(err)
	s.Equal(2, out.Roll.Difficulty)

	_, err = s.orchestrator().FrenzyCheck(s.ctx, &vitae.FrenzyCheckInput{Willpower: 1, Hunger: 6})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestResistFrenzy() {
	out, err := s.orchestrator(2).ResistFrenzy(s.ctx, &vitae.ResistFrenzyInput{
		Willpower: 3,
		Humanity:  6,
		Trigger:   v5.TriggerFireTouching,
	})
	s.Require().NoError(err)
	s.False(out.Result.Success)
	s.Equal(4, out.Result.Difficulty)
	s.Equal(v5.FrenzyTerror, out.Result.Type)

	_, err = s.orchestrator().ResistFrenzy(s.ctx, &vitae.ResistFrenzyInput{Willpower: 3, Humanity: 6})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRideTheWave() {
	out, err := s.orchestrator(6, 6).RideTheWave(s.ctx, &vitae.RideTheWaveInput{Willpower: 2})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal(2, out.Roll.Successes)
}

func (s *OrchestratorTestSuite) TestGetBloodPotency() {
	out, err := s.orchestrator().GetBloodPotency(s.ctx, &vitae.GetBloodPotencyInput{Level: 3})
	s.Require().NoError(err)
	s.Equal(3, out.BloodPotency.Level)
	s.True(out.CanRerollRouse)
	s.False(out.CanFeedOnAnimals)
	s.False(out.CanUseBloodBags)

	_, err = s.orchestrator().GetBloodPotency(s.ctx, &vitae.GetBloodPotencyInput{Level: 11})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListBloodPotency() {
	out, err := s.orchestrator().ListBloodPotency(s.ctx, &vitae.ListBloodPotencyInput{})
	s.Require().NoError(err)
	s.Len(out.Levels, 11)
	s.Equal(10, out.Levels[10].Level)
}

func (s *OrchestratorTestSuite) TestGetGeneration() {
	out, err := s.orchestrator().GetGeneration(s.ctx, &vitae.GetGenerationInput{Generation: 13})
	s.Require().NoError(err)
	s.Equal(10, out.MaxBloodPool)
	s.Equal(1, out.BloodPerTurn)
	s.Equal(1, out.StartingBloodPotency)
	s.Equal(2, out.MaxBloodPotency)

	_, err = s.orchestrator().GetGeneration(s.ctx, &vitae.GetGenerationInput{Generation: 1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSpendBlood() {
	out, err := s.orchestrator().SpendBlood(s.ctx, &vitae.SpendBloodInput{Current: 5, Amount: 1})
	s.Require().NoError(err)
	s.Equal(4, out.Change.New)
	s.Equal(10, out.Change.Max)

	out, err = s.orchestrator().SpendBlood(s.ctx, &vitae.SpendBloodInput{Current: 5, Amount: 2, Generation: 13})
	s.Require().NoError(err)
	s.Equal(5, out.Change.New)
	s.Equal(0, out.Change.Change)
}

func (s *OrchestratorTestSuite) TestGainBlood() {
	out, err := s.orchestrator().GainBlood(s.ctx, &vitae.GainBloodInput{Current: 9, Amount: 3, Generation: 13})
	s.Require().NoError(err)
	s.Equal(10, out.Change.New)
	s.Equal(1, out.Change.Change)

	out, err = s.orchestrator().GainBlood(s.ctx, &vitae.GainBloodInput{Current: 9, Amount: 3, MaxPool: 20})
	s.Require().NoError(err)
	s.Equal(12, out.Change.New)
}

func (s *OrchestratorTestSuite) TestHealDamage() {
	out, err := s.orchestrator().HealDamage(s.ctx, &vitae.HealDamageInput{
		CurrentPool: 10, DamageType: v20.DamageAggravated, Amount: 1,
	})
	s.Require().NoError(err)
	s.True(out.Result.Success)
	s.Equal(5, out.Result.Cost)

	_, err = s.orchestrator().HealDamage(s.ctx, &vitae.HealDamageInput{
		CurrentPool: 10, DamageType: v20.DamageType(7), Amount: 1,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestBoostAttribute() {
	out, err := s.orchestrator().BoostAttribute(s.ctx, &vitae.BoostAttributeInput{
		CurrentPool: 10, Attribute: v20.AttributeStrength, Amount: 3, Generation: 8,
	})
	s.Require().NoError(err)
	s.True(out.Result.Success)
	s.Equal(3, out.Result.Boost)

	_, err = s.orchestrator().BoostAttribute(s.ctx, &vitae.BoostAttributeInput{
		CurrentPool: 10, Attribute: "charisma", Amount: 1,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetDaytimePenalty() {
	out, err := s.orchestrator().GetDaytimePenalty(s.ctx, &vitae.GetDaytimePenaltyInput{Humanity: 7})
	s.Require().NoError(err)
	s.Equal(-2, out.Penalty)
}

func TestNewOrchestratorValidation(t *testing.T) {
	_, err := vitae.NewOrchestrator(&vitae.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
