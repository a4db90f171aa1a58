package history_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/history"
	"github.com/KirkDiggler/vtm-api/internal/pkg/clock"
	"github.com/KirkDiggler/vtm-api/internal/pkg/idgen"
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
	rolllogmock "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log/mock"
	"github.com/KirkDiggler/vtm-api/internal/testutils"
	"github.com/KirkDiggler/vtm-api/internal/testutils/builders"
	"github.com/KirkDiggler/vtm-api/internal/testutils/mocks"
)

type RecorderTestSuite struct {
	suite.Suite
	rollLog  *rolllog.InMemoryRepository
	recorder *history.Recorder
	ctx      context.Context
}

func TestRecorderSuite(t *testing.T) {
	suite.Run(t, new(RecorderTestSuite))
}

func (s *RecorderTestSuite) SetupTest() {
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

func (s *RecorderTestSuite) TestRecordWithChronicle() {
	id, err := s.recorder.Record(s.ctx, history.RollContext{
		ChronicleID: "chronicle_1",
		CharacterID: "char_1",
		Description: "Dominate the ghoul",
	}, history.Record{
		System:    history.SystemV5,
		Kind:      "roll",
		Result:    "success",
		Successes: 3,
		Detail:    map[string]int{"margin": 1},
	})
	s.Require().NoError(err)
	s.NotEmpty(id)

	entries, err := s.recorder.List(s.ctx, rolllog.ListInput{ChronicleID: "chronicle_1"})
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(id, entries[0].ID)
	s.Equal("char_1", entries[0].CharacterID)
	s.Equal("Dominate the ghoul", entries[0].Description)
	s.Equal(3, entries[0].Successes)

	var detail map[string]int
	s.Require().NoError(json.Unmarshal(entries[0].Detail, &detail))
	s.Equal(1, detail["margin"])
}

func (s *RecorderTestSuite) TestRecordWithoutChronicleSkipsLog() {
	id, err := s.recorder.Record(s.ctx, history.RollContext{}, history.Record{
		System: history.SystemV20,
		Kind:   "roll",
		Result: "botch",
	})
	s.Require().NoError(err)
	s.Empty(id)
}

func (s *RecorderTestSuite) TestSecretRollsHidden() {
	_, err := s.recorder.Record(s.ctx, history.RollContext{ChronicleID: "c", Secret: true},
		history.Record{System: history.SystemV5, Kind: "roll", Result: "failure"})
	s.Require().NoError(err)

	entries, err := s.recorder.List(s.ctx, rolllog.ListInput{ChronicleID: "c"})
	s.Require().NoError(err)
	s.Empty(entries)

	entries, err = s.recorder.List(s.ctx, rolllog.ListInput{ChronicleID: "c", IncludeSecret: true})
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func TestRecorderAppendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := rolllogmock.NewMockRepository(ctrl)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	recorder, err := history.NewRecorder(&history.Config{RollLog: repo, IDGenerator: idgen.NewSequential("roll")})
	if err != nil {
		t.Fatal(err)
	}

	_, err = recorder.Record(context.Background(), history.RollContext{ChronicleID: "c"},
		history.Record{System: history.SystemV5, Kind: "roll"})
	if errors.GetCode(err) != errors.CodeUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestNewRecorderValidation(t *testing.T) {
	_, err := history.NewRecorder(&history.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestRecorderBuildsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := rolllogmock.NewMockRepository(ctrl)
	ctx := context.Background()

	var appended []*rolllog.Entry
	mocks.ExpectRollAppend(ctx, repo, &appended)

	recorder, err := history.NewRecorder(&history.Config{RollLog: repo, IDGenerator: idgen.NewSequential("roll")})
	if err != nil {
		t.Fatal(err)
	}

	id, err := recorder.Record(ctx, history.RollContext{
		ChronicleID: testutils.TestChronicleID,
		SessionID:   testutils.TestSessionID,
		CharacterID: testutils.TestCharacterID,
		Secret:      true,
	}, history.Record{System: history.SystemV20, Kind: "soak", Result: "success", Successes: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(appended) != 1 {
		t.Fatalf("expected one append, got %d", len(appended))
	}

	want := builders.NewRollEntryBuilder().
		WithID(id).
		WithChronicleID(testutils.TestChronicleID).
		WithCharacterID(testutils.TestCharacterID).
		WithV20().
		WithKind("soak").
		WithResult("success", 2).
		Secret().
		Build()

	got := appended[0]
	if got.ID != want.ID || got.ChronicleID != want.ChronicleID || got.CharacterID != want.CharacterID ||
		got.System != want.System || got.Kind != want.Kind || got.Result != want.Result ||
		got.Successes != want.Successes || got.Secret != want.Secret {
		t.Fatalf("unexpected entry %+v", got)
	}
	if got.SessionID != testutils.TestSessionID {
		t.Fatalf("expected session %s, got %s", testutils.TestSessionID, got.SessionID)
	}
}
