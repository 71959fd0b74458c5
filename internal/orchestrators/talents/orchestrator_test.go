package talents

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/talent-api/internal/engine"
	"github.com/KirkDiggler/talent-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
	loadermock "github.com/KirkDiggler/talent-api/internal/loader/mock"
	"github.com/KirkDiggler/talent-api/internal/pkg/clock"
	"github.com/KirkDiggler/talent-api/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/talent-api/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/talent-api/internal/testutils"
	"github.com/KirkDiggler/talent-api/internal/testutils/builders"
	"github.com/KirkDiggler/talent-api/internal/testutils/mocks"
)

type recordingObserver struct {
	mu    sync.Mutex
	last  entities.Progression
	trees int
	calls int
}

func (r *recordingObserver) ObserveProgression(p entities.Progression, treeCount int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = p
	r.trees = treeCount
	r.calls++
}

type OrchestratorTestSuite struct {
	suite.Suite

	ctrl       *gomock.Controller
	mockSource *loadermock.MockSource
	bus        events.EventBus
	observer   *recordingObserver
	loadedAt   time.Time
	ctx        context.Context

	orchestrator Service

	mu       sync.Mutex
	received []string
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSource = loadermock.NewMockSource(s.ctrl)
	s.bus = events.NewBus()
	s.observer = &recordingObserver{}
	s.loadedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()
	s.received = nil

	record := func(_ context.Context, e events.Event) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.received = append(s.received, e.Type())
		return nil
	}
	for _, eventType := range []string{
		rpgtoolkit.EventTalentAllocated,
		rpgtoolkit.EventTalentReclaimed,
		rpgtoolkit.EventTalentCapped,
		rpgtoolkit.EventTalentLocked,
		rpgtoolkit.EventTalentEmpty,
		rpgtoolkit.EventTalentAdded,
		rpgtoolkit.EventTalentRemoved,
		rpgtoolkit.EventTalentEdited,
		rpgtoolkit.EventTreesReloaded,
		rpgtoolkit.EventTreesReloadFailed,
		rpgtoolkit.EventTreesReloadDiscarded,
	} {
		s.bus.SubscribeFunc(eventType, 0, record)
	}

	var err error
	s.orchestrator, err = NewOrchestrator(&Config{
		Engine:      engine.New(engine.DefaultRowRequirements()),
		Source:      s.mockSource,
		IDGenerator: idgen.NewSequential("talent"),
		Clock:       clock.Fixed{At: s.loadedAt},
		EventBus:    s.bus,
		Observer:    s.observer,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) load() *ReloadTreesOutput {
	mocks.ExpectLoad(s.mockSource, testutils.CreateTestTreeDefinitions(), nil)
	out, err := s.orchestrator.ReloadTrees(s.ctx, &ReloadTreesInput{})
	s.Require().NoError(err)
	s.resetEvents()
	return out
}

func (s *OrchestratorTestSuite) resetEvents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = nil
}

func (s *OrchestratorTestSuite) events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.received...)
}

func (s *OrchestratorTestSuite) allocate(tree, talent string, n int) {
	for i := 0; i < n; i++ {
		out, err := s.orchestrator.Allocate(s.ctx, &AllocateInput{Tree: tree, TalentID: talent})
		s.Require().NoError(err)
		s.Require().True(out.Allowed, "allocation %d of %s/%s", i+1, tree, talent)
	}
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresDependencies() {
	_, err := NewOrchestrator(&Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	s.Contains(meta, "validation_errors")

	_, err = NewOrchestrator(nil)
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestReloadTreesInstallsDefinitions() {
	mocks.ExpectLoad(s.mockSource, testutils.CreateTestTreeDefinitions(), nil)

	out, err := s.orchestrator.ReloadTrees(s.ctx, &ReloadTreesInput{})
	s.Require().NoError(err)

	s.Len(out.Trees, 2)
	s.Equal(testutils.TreeArcane, out.Trees[0].Name)
	s.Equal(testutils.TreeFire, out.Trees[1].Name)
	s.Equal(uint64(1), out.Generation)
	s.Equal(0, out.Progression.Level)
	s.Equal([]string{rpgtoolkit.EventTreesReloaded}, s.events())

	status, err := s.orchestrator.GetStatus(s.ctx, &GetStatusInput{})
	s.Require().NoError(err)
	s.True(status.Loaded)
	s.Equal(uint64(1), status.Generation)
	s.Equal(s.loadedAt, status.LoadedAt)
	s.Equal(2, status.TreeCount)
}

func (s *OrchestratorTestSuite) TestReloadTreesReportsWarnings() {
	defs := map[string]entities.TreeDefinition{
		testutils.TreeFire: builders.NewTreeDefinitionBuilder("Fire").
			WithAllocatedTalent("ignite", 5, 1, 2).
			WithPointsSpent(9).
			Build(),
	}
	mocks.ExpectLoad(s.mockSource, defs, nil)

	out, err := s.orchestrator.ReloadTrees(s.ctx, &ReloadTreesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Warnings, 1)
	s.Equal(testutils.TreeFire, out.Warnings[0].Tree)
	s.Equal(2, out.Trees[0].PointsSpent)
	s.Equal(2, out.Progression.Level)
}

func (s *OrchestratorTestSuite) TestReloadTreesSourceFailureKeepsState() {
	s.load()
	s.allocate(testutils.TreeFire, "ignite", 2)

	mocks.ExpectLoad(s.mockSource, nil, errors.NotFound("no configuration stored"))

	_, err := s.orchestrator.ReloadTrees(s.ctx, &ReloadTreesInput{})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	tree, err := s.orchestrator.GetTree(s.ctx, &GetTreeInput{Name: testutils.TreeFire})
	s.Require().NoError(err)
	s.Equal(2, tree.Tree.PointsSpent)
	s.Contains(s.events(), rpgtoolkit.EventTreesReloadFailed)

	status, err := s.orchestrator.GetStatus(s.ctx, &GetStatusInput{})
	s.Require().NoError(err)
	s.Equal(uint64(1), status.Generation)
}

func (s *OrchestratorTestSuite) TestReloadTreesRejectsInvalidConfiguration() {
	s.load()

	defs := map[string]entities.TreeDefinition{
		testutils.TreeFire: builders.NewTreeDefinitionBuilder("Fire").
			WithAllocatedTalent("ignite", 2, 1, 3).
			Build(),
	}
	mocks.ExpectLoad(s.mockSource, defs, nil)

	_, err := s.orchestrator.ReloadTrees(s.ctx, &ReloadTreesInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidConfiguration(err))

	list, err := s.orchestrator.ListTrees(s.ctx, &ListTreesInput{})
	s.Require().NoError(err)
	s.Len(list.Trees, 2)
}

func (s *OrchestratorTestSuite) TestNewerReloadSupersedesOlder() {
	stale := map[string]entities.TreeDefinition{
		"stale": builders.NewTreeDefinitionBuilder("Stale").WithTalent("old", 1, 1).Build(),
	}

	started := make(chan struct{})
	release := make(chan struct{})
	s.mockSource.EXPECT().
		Load(gomock.Any()).
		DoAndReturn(func(context.Context) (map[string]entities.TreeDefinition, error) {
			close(started)
			<-release
			return stale, nil
		})
	mocks.ExpectLoad(s.mockSource, testutils.CreateTestTreeDefinitions(), nil)

	var (
		wg       sync.WaitGroup
		staleErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, staleErr = s.orchestrator.ReloadTrees(s.ctx, &ReloadTreesInput{})
	}()

	<-started
	out, err := s.orchestrator.ReloadTrees(s.ctx, &ReloadTreesInput{})
	s.Require().NoError(err)
	s.Equal(uint64(2), out.Generation)

	close(release)
	wg.Wait()

	s.Require().Error(staleErr)
	s.True(errors.IsAborted(staleErr))

	list, err := s.orchestrator.ListTrees(s.ctx, &ListTreesInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Trees, 2)
	s.Equal(testutils.TreeArcane, list.Trees[0].Name)

	s.Equal([]string{rpgtoolkit.EventTreesReloaded, rpgtoolkit.EventTreesReloadDiscarded}, s.events())
}

func (s *OrchestratorTestSuite) TestAllocateOutcomes() {
	s.load()

	out, err := s.orchestrator.Allocate(s.ctx, &AllocateInput{Tree: testutils.TreeFire, TalentID: "inferno"})
	s.Require().NoError(err)
	s.Equal(entities.OutcomeLocked, out.Outcome)
	s.False(out.Allowed)
	s.Equal(5, out.Requirement)
	s.Equal(0, out.Talent.Points)

	s.allocate(testutils.TreeFire, "ignite", 5)

	out, err = s.orchestrator.Allocate(s.ctx, &AllocateInput{Tree: testutils.TreeFire, TalentID: "ignite"})
	s.Require().NoError(err)
	s.Equal(entities.OutcomeCapped, out.Outcome)
	s.False(out.Allowed)

	out, err = s.orchestrator.Allocate(s.ctx, &AllocateInput{Tree: testutils.TreeFire, TalentID: "inferno"})
	s.Require().NoError(err)
	s.Equal(entities.OutcomeAllocated, out.Outcome)
	s.True(out.Allowed)
	s.Equal(6, out.PointsSpent)
	s.Equal(6, out.Progression.Level)
	s.Equal(int64(77), out.Progression.Experience)
	s.Equal([]entities.RowState{
		{Row: 1, Requirement: 0, Met: true},
		{Row: 2, Requirement: 5, Met: true},
	}, out.RowStates)

	s.Equal(6, s.observer.last.Level)
	s.Equal(2, s.observer.trees)
}

func (s *OrchestratorTestSuite) TestAllocatePublishesOutcomeEvents() {
	s.load()

	_, err := s.orchestrator.Allocate(s.ctx, &AllocateInput{Tree: testutils.TreeArcane, TalentID: "blink"})
	s.Require().NoError(err)
	s.allocate(testutils.TreeArcane, "missile", 1)
	_, err = s.orchestrator.Reclaim(s.ctx, &ReclaimInput{Tree: testutils.TreeArcane, TalentID: "blink"})
	s.Require().NoError(err)

	s.Equal([]string{
		rpgtoolkit.EventTalentLocked,
		rpgtoolkit.EventTalentAllocated,
		rpgtoolkit.EventTalentEmpty,
	}, s.events())
}

func (s *OrchestratorTestSuite) TestReclaimRoundTrip() {
	s.load()
	s.allocate(testutils.TreeArcane, "missile", 1)
	s.allocate(testutils.TreeArcane, "blink", 1)

	out, err := s.orchestrator.Reclaim(s.ctx, &ReclaimInput{Tree: testutils.TreeArcane, TalentID: "missile"})
	s.Require().NoError(err)
	s.Equal(entities.OutcomeReclaimed, out.Outcome)
	s.True(out.Allowed)
	s.Equal(1, out.PointsSpent)
	s.Equal(1, out.Progression.Level)
	s.Equal([]entities.RowState{
		{Row: 1, Requirement: 0, Met: true},
		{Row: 2, Requirement: 1, Met: true},
	}, out.RowStates)

	out, err = s.orchestrator.Reclaim(s.ctx, &ReclaimInput{Tree: testutils.TreeArcane, TalentID: "missile"})
	s.Require().NoError(err)
	s.Equal(entities.OutcomeEmpty, out.Outcome)
	s.False(out.Allowed)
}

func (s *OrchestratorTestSuite) TestUnknownTargetsAreNotFound() {
	s.load()

	_, err := s.orchestrator.Allocate(s.ctx, &AllocateInput{Tree: "frost", TalentID: "ignite"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.Reclaim(s.ctx, &ReclaimInput{Tree: testutils.TreeFire, TalentID: "frostbolt"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetTree(s.ctx, &GetTreeInput{Name: "frost"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.RemoveTalent(s.ctx, &RemoveTalentInput{Tree: testutils.TreeFire, TalentID: "frostbolt"})
	s.True(errors.IsNotFound(err))

	s.Empty(s.events())
}

func (s *OrchestratorTestSuite) TestInputValidation() {
	_, err := s.orchestrator.Allocate(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Allocate(s.ctx, &AllocateInput{Tree: testutils.TreeFire})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Reclaim(s.ctx, &ReclaimInput{TalentID: "ignite"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.GetTree(s.ctx, &GetTreeInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.AddTalent(s.ctx, &AddTalentInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.EditTalent(s.ctx, &EditTalentInput{Tree: testutils.TreeFire, TalentID: "ignite"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddTalentGeneratesID() {
	s.load()

	out, err := s.orchestrator.AddTalent(s.ctx, &AddTalentInput{
		Tree:   testutils.TreeFire,
		Talent: entities.Talent{Name: "Flashpoint", MaxPoints: 2, Row: 3, Points: 1},
	})
	s.Require().NoError(err)
	s.Equal("talent-1", out.Talent.ID)
	s.Equal(1, out.Progression.Level)

	tree, err := s.orchestrator.GetTree(s.ctx, &GetTreeInput{Name: testutils.TreeFire})
	s.Require().NoError(err)
	s.Contains(tree.Tree.Talents, "talent-1")
	s.Equal(1, tree.Tree.PointsSpent)
	s.Equal([]string{rpgtoolkit.EventTalentAdded}, s.events())
}

func (s *OrchestratorTestSuite) TestAddTalentDuplicate() {
	s.load()

	_, err := s.orchestrator.AddTalent(s.ctx, &AddTalentInput{
		Tree:   testutils.TreeFire,
		Talent: entities.Talent{ID: "ignite", MaxPoints: 1, Row: 1},
	})
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestRemoveTalentRefundsPoints() {
	s.load()
	s.allocate(testutils.TreeFire, "scorch", 3)

	out, err := s.orchestrator.RemoveTalent(s.ctx, &RemoveTalentInput{Tree: testutils.TreeFire, TalentID: "scorch"})
	s.Require().NoError(err)
	s.Equal(3, out.Talent.Points)
	s.Equal(0, out.Progression.Level)

	_, err = s.orchestrator.GetTree(s.ctx, &GetTreeInput{Name: testutils.TreeFire})
	s.Require().NoError(err)
	s.Equal(0, s.observer.last.Level)
}

func (s *OrchestratorTestSuite) TestEditTalent() {
	s.load()
	s.allocate(testutils.TreeFire, "ignite", 3)
	s.resetEvents()

	out, err := s.orchestrator.EditTalent(s.ctx, &EditTalentInput{
		Tree:     testutils.TreeFire,
		TalentID: "ignite",
		Field:    entities.TalentFieldRow,
		Value:    "4",
	})
	s.Require().NoError(err)
	s.Equal(4, out.Talent.Row)
	s.Equal(3, out.Talent.Points)
	s.Equal([]entities.RowState{
		{Row: 1, Requirement: 0, Met: true},
		{Row: 2, Requirement: 5, Met: false},
		{Row: 4, Requirement: 15, Met: false},
	}, out.RowStates)

	_, err = s.orchestrator.EditTalent(s.ctx, &EditTalentInput{
		Tree:     testutils.TreeFire,
		TalentID: "ignite",
		Field:    entities.TalentFieldMaxPoints,
		Value:    "2",
	})
	s.True(errors.IsInvalidArgument(err))

	s.Equal([]string{rpgtoolkit.EventTalentEdited}, s.events())
}

func (s *OrchestratorTestSuite) TestGetProgression() {
	s.load()
	s.allocate(testutils.TreeFire, "ignite", 2)
	s.allocate(testutils.TreeArcane, "missile", 1)

	out, err := s.orchestrator.GetProgression(s.ctx, &GetProgressionInput{})
	s.Require().NoError(err)
	s.Equal(3, out.Progression.Level)
	s.Equal(int64(33), out.Progression.Experience)
	s.Equal(int64(46), out.Progression.NextLevelExperience)
	s.Equal(2, out.TreeCount)
}

func (s *OrchestratorTestSuite) TestStatusBeforeLoad() {
	status, err := s.orchestrator.GetStatus(s.ctx, &GetStatusInput{})
	s.Require().NoError(err)
	s.False(status.Loaded)
	s.Zero(status.TreeCount)
}

func (s *OrchestratorTestSuite) TestConcurrentAllocations() {
	s.load()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.orchestrator.Allocate(s.ctx, &AllocateInput{Tree: testutils.TreeFire, TalentID: "ignite"})
		}()
	}
	wg.Wait()

	tree, err := s.orchestrator.GetTree(s.ctx, &GetTreeInput{Name: testutils.TreeFire})
	s.Require().NoError(err)
	s.Equal(5, tree.Tree.Talents["ignite"].Points)
	s.Equal(5, tree.Tree.PointsSpent)
}

func TestAddTalentKeepsProvidedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := loadermock.NewMockSource(ctrl)
	mockIDs := idgenmock.NewMockGenerator(ctrl)

	o, err := NewOrchestrator(&Config{
		Engine:      engine.New(engine.DefaultRowRequirements()),
		Source:      mockSource,
		IDGenerator: mockIDs,
		Clock:       clock.New(),
		EventBus:    events.NewBus(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx := context.Background()
	mocks.ExpectLoad(mockSource, testutils.CreateTestTreeDefinitions(), nil)
	_, err = o.ReloadTrees(ctx, &ReloadTreesInput{})
	require.NoError(t, err)

	// explicit ids never consult the generator
	out, err := o.AddTalent(ctx, &AddTalentInput{
		Tree:   testutils.TreeArcane,
		Talent: entities.Talent{ID: "haste", MaxPoints: 1, Row: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "haste", out.Talent.ID)

	mockIDs.EXPECT().Generate().Return("talent-9f86d081")
	out, err = o.AddTalent(ctx, &AddTalentInput{
		Tree:   testutils.TreeArcane,
		Talent: entities.Talent{MaxPoints: 1, Row: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "talent-9f86d081", out.Talent.ID)
}
