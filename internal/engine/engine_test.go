package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/talent-api/internal/engine"
	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

type EngineTestSuite struct {
	suite.Suite
	engine *engine.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.engine = engine.New(engine.DefaultRowRequirements())
	_, err := s.engine.LoadTrees(map[string]entities.TreeDefinition{
		"fire": {
			Title:       "Fire",
			Description: "Burn things",
			Talents: []entities.TalentDefinition{
				{ID: "ignite", Name: "Ignite", MaxPoints: 5, Row: 1},
				{ID: "scorch", Name: "Scorch", MaxPoints: 3, Row: 1},
				{ID: "inferno", Name: "Inferno", MaxPoints: 2, Row: 2},
				{ID: "phoenix", Name: "Phoenix", MaxPoints: 1, Row: 3},
			},
		},
		"frost": {
			Title:           "Frost",
			RowRequirements: entities.RowRequirements{2: 1},
			Talents: []entities.TalentDefinition{
				{ID: "chill", Name: "Chill", MaxPoints: 3, Row: 1},
				{ID: "shatter", Name: "Shatter", MaxPoints: 2, Row: 2},
			},
		},
	})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) allocateN(tree, talent string, n int) {
	for i := 0; i < n; i++ {
		result, err := s.engine.Allocate(tree, talent)
		s.Require().NoError(err)
		s.Require().Equal(entities.OutcomeAllocated, result.Outcome)
	}
}

func (s *EngineTestSuite) assertInvariants() {
	for _, tree := range s.engine.ListTrees() {
		sum := 0
		for _, talent := range tree.Talents {
			s.GreaterOrEqual(talent.Points, 0, "talent %s", talent.ID)
			s.LessOrEqual(talent.Points, talent.MaxPoints, "talent %s", talent.ID)
			sum += talent.Points
		}
		s.Equal(sum, tree.PointsSpent, "tree %s", tree.Name)
	}
}

func (s *EngineTestSuite) TestAllocateGatedByRowRequirement() {
	s.allocateN("fire", "ignite", 4)

	result, err := s.engine.Allocate("fire", "inferno")
	s.Require().NoError(err)
	s.Equal(entities.OutcomeLocked, result.Outcome)
	s.Equal(5, result.Requirement)
	s.Equal(0, result.Talent.Points)
	s.Equal(4, result.PointsSpent)

	s.allocateN("fire", "scorch", 1)

	result, err = s.engine.Allocate("fire", "inferno")
	s.Require().NoError(err)
	s.Equal(entities.OutcomeAllocated, result.Outcome)
	s.Equal(1, result.Talent.Points)
	s.Equal(6, result.PointsSpent)
	s.assertInvariants()
}

func (s *EngineTestSuite) TestAllocateCapped() {
	s.allocateN("fire", "scorch", 3)

	result, err := s.engine.Allocate("fire", "scorch")
	s.Require().NoError(err)
	s.Equal(entities.OutcomeCapped, result.Outcome)

	// Repeating at the cap stays a no-op
	result, err = s.engine.Allocate("fire", "scorch")
	s.Require().NoError(err)
	s.Equal(entities.OutcomeCapped, result.Outcome)

	talent, err := s.engine.GetTalent("fire", "scorch")
	s.Require().NoError(err)
	s.Equal(3, talent.Points)
	s.assertInvariants()
}

func (s *EngineTestSuite) TestReclaimAtZeroIsRejected() {
	for i := 0; i < 2; i++ {
		result, err := s.engine.Reclaim("fire", "ignite")
		s.Require().NoError(err)
		s.Equal(entities.OutcomeEmpty, result.Outcome)
		s.Equal(0, result.Talent.Points)
	}

	tree, err := s.engine.GetTree("fire")
	s.Require().NoError(err)
	s.Equal(0, tree.PointsSpent)
}

func (s *EngineTestSuite) TestAllocateReclaimRoundTrip() {
	s.allocateN("fire", "ignite", 2)
	before, err := s.engine.GetTree("fire")
	s.Require().NoError(err)
	progressionBefore := s.engine.Progression()

	_, err = s.engine.Allocate("fire", "ignite")
	s.Require().NoError(err)
	result, err := s.engine.Reclaim("fire", "ignite")
	s.Require().NoError(err)
	s.Equal(entities.OutcomeReclaimed, result.Outcome)

	after, err := s.engine.GetTree("fire")
	s.Require().NoError(err)
	s.Equal(before.PointsSpent, after.PointsSpent)
	s.Equal(before.Talents["ignite"].Points, after.Talents["ignite"].Points)
	s.Equal(progressionBefore, s.engine.Progression())
}

func (s *EngineTestSuite) TestReclaimDoesNotCascadeIntoLockedRows() {
	s.allocateN("fire", "ignite", 5)
	s.allocateN("fire", "inferno", 1)

	result, err := s.engine.Reclaim("fire", "ignite")
	s.Require().NoError(err)
	s.Equal(entities.OutcomeReclaimed, result.Outcome)

	inferno, err := s.engine.GetTalent("fire", "inferno")
	s.Require().NoError(err)
	s.Equal(1, inferno.Points, "points in a now-locked row are kept")

	rows, err := s.engine.RowStates("fire")
	s.Require().NoError(err)
	s.Equal([]entities.RowState{
		{Row: 1, Requirement: 0, Met: true},
		{Row: 2, Requirement: 5, Met: true},
		{Row: 3, Requirement: 10, Met: false},
	}, rows)

	// Drop below the row 2 threshold: the label flips, the holding stays
	_, err = s.engine.Reclaim("fire", "ignite")
	s.Require().NoError(err)
	rows, err = s.engine.RowStates("fire")
	s.Require().NoError(err)
	s.False(rows[1].Met)

	// Further allocation into the locked row is refused
	locked, err := s.engine.Allocate("fire", "inferno")
	s.Require().NoError(err)
	s.Equal(entities.OutcomeLocked, locked.Outcome)
	s.assertInvariants()
}

func (s *EngineTestSuite) TestRowRequirementResolution() {
	testCases := []struct {
		name     string
		tree     string
		row      int
		expected int
	}{
		{"tree override wins", "frost", 2, 1},
		{"falls back to shared table", "frost", 3, 10},
		{"shared table", "fire", 4, 15},
		{"unlisted row is open", "fire", 9, 0},
		{"row zero is open", "fire", 0, 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			required, err := s.engine.RowRequirement(tc.tree, tc.row)
			s.Require().NoError(err)
			s.Equal(tc.expected, required)
		})
	}
}

func (s *EngineTestSuite) TestTreeOverrideUnlocksEarlier() {
	s.allocateN("frost", "chill", 1)
	s.allocateN("frost", "shatter", 1)
	s.assertInvariants()
}

func (s *EngineTestSuite) TestNotFoundNeverMutates() {
	s.allocateN("fire", "ignite", 2)

	testCases := []struct {
		name string
		call func() error
	}{
		{"allocate unknown tree", func() error { _, err := s.engine.Allocate("void", "ignite"); return err }},
		{"allocate unknown talent", func() error { _, err := s.engine.Allocate("fire", "nope"); return err }},
		{"reclaim unknown tree", func() error { _, err := s.engine.Reclaim("void", "ignite"); return err }},
		{"reclaim unknown talent", func() error { _, err := s.engine.Reclaim("fire", "nope"); return err }},
		{"edit unknown tree", func() error {
			_, err := s.engine.SetTalentProperty("void", "ignite", entities.TalentFieldName, "x")
			return err
		}},
		{"edit unknown talent", func() error {
			_, err := s.engine.SetTalentProperty("fire", "nope", entities.TalentFieldName, "x")
			return err
		}},
		{"remove unknown talent", func() error { _, err := s.engine.RemoveTalent("fire", "nope"); return err }},
		{"add to unknown tree", func() error {
			_, err := s.engine.AddTalent("void", entities.Talent{ID: "x", MaxPoints: 1})
			return err
		}},
		{"row states of unknown tree", func() error { _, err := s.engine.RowStates("void"); return err }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.True(errors.IsNotFound(err))

			fire, getErr := s.engine.GetTree("fire")
			s.Require().NoError(getErr)
			s.Equal(2, fire.PointsSpent)
			s.Equal(2, s.engine.PlayerLevel())
		})
	}
}

func (s *EngineTestSuite) TestInvalidLoadKeepsPreviousTrees() {
	s.allocateN("fire", "ignite", 2)

	testCases := []struct {
		name string
		defs map[string]entities.TreeDefinition
	}{
		{"no trees", map[string]entities.TreeDefinition{}},
		{"duplicate talent id", map[string]entities.TreeDefinition{
			"water": {Talents: []entities.TalentDefinition{
				{ID: "wave", MaxPoints: 3, Row: 1},
				{ID: "wave", MaxPoints: 2, Row: 2},
			}},
		}},
		{"points above max", map[string]entities.TreeDefinition{
			"water": {Talents: []entities.TalentDefinition{{ID: "wave", MaxPoints: 3, Points: 4, Row: 1}}},
		}},
		{"negative points", map[string]entities.TreeDefinition{
			"water": {Talents: []entities.TalentDefinition{{ID: "wave", MaxPoints: 3, Points: -1, Row: 1}}},
		}},
		{"zero max points", map[string]entities.TreeDefinition{
			"water": {Talents: []entities.TalentDefinition{{ID: "wave", MaxPoints: 0, Row: 1}}},
		}},
		{"one bad tree among good ones", map[string]entities.TreeDefinition{
			"water": {Talents: []entities.TalentDefinition{{ID: "wave", MaxPoints: 3, Row: 1}}},
			"earth": {Talents: []entities.TalentDefinition{
				{ID: "rock", MaxPoints: 3, Row: 1},
				{ID: "rock", MaxPoints: 3, Row: 1},
			}},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			warnings, err := s.engine.LoadTrees(tc.defs)
			s.Require().Error(err)
			s.True(errors.IsInvalidConfiguration(err), "got %v", err)
			s.Nil(warnings)

			s.Equal(2, s.engine.TreeCount())
			fire, getErr := s.engine.GetTree("fire")
			s.Require().NoError(getErr)
			s.Equal(2, fire.PointsSpent)
			_, getErr = s.engine.GetTree("water")
			s.True(errors.IsNotFound(getErr))
		})
	}
}

func (s *EngineTestSuite) TestAddAndRemoveTalentKeepSpentPoints() {
	added, err := s.engine.AddTalent("fire", entities.Talent{ID: "ember", Name: "Ember", MaxPoints: 3, Row: 1, Points: 2})
	s.Require().NoError(err)
	s.Equal(2, added.Points)

	tree, err := s.engine.GetTree("fire")
	s.Require().NoError(err)
	s.Equal(2, tree.PointsSpent)

	s.allocateN("fire", "ignite", 3)

	removed, err := s.engine.RemoveTalent("fire", "ember")
	s.Require().NoError(err)
	s.Equal(2, removed.Points)

	tree, err = s.engine.GetTree("fire")
	s.Require().NoError(err)
	s.Equal(3, tree.PointsSpent)
	s.NotContains(tree.Talents, "ember")
	s.assertInvariants()
}

func (s *EngineTestSuite) TestAddTalentValidation() {
	testCases := []struct {
		name   string
		talent entities.Talent
		check  func(error) bool
	}{
		{"missing id", entities.Talent{MaxPoints: 1}, errors.IsInvalidArgument},
		{"zero max", entities.Talent{ID: "a"}, errors.IsInvalidArgument},
		{"points above max", entities.Talent{ID: "a", MaxPoints: 1, Points: 2}, errors.IsInvalidArgument},
		{"negative row", entities.Talent{ID: "a", MaxPoints: 1, Row: -1}, errors.IsInvalidArgument},
		{"duplicate id", entities.Talent{ID: "ignite", MaxPoints: 1}, errors.IsAlreadyExists},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.engine.AddTalent("fire", tc.talent)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error %v", err)
		})
	}
	s.assertInvariants()
}

func (s *EngineTestSuite) TestSetTalentProperty() {
	s.allocateN("fire", "scorch", 2)

	talent, err := s.engine.SetTalentProperty("fire", "scorch", entities.TalentFieldName, "Searing Scorch")
	s.Require().NoError(err)
	s.Equal("Searing Scorch", talent.Name)

	talent, err = s.engine.SetTalentProperty("fire", "scorch", entities.TalentFieldMaxPoints, " 4 ")
	s.Require().NoError(err)
	s.Equal(4, talent.MaxPoints)

	_, err = s.engine.SetTalentProperty("fire", "scorch", entities.TalentFieldMaxPoints, "1")
	s.True(errors.IsInvalidArgument(err), "cannot drop below held points")

	_, err = s.engine.SetTalentProperty("fire", "scorch", entities.TalentFieldRow, "three")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.SetTalentProperty("fire", "scorch", "points", "0")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.SetTalentProperty("fire", "scorch", "colour", "red")
	s.True(errors.IsInvalidArgument(err))

	talent, err = s.engine.SetTalentProperty("fire", "scorch", entities.TalentFieldImageURL, "img/scorch.png")
	s.Require().NoError(err)
	s.Equal("img/scorch.png", talent.ImageURL)
}

func (s *EngineTestSuite) TestRowEditKeepsPointsAndRelabels() {
	s.allocateN("fire", "scorch", 2)

	talent, err := s.engine.SetTalentProperty("fire", "scorch", entities.TalentFieldRow, "4")
	s.Require().NoError(err)
	s.Equal(2, talent.Points, "held points survive a row move")

	rows, err := s.engine.RowStates("fire")
	s.Require().NoError(err)
	s.Contains(rows, entities.RowState{Row: 4, Requirement: 15, Met: false})
	s.assertInvariants()
}

func (s *EngineTestSuite) TestProgressionAcrossTrees() {
	s.allocateN("fire", "ignite", 2)
	s.allocateN("frost", "chill", 1)

	progression := s.engine.Progression()
	s.Equal(3, progression.Level)
	s.Equal(int64(33), progression.Experience)
	s.Equal(int64(46), progression.NextLevelExperience)

	_, err := s.engine.Reclaim("frost", "chill")
	s.Require().NoError(err)
	s.Equal(2, s.engine.PlayerLevel())
	s.Equal(int64(21), s.engine.Progression().Experience)
}

func (s *EngineTestSuite) TestReturnedTreesAreCopies() {
	tree, err := s.engine.GetTree("fire")
	s.Require().NoError(err)
	tree.PointsSpent = 99
	tree.Talents["ignite"].Points = 5

	fresh, err := s.engine.GetTree("fire")
	s.Require().NoError(err)
	s.Equal(0, fresh.PointsSpent)
	s.Equal(0, fresh.Talents["ignite"].Points)
}

func (s *EngineTestSuite) TestInvariantsOverMixedSequence() {
	type step struct {
		op     string
		tree   string
		talent string
	}
	steps := []step{
		{"allocate", "fire", "ignite"}, {"allocate", "fire", "inferno"}, {"reclaim", "fire", "scorch"},
		{"allocate", "fire", "ignite"}, {"allocate", "fire", "ignite"}, {"allocate", "fire", "scorch"},
		{"allocate", "fire", "scorch"}, {"allocate", "fire", "inferno"}, {"allocate", "fire", "inferno"},
		{"allocate", "fire", "inferno"}, {"reclaim", "fire", "ignite"}, {"allocate", "frost", "shatter"},
		{"allocate", "frost", "chill"}, {"allocate", "frost", "shatter"}, {"add", "frost", "glacier"},
		{"allocate", "frost", "glacier"}, {"remove", "fire", "scorch"}, {"reclaim", "fire", "inferno"},
	}

	for _, st := range steps {
		var err error
		switch st.op {
		case "allocate":
			_, err = s.engine.Allocate(st.tree, st.talent)
		case "reclaim":
			_, err = s.engine.Reclaim(st.tree, st.talent)
		case "add":
			_, err = s.engine.AddTalent(st.tree, entities.Talent{ID: st.talent, MaxPoints: 2, Row: 1})
		case "remove":
			_, err = s.engine.RemoveTalent(st.tree, st.talent)
		}
		s.Require().NoError(err, "%s %s/%s", st.op, st.tree, st.talent)
		s.assertInvariants()
	}
}

func TestSingleTalentProgression(t *testing.T) {
	e := engine.New(entities.RowRequirements{1: 0})
	_, err := e.LoadTrees(map[string]entities.TreeDefinition{
		"solo": {Talents: []entities.TalentDefinition{{ID: "only", MaxPoints: 5, Row: 1}}},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := e.Allocate("solo", "only"); err != nil {
			t.Fatalf("allocate: %v", err)
		}
	}

	if got := e.PlayerLevel(); got != 3 {
		t.Fatalf("level = %d, want 3", got)
	}
	if got := e.Progression().Experience; got != 33 {
		t.Fatalf("experience = %d, want 33", got)
	}
}

func TestExperience(t *testing.T) {
	testCases := []struct {
		level    int
		expected int64
	}{
		{-1, 0},
		{0, 0},
		{1, 10},
		{2, 21},
		{3, 33},
		{4, 46},
		{5, 61},
		{10, 159},
		{1000, math.MaxInt64},
	}

	for _, tc := range testCases {
		if got := engine.Experience(tc.level); got != tc.expected {
			t.Errorf("Experience(%d) = %d, want %d", tc.level, got, tc.expected)
		}
	}

	// Strictly increasing until saturation
	for level := 0; level < 300; level++ {
		if engine.Experience(level+1) <= engine.Experience(level) {
			t.Fatalf("Experience not increasing at level %d", level)
		}
	}
}
