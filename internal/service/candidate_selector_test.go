package service_test

import (
	"errors"
	"testing"
	"time"

	"exam-scheduler-backend/internal/database/models"
	"exam-scheduler-backend/internal/mocks"
	"exam-scheduler-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CandidateSelectorTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockSupervisorRepo *mocks.MockSupervisorRepositoryInterface
	mockChecker        *mocks.MockAvailabilityCheckerInterface
	selector           *service.CandidateSelector
	start              time.Time
	end                time.Time
}

func (suite *CandidateSelectorTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSupervisorRepo = mocks.NewMockSupervisorRepositoryInterface(suite.ctrl)
	suite.mockChecker = mocks.NewMockAvailabilityCheckerInterface(suite.ctrl)
	suite.selector = service.NewCandidateSelector(suite.mockSupervisorRepo, suite.mockChecker)
	suite.start = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	suite.end = suite.start.Add(3 * time.Hour)
}

func (suite *CandidateSelectorTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func supervisorWithLoad(name string, load int) models.Supervisor {
	return models.Supervisor{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		FullName:    name,
		Status:      models.SupervisorStatusAvailable,
		CurrentLoad: load,
		MaxLoad:     10,
	}
}

func (suite *CandidateSelectorTestSuite) TestSelectCandidates_OrderedByLoadAscending() {
	busy := supervisorWithLoad("Busy", 5)
	idle := supervisorWithLoad("Idle", 0)
	medium := supervisorWithLoad("Medium", 2)

	suite.mockSupervisorRepo.EXPECT().
		GetByStatus(models.SupervisorStatusAvailable).
		Return([]models.Supervisor{busy, idle, medium}, nil)
	suite.mockChecker.EXPECT().IsAvailable(busy.ID, suite.start, suite.end).Return(true)
	suite.mockChecker.EXPECT().IsAvailable(idle.ID, suite.start, suite.end).Return(true)
	suite.mockChecker.EXPECT().IsAvailable(medium.ID, suite.start, suite.end).Return(true)

	candidates, err := suite.selector.SelectCandidates(suite.start, suite.end)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), candidates, 3)
	assert.Equal(suite.T(), "Idle", candidates[0].FullName)
	assert.Equal(suite.T(), "Medium", candidates[1].FullName)
	assert.Equal(suite.T(), "Busy", candidates[2].FullName)
}

func (suite *CandidateSelectorTestSuite) TestSelectCandidates_PreferredWindowsBreakTies() {
	plain := supervisorWithLoad("Plain", 3)
	preferred := supervisorWithLoad("Preferred", 3)
	preferred.AvailabilityWindows = []models.AvailabilityWindow{
		{IsPreferred: true},
		{IsPreferred: false},
		{IsPreferred: true},
	}

	suite.mockSupervisorRepo.EXPECT().
		GetByStatus(models.SupervisorStatusAvailable).
		Return([]models.Supervisor{plain, preferred}, nil)
	suite.mockChecker.EXPECT().IsAvailable(plain.ID, suite.start, suite.end).Return(true)
	suite.mockChecker.EXPECT().IsAvailable(preferred.ID, suite.start, suite.end).Return(true)

	candidates, err := suite.selector.SelectCandidates(suite.start, suite.end)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), candidates, 2)
	assert.Equal(suite.T(), "Preferred", candidates[0].FullName)
	assert.Equal(suite.T(), "Plain", candidates[1].FullName)
}

func (suite *CandidateSelectorTestSuite) TestSelectCandidates_FullTieKeepsRosterOrder() {
	first := supervisorWithLoad("First", 1)
	second := supervisorWithLoad("Second", 1)

	suite.mockSupervisorRepo.EXPECT().
		GetByStatus(models.SupervisorStatusAvailable).
		Return([]models.Supervisor{first, second}, nil)
	suite.mockChecker.EXPECT().IsAvailable(first.ID, suite.start, suite.end).Return(true)
	suite.mockChecker.EXPECT().IsAvailable(second.ID, suite.start, suite.end).Return(true)

	candidates, err := suite.selector.SelectCandidates(suite.start, suite.end)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "First", candidates[0].FullName)
	assert.Equal(suite.T(), "Second", candidates[1].FullName)
}

func (suite *CandidateSelectorTestSuite) TestSelectCandidates_FiltersConflicted() {
	free := supervisorWithLoad("Free", 0)
	conflicted := supervisorWithLoad("Conflicted", 0)

	suite.mockSupervisorRepo.EXPECT().
		GetByStatus(models.SupervisorStatusAvailable).
		Return([]models.Supervisor{free, conflicted}, nil)
	suite.mockChecker.EXPECT().IsAvailable(free.ID, suite.start, suite.end).Return(true)
	suite.mockChecker.EXPECT().IsAvailable(conflicted.ID, suite.start, suite.end).Return(false)

	candidates, err := suite.selector.SelectCandidates(suite.start, suite.end)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), candidates, 1)
	assert.Equal(suite.T(), free.ID, candidates[0].ID)
}

func (suite *CandidateSelectorTestSuite) TestSelectCandidates_OnlyAvailableStatusQueried() {
	// Inactive and on-leave supervisors never reach the checker because the
	// roster query already excludes them.
	suite.mockSupervisorRepo.EXPECT().
		GetByStatus(models.SupervisorStatusAvailable).
		Return([]models.Supervisor{}, nil)

	candidates, err := suite.selector.SelectCandidates(suite.start, suite.end)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), candidates)
}

func (suite *CandidateSelectorTestSuite) TestSelectCandidates_RosterLookupError() {
	suite.mockSupervisorRepo.EXPECT().
		GetByStatus(models.SupervisorStatusAvailable).
		Return(nil, errors.New("connection refused"))

	candidates, err := suite.selector.SelectCandidates(suite.start, suite.end)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), candidates)
	assert.Contains(suite.T(), err.Error(), "failed to load supervisor roster")
}

func TestCandidateSelectorTestSuite(t *testing.T) {
	suite.Run(t, new(CandidateSelectorTestSuite))
}
