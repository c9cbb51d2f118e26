package service_test

import (
	"testing"
	"time"

	"exam-scheduler-backend/internal/database/models"
	apperrors "exam-scheduler-backend/internal/errors"
	"exam-scheduler-backend/internal/mocks"
	"exam-scheduler-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SuggestionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSessionRepo *mocks.MockExamSessionRepositoryInterface
	mockSelector    *mocks.MockCandidateSelectorInterface
	session         *models.ExamSession
}

func (suite *SuggestionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSessionRepo = mocks.NewMockExamSessionRepositoryInterface(suite.ctrl)
	suite.mockSelector = mocks.NewMockCandidateSelectorInterface(suite.ctrl)

	start := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	suite.session = &models.ExamSession{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ExamID:    uuid.New(),
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Exam: models.Exam{
			Name:                "History Final",
			RequiredSupervisors: 1,
		},
	}
}

func (suite *SuggestionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SuggestionServiceTestSuite) newService(scoreFn service.ScoreFunc, alternatesFactor int) *service.SuggestionService {
	return service.NewSuggestionService(suite.mockSessionRepo, suite.mockSelector, scoreFn, alternatesFactor)
}

func rankedSupervisor(name string, load, preferred int) models.Supervisor {
	supervisor := models.Supervisor{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		FullName:    name,
		Email:       name + "@test.com",
		Status:      models.SupervisorStatusAvailable,
		CurrentLoad: load,
		MaxLoad:     10,
	}
	for i := 0; i < preferred; i++ {
		supervisor.AvailabilityWindows = append(supervisor.AvailabilityWindows, models.AvailabilityWindow{IsPreferred: true})
	}
	return supervisor
}

func (suite *SuggestionServiceTestSuite) TestSuggest_RankedByScoreDescending() {
	svc := suite.newService(nil, 3)

	// Scores: loaded = 100-4*5 = 80, idle = 100, favored = 100-2*5+10 = 100
	loaded := rankedSupervisor("loaded", 4, 0)
	idle := rankedSupervisor("idle", 0, 0)
	favored := rankedSupervisor("favored", 2, 1)

	suite.mockSessionRepo.EXPECT().GetWithExam(suite.session.ID).Return(suite.session, nil)
	suite.mockSelector.EXPECT().
		SelectCandidates(suite.session.StartTime, suite.session.EndTime).
		Return([]models.Supervisor{loaded, idle, favored}, nil)

	result, err := svc.Suggest(suite.session.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.RequiredCount)
	assert.Equal(suite.T(), 3, result.AvailableCount)
	assert.Len(suite.T(), result.Suggestions, 3)
	// Idle and favored tie at 100; the selector order breaks the tie
	assert.Equal(suite.T(), "idle", result.Suggestions[0].Supervisor.FullName)
	assert.Equal(suite.T(), 100, result.Suggestions[0].Score)
	assert.Equal(suite.T(), "favored", result.Suggestions[1].Supervisor.FullName)
	assert.Equal(suite.T(), 100, result.Suggestions[1].Score)
	assert.Equal(suite.T(), "loaded", result.Suggestions[2].Supervisor.FullName)
	assert.Equal(suite.T(), 80, result.Suggestions[2].Score)
}

func (suite *SuggestionServiceTestSuite) TestSuggest_CappedByAlternatesFactor() {
	svc := suite.newService(nil, 2)

	candidates := []models.Supervisor{
		rankedSupervisor("a", 0, 0),
		rankedSupervisor("b", 1, 0),
		rankedSupervisor("c", 2, 0),
		rankedSupervisor("d", 3, 0),
	}

	suite.mockSessionRepo.EXPECT().GetWithExam(suite.session.ID).Return(suite.session, nil)
	suite.mockSelector.EXPECT().
		SelectCandidates(suite.session.StartTime, suite.session.EndTime).
		Return(candidates, nil)

	result, err := svc.Suggest(suite.session.ID)

	assert.NoError(suite.T(), err)
	// 2 alternates per required slot, 1 slot required
	assert.Len(suite.T(), result.Suggestions, 2)
	// AvailableCount still reports the full pool
	assert.Equal(suite.T(), 4, result.AvailableCount)
}

func (suite *SuggestionServiceTestSuite) TestSuggest_SessionRequiredCountOverride() {
	svc := suite.newService(nil, 2)
	suite.session.RequiredCount = 3

	suite.mockSessionRepo.EXPECT().GetWithExam(suite.session.ID).Return(suite.session, nil)
	suite.mockSelector.EXPECT().
		SelectCandidates(suite.session.StartTime, suite.session.EndTime).
		Return([]models.Supervisor{rankedSupervisor("a", 0, 0)}, nil)

	result, err := svc.Suggest(suite.session.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, result.RequiredCount)
	assert.Len(suite.T(), result.Suggestions, 1)
}

func (suite *SuggestionServiceTestSuite) TestSuggest_CustomScoreFunc() {
	// Rank by how much spare capacity a supervisor has left
	svc := suite.newService(func(supervisor *models.Supervisor) int {
		return supervisor.MaxLoad - supervisor.CurrentLoad
	}, 5)

	low := rankedSupervisor("low", 8, 3)
	high := rankedSupervisor("high", 1, 0)

	suite.mockSessionRepo.EXPECT().GetWithExam(suite.session.ID).Return(suite.session, nil)
	suite.mockSelector.EXPECT().
		SelectCandidates(suite.session.StartTime, suite.session.EndTime).
		Return([]models.Supervisor{low, high}, nil)

	result, err := svc.Suggest(suite.session.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "high", result.Suggestions[0].Supervisor.FullName)
	assert.Equal(suite.T(), 9, result.Suggestions[0].Score)
	assert.Equal(suite.T(), "low", result.Suggestions[1].Supervisor.FullName)
	assert.Equal(suite.T(), 2, result.Suggestions[1].Score)
}

func (suite *SuggestionServiceTestSuite) TestSuggest_EmptyPool() {
	svc := suite.newService(nil, 2)

	suite.mockSessionRepo.EXPECT().GetWithExam(suite.session.ID).Return(suite.session, nil)
	suite.mockSelector.EXPECT().
		SelectCandidates(suite.session.StartTime, suite.session.EndTime).
		Return([]models.Supervisor{}, nil)

	result, err := svc.Suggest(suite.session.ID)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result.Suggestions)
	assert.Zero(suite.T(), result.AvailableCount)
}

func (suite *SuggestionServiceTestSuite) TestSuggest_SessionNotFound() {
	svc := suite.newService(nil, 2)
	sessionID := uuid.New()

	suite.mockSessionRepo.EXPECT().GetWithExam(sessionID).Return(nil, gorm.ErrRecordNotFound)

	result, err := svc.Suggest(sessionID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExamSessionNotFound)
}

func TestDefaultScore(t *testing.T) {
	idle := rankedSupervisor("idle", 0, 0)
	assert.Equal(t, 100, service.DefaultScore(&idle))

	loaded := rankedSupervisor("loaded", 3, 2)
	assert.Equal(t, 105, service.DefaultScore(&loaded))

	// Load of 25 would push the base below zero; it clamps instead
	overloaded := rankedSupervisor("overloaded", 25, 1)
	assert.Equal(t, 10, service.DefaultScore(&overloaded))
}

func TestSuggestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SuggestionServiceTestSuite))
}
