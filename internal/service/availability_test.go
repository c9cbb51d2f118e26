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

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "identical intervals",
			aStart: base, aEnd: base.Add(2 * time.Hour),
			bStart: base, bEnd: base.Add(2 * time.Hour),
			expected: true,
		},
		{
			name:   "partial overlap",
			aStart: base, aEnd: base.Add(2 * time.Hour),
			bStart: base.Add(time.Hour), bEnd: base.Add(3 * time.Hour),
			expected: true,
		},
		{
			name:   "containment",
			aStart: base, aEnd: base.Add(4 * time.Hour),
			bStart: base.Add(time.Hour), bEnd: base.Add(2 * time.Hour),
			expected: true,
		},
		{
			name:   "disjoint",
			aStart: base, aEnd: base.Add(time.Hour),
			bStart: base.Add(2 * time.Hour), bEnd: base.Add(3 * time.Hour),
			expected: false,
		},
		{
			name:   "touching endpoints do not overlap",
			aStart: base, aEnd: base.Add(time.Hour),
			bStart: base.Add(time.Hour), bEnd: base.Add(2 * time.Hour),
			expected: false,
		},
		{
			name:   "zero-length interval never overlaps",
			aStart: base.Add(time.Hour), aEnd: base.Add(time.Hour),
			bStart: base, bEnd: base.Add(3 * time.Hour),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := service.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			assert.Equal(t, tc.expected, got)

			// Overlap is symmetric
			mirror := service.Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd)
			assert.Equal(t, got, mirror)
		})
	}
}

type AvailabilityServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	availability       *service.AvailabilityService
}

func (suite *AvailabilityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.availability = service.NewAvailabilityService(suite.mockAssignmentRepo)
}

func (suite *AvailabilityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_NoCommitments() {
	supervisorID := uuid.New()
	start := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	suite.mockAssignmentRepo.EXPECT().
		GetBySupervisorAndStatuses(supervisorID, models.ActiveAssignmentStatuses).
		Return([]models.Assignment{}, nil)

	assert.True(suite.T(), suite.availability.IsAvailable(supervisorID, start, start.Add(2*time.Hour)))
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_OverlappingAssignment() {
	supervisorID := uuid.New()
	start := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	assignments := []models.Assignment{
		{
			SupervisorID: supervisorID,
			Status:       models.AssignmentStatusAssigned,
			Session: models.ExamSession{
				StartTime: start.Add(time.Hour),
				EndTime:   start.Add(3 * time.Hour),
			},
		},
	}
	suite.mockAssignmentRepo.EXPECT().
		GetBySupervisorAndStatuses(supervisorID, models.ActiveAssignmentStatuses).
		Return(assignments, nil)

	assert.False(suite.T(), suite.availability.IsAvailable(supervisorID, start, start.Add(2*time.Hour)))
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_ConfirmedConflictCounts() {
	supervisorID := uuid.New()
	start := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	assignments := []models.Assignment{
		{
			SupervisorID: supervisorID,
			Status:       models.AssignmentStatusConfirmed,
			Session: models.ExamSession{
				StartTime: start,
				EndTime:   start.Add(time.Hour),
			},
		},
	}
	suite.mockAssignmentRepo.EXPECT().
		GetBySupervisorAndStatuses(supervisorID, models.ActiveAssignmentStatuses).
		Return(assignments, nil)

	assert.False(suite.T(), suite.availability.IsAvailable(supervisorID, start, start.Add(2*time.Hour)))
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_AdjacentSessionsDoNotConflict() {
	supervisorID := uuid.New()
	start := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	// Earlier session ends exactly when the requested window starts
	assignments := []models.Assignment{
		{
			SupervisorID: supervisorID,
			Status:       models.AssignmentStatusAssigned,
			Session: models.ExamSession{
				StartTime: start.Add(-2 * time.Hour),
				EndTime:   start,
			},
		},
	}
	suite.mockAssignmentRepo.EXPECT().
		GetBySupervisorAndStatuses(supervisorID, models.ActiveAssignmentStatuses).
		Return(assignments, nil)

	assert.True(suite.T(), suite.availability.IsAvailable(supervisorID, start, start.Add(2*time.Hour)))
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_LookupFailureFailsClosed() {
	supervisorID := uuid.New()
	start := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	suite.mockAssignmentRepo.EXPECT().
		GetBySupervisorAndStatuses(supervisorID, models.ActiveAssignmentStatuses).
		Return(nil, errors.New("db down"))

	assert.False(suite.T(), suite.availability.IsAvailable(supervisorID, start, start.Add(time.Hour)))
}

func TestAvailabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}
