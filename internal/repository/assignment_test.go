package repository

import (
	"testing"
	"time"

	"exam-scheduler-backend/internal/database/models"
	"exam-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AssignmentRepositoryTestSuite tests the AssignmentRepository
type AssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite     *testutils.BaseTestSuite
	repo              *AssignmentRepository
	supervisorFactory *testutils.SupervisorFactory
	examFactory       *testutils.ExamFactory
	sessionFactory    *testutils.ExamSessionFactory
	assignmentFactory *testutils.AssignmentFactory
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.supervisorFactory = testutils.NewSupervisorFactory()
	suite.examFactory = testutils.NewExamFactory()
	suite.sessionFactory = testutils.NewExamSessionFactory()
	suite.assignmentFactory = testutils.NewAssignmentFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createSessionWithSupervisor inserts the exam, session and supervisor rows an
// assignment needs
func (suite *AssignmentRepositoryTestSuite) createSessionWithSupervisor() (*models.ExamSession, *models.Supervisor) {
	exam := suite.examFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(exam).Error)

	session := suite.sessionFactory.WithExam(exam.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(session).Error)

	supervisor := suite.supervisorFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(supervisor).Error)

	return session, supervisor
}

func (suite *AssignmentRepositoryTestSuite) TestCreateAndGetByID() {
	session, supervisor := suite.createSessionWithSupervisor()
	assignment := suite.assignmentFactory.For(session.ID, supervisor.ID)

	suite.NoError(suite.repo.Create(assignment))

	retrieved, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal(session.ID, retrieved.SessionID)
	suite.Equal(supervisor.ID, retrieved.SupervisorID)
	suite.Equal(models.AssignmentStatusAssigned, retrieved.Status)
}

func (suite *AssignmentRepositoryTestSuite) TestUniqueSessionSupervisorPair() {
	session, supervisor := suite.createSessionWithSupervisor()

	suite.NoError(suite.repo.Create(suite.assignmentFactory.For(session.ID, supervisor.ID)))

	// A second assignment for the same pair must hit the unique index
	suite.Error(suite.repo.Create(suite.assignmentFactory.For(session.ID, supervisor.ID)))
}

func (suite *AssignmentRepositoryTestSuite) TestCreateWithLoadIncrement() {
	session, supervisor := suite.createSessionWithSupervisor()
	assignment := suite.assignmentFactory.For(session.ID, supervisor.ID)

	suite.NoError(suite.repo.CreateWithLoadIncrement(assignment, supervisor.LoadVersion))

	var updated models.Supervisor
	suite.NoError(suite.baseTestSuite.DB.First(&updated, "id = ?", supervisor.ID).Error)
	suite.Equal(1, updated.CurrentLoad)
	suite.Equal(supervisor.LoadVersion+1, updated.LoadVersion)

	retrieved, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.NotNil(retrieved)
}

func (suite *AssignmentRepositoryTestSuite) TestCreateWithLoadIncrementVersionConflictRollsBack() {
	session, supervisor := suite.createSessionWithSupervisor()
	assignment := suite.assignmentFactory.For(session.ID, supervisor.ID)

	err := suite.repo.CreateWithLoadIncrement(assignment, supervisor.LoadVersion+3)
	suite.Equal(gorm.ErrRecordNotFound, err)

	// The whole transaction rolls back: no assignment, no load change
	_, err = suite.repo.GetByID(assignment.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var unchanged models.Supervisor
	suite.NoError(suite.baseTestSuite.DB.First(&unchanged, "id = ?", supervisor.ID).Error)
	suite.Zero(unchanged.CurrentLoad)
	suite.Equal(supervisor.LoadVersion, unchanged.LoadVersion)
}

func (suite *AssignmentRepositoryTestSuite) TestGetBySessionIDOrderedByAssignedAt() {
	session, supervisor := suite.createSessionWithSupervisor()
	other := suite.supervisorFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)

	later := suite.assignmentFactory.For(session.ID, other.ID)
	later.AssignedAt = time.Date(2026, 6, 14, 12, 0, 0, 0, time.UTC)
	earlier := suite.assignmentFactory.For(session.ID, supervisor.ID)
	earlier.AssignedAt = time.Date(2026, 6, 14, 10, 0, 0, 0, time.UTC)

	suite.NoError(suite.repo.Create(later))
	suite.NoError(suite.repo.Create(earlier))

	assignments, err := suite.repo.GetBySessionID(session.ID)
	suite.NoError(err)
	suite.Len(assignments, 2)
	suite.Equal(earlier.ID, assignments[0].ID)
	suite.Equal(later.ID, assignments[1].ID)
}

func (suite *AssignmentRepositoryTestSuite) TestGetBySupervisorAndStatusesPreloadsSession() {
	session, supervisor := suite.createSessionWithSupervisor()

	active := suite.assignmentFactory.For(session.ID, supervisor.ID)
	suite.NoError(suite.repo.Create(active))

	exam2 := suite.examFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(exam2).Error)
	session2 := suite.sessionFactory.WithExam(exam2.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(session2).Error)

	declined := suite.assignmentFactory.For(session2.ID, supervisor.ID)
	declined.Status = models.AssignmentStatusDeclined
	suite.NoError(suite.repo.Create(declined))

	assignments, err := suite.repo.GetBySupervisorAndStatuses(supervisor.ID, models.ActiveAssignmentStatuses)
	suite.NoError(err)
	suite.Len(assignments, 1)
	suite.Equal(active.ID, assignments[0].ID)
	// Session window comes preloaded for conflict detection
	suite.Equal(session.StartTime.UTC(), assignments[0].Session.StartTime.UTC())
	suite.Equal(session.EndTime.UTC(), assignments[0].Session.EndTime.UTC())
}

func (suite *AssignmentRepositoryTestSuite) TestCountBySessionAndStatuses() {
	session, supervisor := suite.createSessionWithSupervisor()
	other := suite.supervisorFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)

	suite.NoError(suite.repo.Create(suite.assignmentFactory.For(session.ID, supervisor.ID)))
	replaced := suite.assignmentFactory.For(session.ID, other.ID)
	replaced.Status = models.AssignmentStatusReplaced
	suite.NoError(suite.repo.Create(replaced))

	count, err := suite.repo.CountBySessionAndStatuses(session.ID, models.ActiveAssignmentStatuses)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *AssignmentRepositoryTestSuite) TestExists() {
	session, supervisor := suite.createSessionWithSupervisor()
	suite.NoError(suite.repo.Create(suite.assignmentFactory.For(session.ID, supervisor.ID)))

	exists, err := suite.repo.Exists(session.ID, supervisor.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(session.ID, uuid.New())
	suite.NoError(err)
	suite.False(exists)
}

func (suite *AssignmentRepositoryTestSuite) TestUpdateStatus() {
	session, supervisor := suite.createSessionWithSupervisor()
	assignment := suite.assignmentFactory.For(session.ID, supervisor.ID)
	suite.NoError(suite.repo.Create(assignment))

	now := time.Now().UTC().Truncate(time.Second)
	assignment.Status = models.AssignmentStatusConfirmed
	assignment.ConfirmedAt = &now

	suite.NoError(suite.repo.UpdateStatus(assignment))

	retrieved, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal(models.AssignmentStatusConfirmed, retrieved.Status)
	suite.NotNil(retrieved.ConfirmedAt)
	suite.Equal(now, retrieved.ConfirmedAt.UTC().Truncate(time.Second))
}

func (suite *AssignmentRepositoryTestSuite) TestDelete() {
	session, supervisor := suite.createSessionWithSupervisor()
	assignment := suite.assignmentFactory.For(session.ID, supervisor.ID)
	suite.NoError(suite.repo.Create(assignment))

	suite.NoError(suite.repo.Delete(assignment.ID))

	_, err := suite.repo.GetByID(assignment.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
