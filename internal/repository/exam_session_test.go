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

// ExamSessionRepositoryTestSuite tests the ExamSessionRepository
type ExamSessionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *ExamSessionRepository
	examFactory    *testutils.ExamFactory
	sessionFactory *testutils.ExamSessionFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ExamSessionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewExamSessionRepository(suite.baseTestSuite.DB)
	suite.examFactory = testutils.NewExamFactory()
	suite.sessionFactory = testutils.NewExamSessionFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ExamSessionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ExamSessionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ExamSessionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ExamSessionRepositoryTestSuite) createExam() *models.Exam {
	exam := suite.examFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(exam).Error)
	return exam
}

func (suite *ExamSessionRepositoryTestSuite) TestCreateAndGetByID() {
	exam := suite.createExam()
	session := suite.sessionFactory.WithExam(exam.ID)

	suite.NoError(suite.repo.Create(session))

	retrieved, err := suite.repo.GetByID(session.ID)
	suite.NoError(err)
	suite.Equal(exam.ID, retrieved.ExamID)
	suite.Equal("A-101", retrieved.Room)
}

func (suite *ExamSessionRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

func (suite *ExamSessionRepositoryTestSuite) TestGetWithExam() {
	exam := suite.examFactory.WithRequiredSupervisors(3)
	suite.NoError(suite.baseTestSuite.DB.Create(exam).Error)
	session := suite.sessionFactory.WithExam(exam.ID)
	suite.NoError(suite.repo.Create(session))

	retrieved, err := suite.repo.GetWithExam(session.ID)
	suite.NoError(err)
	suite.Equal(exam.Name, retrieved.Exam.Name)
	// The preloaded exam drives the required-count fallback
	suite.Equal(3, retrieved.ResolveRequiredCount())
}

func (suite *ExamSessionRepositoryTestSuite) TestGetByExamIDOrderedByStart() {
	exam := suite.createExam()
	otherExam := suite.createExam()

	base := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	afternoon := suite.sessionFactory.WithExam(exam.ID)
	afternoon.StartTime = base.Add(5 * time.Hour)
	afternoon.EndTime = base.Add(8 * time.Hour)
	morning := suite.sessionFactory.WithExam(exam.ID)
	morning.StartTime = base
	morning.EndTime = base.Add(3 * time.Hour)
	unrelated := suite.sessionFactory.WithExam(otherExam.ID)

	suite.NoError(suite.repo.Create(afternoon))
	suite.NoError(suite.repo.Create(morning))
	suite.NoError(suite.repo.Create(unrelated))

	sessions, total, err := suite.repo.GetByExamID(exam.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(sessions, 2)
	suite.Equal(morning.ID, sessions[0].ID)
	suite.Equal(afternoon.ID, sessions[1].ID)
}

func (suite *ExamSessionRepositoryTestSuite) TestGetAllPagination() {
	exam := suite.createExam()
	for i := 0; i < 4; i++ {
		suite.NoError(suite.repo.Create(suite.sessionFactory.WithExam(exam.ID)))
	}

	sessions, total, err := suite.repo.GetAll(3, 0)
	suite.NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(sessions, 3)

	sessions, _, err = suite.repo.GetAll(3, 3)
	suite.NoError(err)
	suite.Len(sessions, 1)
}

func (suite *ExamSessionRepositoryTestSuite) TestUpdate() {
	exam := suite.createExam()
	session := suite.sessionFactory.WithExam(exam.ID)
	suite.NoError(suite.repo.Create(session))

	session.Room = "B-204"
	session.RequiredCount = 2
	suite.NoError(suite.repo.Update(session))

	retrieved, err := suite.repo.GetByID(session.ID)
	suite.NoError(err)
	suite.Equal("B-204", retrieved.Room)
	suite.Equal(2, retrieved.RequiredCount)
}

func (suite *ExamSessionRepositoryTestSuite) TestDeleteCascadesAssignments() {
	exam := suite.createExam()
	session := suite.sessionFactory.WithExam(exam.ID)
	suite.NoError(suite.repo.Create(session))

	supervisor := testutils.NewSupervisorFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(supervisor).Error)
	assignment := testutils.NewAssignmentFactory().For(session.ID, supervisor.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(assignment).Error)

	suite.NoError(suite.repo.Delete(session.ID))

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Assignment{}).
		Where("session_id = ?", session.ID).Count(&count).Error)
	suite.Zero(count)
}

// Run the test suite
func TestExamSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ExamSessionRepositoryTestSuite))
}
