package repository

import (
	"testing"

	"exam-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ExamRepositoryTestSuite tests the ExamRepository
type ExamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *ExamRepository
	examFactory    *testutils.ExamFactory
	sessionFactory *testutils.ExamSessionFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ExamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewExamRepository(suite.baseTestSuite.DB)
	suite.examFactory = testutils.NewExamFactory()
	suite.sessionFactory = testutils.NewExamSessionFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ExamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ExamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ExamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ExamRepositoryTestSuite) TestCreateAndGetByID() {
	exam := suite.examFactory.WithName("Mathematics Final")

	suite.NoError(suite.repo.Create(exam))

	retrieved, err := suite.repo.GetByID(exam.ID)
	suite.NoError(err)
	suite.Equal("Mathematics Final", retrieved.Name)
	suite.Equal(1, retrieved.RequiredSupervisors)
}

func (suite *ExamRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

func (suite *ExamRepositoryTestSuite) TestGetByName() {
	exam := suite.examFactory.WithName("History Midterm")
	suite.NoError(suite.repo.Create(exam))

	retrieved, err := suite.repo.GetByName("History Midterm")
	suite.NoError(err)
	suite.Equal(exam.ID, retrieved.ID)

	_, err = suite.repo.GetByName("Unknown Exam")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *ExamRepositoryTestSuite) TestGetAllOrdersByName() {
	suite.NoError(suite.repo.Create(suite.examFactory.WithName("Chemistry")))
	suite.NoError(suite.repo.Create(suite.examFactory.WithName("Algebra")))
	suite.NoError(suite.repo.Create(suite.examFactory.WithName("Biology")))

	exams, total, err := suite.repo.GetAll(10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Equal("Algebra", exams[0].Name)
	suite.Equal("Biology", exams[1].Name)
	suite.Equal("Chemistry", exams[2].Name)
}

func (suite *ExamRepositoryTestSuite) TestGetWithSessions() {
	exam := suite.examFactory.Create()
	suite.NoError(suite.repo.Create(exam))

	suite.NoError(suite.baseTestSuite.DB.Create(suite.sessionFactory.WithExam(exam.ID)).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.sessionFactory.WithExam(exam.ID)).Error)

	retrieved, err := suite.repo.GetWithSessions(exam.ID)
	suite.NoError(err)
	suite.Len(retrieved.Sessions, 2)
}

func (suite *ExamRepositoryTestSuite) TestUpdate() {
	exam := suite.examFactory.Create()
	suite.NoError(suite.repo.Create(exam))

	exam.RequiredSupervisors = 4
	suite.NoError(suite.repo.Update(exam))

	retrieved, err := suite.repo.GetByID(exam.ID)
	suite.NoError(err)
	suite.Equal(4, retrieved.RequiredSupervisors)
}

func (suite *ExamRepositoryTestSuite) TestDeleteCascadesSessions() {
	exam := suite.examFactory.Create()
	suite.NoError(suite.repo.Create(exam))

	session := suite.sessionFactory.WithExam(exam.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(session).Error)

	suite.NoError(suite.repo.Delete(exam.ID))

	_, err := suite.repo.GetByID(exam.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	sessionRepo := NewExamSessionRepository(suite.baseTestSuite.DB)
	_, err = sessionRepo.GetByID(session.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestExamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ExamRepositoryTestSuite))
}
