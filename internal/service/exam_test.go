package service_test

import (
	"testing"

	"exam-scheduler-backend/internal/database/models"
	apperrors "exam-scheduler-backend/internal/errors"
	"exam-scheduler-backend/internal/mocks"
	"exam-scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ExamServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockExamRepositoryInterface
	service  *service.ExamService
}

func (suite *ExamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockExamRepositoryInterface(suite.ctrl)
	suite.service = service.NewExamService(suite.mockRepo, validator.New())
}

func (suite *ExamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ExamServiceTestSuite) TestCreateExam_Success() {
	required := 3
	req := &service.CreateExamRequest{
		Name:                "Mathematics Final",
		Subject:             "Mathematics",
		AcademicLevel:       "12th grade",
		RequiredSupervisors: &required,
	}

	suite.mockRepo.EXPECT().GetByName("Mathematics Final").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(exam *models.Exam) error {
			exam.ID = uuid.New()
			return nil
		})

	response, err := suite.service.CreateExam(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Mathematics Final", response.Name)
	assert.Equal(suite.T(), 3, response.RequiredSupervisors)
}

func (suite *ExamServiceTestSuite) TestCreateExam_DefaultRequiredSupervisors() {
	req := &service.CreateExamRequest{Name: "History Midterm"}

	suite.mockRepo.EXPECT().GetByName("History Midterm").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.service.CreateExam(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.RequiredSupervisors)
}

func (suite *ExamServiceTestSuite) TestCreateExam_DuplicateName() {
	req := &service.CreateExamRequest{Name: "Mathematics Final"}

	suite.mockRepo.EXPECT().
		GetByName("Mathematics Final").
		Return(&models.Exam{Name: "Mathematics Final"}, nil)

	response, err := suite.service.CreateExam(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExamExists)
}

func (suite *ExamServiceTestSuite) TestCreateExam_MissingName() {
	response, err := suite.service.CreateExam(&service.CreateExamRequest{})

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *ExamServiceTestSuite) TestCreateExam_RequiredSupervisorsBelowOne() {
	required := 0
	req := &service.CreateExamRequest{
		Name:                "Physics Final",
		RequiredSupervisors: &required,
	}

	suite.mockRepo.EXPECT().GetByName("Physics Final").Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.service.CreateExam(req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ExamServiceTestSuite) TestGetExamByID_Success() {
	exam := &models.Exam{
		BaseModel:           models.BaseModel{ID: uuid.New()},
		Name:                "Mathematics Final",
		RequiredSupervisors: 2,
	}

	suite.mockRepo.EXPECT().GetByID(exam.ID).Return(exam, nil)

	response, err := suite.service.GetExamByID(exam.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), exam.ID, response.ID)
	assert.Equal(suite.T(), 2, response.RequiredSupervisors)
}

func (suite *ExamServiceTestSuite) TestGetExamByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.service.GetExamByID(id)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExamNotFound)
}

func (suite *ExamServiceTestSuite) TestListExams_Success() {
	exams := []models.Exam{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Math"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "History"},
	}

	suite.mockRepo.EXPECT().GetAll(20, 10).Return(exams, int64(12), nil)

	response, err := suite.service.ListExams(20, 10)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Exams, 2)
	assert.Equal(suite.T(), int64(12), response.Total)
	assert.Equal(suite.T(), 10, response.Offset)
}

func (suite *ExamServiceTestSuite) TestListExams_InvalidPagination() {
	response, err := suite.service.ListExams(-1, 0)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPaginationParams)
}

func (suite *ExamServiceTestSuite) TestUpdateExam_Success() {
	exam := &models.Exam{
		BaseModel:           models.BaseModel{ID: uuid.New()},
		Name:                "Mathematics Final",
		RequiredSupervisors: 1,
	}
	required := 4

	suite.mockRepo.EXPECT().GetByID(exam.ID).Return(exam, nil)
	suite.mockRepo.EXPECT().Update(exam).Return(nil)

	response, err := suite.service.UpdateExam(exam.ID, &service.UpdateExamRequest{
		RequiredSupervisors: &required,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, response.RequiredSupervisors)
	assert.Equal(suite.T(), "Mathematics Final", response.Name)
}

func (suite *ExamServiceTestSuite) TestUpdateExam_NotFound() {
	id := uuid.New()
	name := "Renamed"

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.service.UpdateExam(id, &service.UpdateExamRequest{Name: &name})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExamNotFound)
}

func (suite *ExamServiceTestSuite) TestDeleteExam_Success() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Exam{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	assert.NoError(suite.T(), suite.service.DeleteExam(id))
}

func (suite *ExamServiceTestSuite) TestDeleteExam_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	assert.ErrorIs(suite.T(), suite.service.DeleteExam(id), apperrors.ErrExamNotFound)
}

func TestExamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExamServiceTestSuite))
}
