package repository

import (
	"testing"

	"exam-scheduler-backend/internal/database/models"
	"exam-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AvailabilityWindowRepositoryTestSuite tests the AvailabilityWindowRepository
type AvailabilityWindowRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite     *testutils.BaseTestSuite
	repo              *AvailabilityWindowRepository
	supervisorFactory *testutils.SupervisorFactory
	windowFactory     *testutils.AvailabilityWindowFactory
}

// SetupSuite runs before all tests in the suite
func (suite *AvailabilityWindowRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAvailabilityWindowRepository(suite.baseTestSuite.DB)
	suite.supervisorFactory = testutils.NewSupervisorFactory()
	suite.windowFactory = testutils.NewAvailabilityWindowFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *AvailabilityWindowRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AvailabilityWindowRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AvailabilityWindowRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AvailabilityWindowRepositoryTestSuite) createSupervisor() *models.Supervisor {
	supervisor := suite.supervisorFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(supervisor).Error)
	return supervisor
}

func (suite *AvailabilityWindowRepositoryTestSuite) TestCreateAndGetBySupervisorID() {
	supervisor := suite.createSupervisor()

	window := suite.windowFactory.WithDay(2)
	window.SupervisorID = supervisor.ID
	suite.NoError(suite.repo.Create(window))

	windows, err := suite.repo.GetBySupervisorID(supervisor.ID)
	suite.NoError(err)
	suite.Len(windows, 1)
	suite.Equal(2, windows[0].DayOfWeek)
	suite.Equal("08:00", windows[0].StartTime)
}

func (suite *AvailabilityWindowRepositoryTestSuite) TestReplaceForSupervisor() {
	supervisor := suite.createSupervisor()

	old := suite.windowFactory.WithDay(1)
	old.SupervisorID = supervisor.ID
	suite.NoError(suite.repo.Create(old))

	replacement := []models.AvailabilityWindow{
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "13:00"},
		{DayOfWeek: 5, StartTime: "14:00", EndTime: "18:00", IsPreferred: true},
	}
	suite.NoError(suite.repo.ReplaceForSupervisor(supervisor.ID, replacement))

	windows, err := suite.repo.GetBySupervisorID(supervisor.ID)
	suite.NoError(err)
	suite.Len(windows, 2)
	for _, w := range windows {
		suite.Equal(supervisor.ID, w.SupervisorID)
		suite.NotEqual(old.ID, w.ID)
	}
}

func (suite *AvailabilityWindowRepositoryTestSuite) TestReplaceForSupervisorWithEmptySet() {
	supervisor := suite.createSupervisor()

	window := suite.windowFactory.Create()
	window.SupervisorID = supervisor.ID
	suite.NoError(suite.repo.Create(window))

	suite.NoError(suite.repo.ReplaceForSupervisor(supervisor.ID, nil))

	windows, err := suite.repo.GetBySupervisorID(supervisor.ID)
	suite.NoError(err)
	suite.Empty(windows)
}

func (suite *AvailabilityWindowRepositoryTestSuite) TestDelete() {
	supervisor := suite.createSupervisor()

	window := suite.windowFactory.Create()
	window.SupervisorID = supervisor.ID
	suite.NoError(suite.repo.Create(window))

	suite.NoError(suite.repo.Delete(window.ID))

	windows, err := suite.repo.GetBySupervisorID(supervisor.ID)
	suite.NoError(err)
	suite.Empty(windows)
}

// Run the test suite
func TestAvailabilityWindowRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityWindowRepositoryTestSuite))
}
