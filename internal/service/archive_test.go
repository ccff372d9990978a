package service_test

import (
	"testing"
	"time"

	"roster-backend/internal/database/models"
	"roster-backend/internal/logger"
	"roster-backend/internal/repository"
	"roster-backend/internal/schedule"
	"roster-backend/internal/service"
	"roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// The archive tests use the week of Monday 2026-02-02 through Sunday 2026-02-08
var (
	archiveWeekStart  = time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
	mondayAfterWeek   = time.Date(2026, time.February, 9, 8, 0, 0, 0, time.UTC)
	sundayLateInWeek  = time.Date(2026, time.February, 8, 23, 30, 0, 0, time.UTC)
	sundayEarlyInWeek = time.Date(2026, time.February, 8, 20, 0, 0, 0, time.UTC)
	midWeek           = time.Date(2026, time.February, 4, 12, 0, 0, 0, time.UTC)
)

// ArchiveServiceTestSuite tests the weekly archiving flow against Postgres
type ArchiveServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite

	shiftRepo  *repository.ShiftRepository
	reportRepo *repository.WeeklyReportRepository
	runRepo    *repository.ArchiveRunRepository

	org      *models.Organization
	business *models.Business
	employee *models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *ArchiveServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.shiftRepo = repository.NewShiftRepository(suite.baseTestSuite.DB)
	suite.reportRepo = repository.NewWeeklyReportRepository(suite.baseTestSuite.DB)
	suite.runRepo = repository.NewArchiveRunRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ArchiveServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds the ownership chain
func (suite *ArchiveServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = testutils.NewOrganizationFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)

	suite.business = testutils.NewBusinessFactory().WithOrganization(suite.org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.business).Error)

	suite.employee = testutils.NewEmployeeFactory().WithOrganization(suite.org.ID)
	suite.employee.Name = "Avery Archivist"
	suite.NoError(suite.baseTestSuite.DB.Create(suite.employee).Error)
}

// TearDownTest runs after each test
func (suite *ArchiveServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ArchiveServiceTestSuite) archiveServiceAt(now time.Time) *service.ArchiveService {
	return service.NewArchiveService(
		suite.shiftRepo, suite.reportRepo, suite.runRepo,
		schedule.DefaultPolicy(), schedule.FixedClock(now), logger.New(),
	)
}

func (suite *ArchiveServiceTestSuite) seedShift(day models.DayOfWeek, shiftTime models.ShiftTime) {
	shift := testutils.NewShiftFactory().ForSlot(day, shiftTime)
	shift.OrganizationID = suite.org.ID
	shift.EmployeeID = suite.employee.ID
	shift.BusinessID = suite.business.ID
	suite.NoError(suite.shiftRepo.Create(shift))
}

// TestArchiveIfDueOnMonday tests that a Monday run archives the week that just ended
func (suite *ArchiveServiceTestSuite) TestArchiveIfDueOnMonday() {
	suite.seedShift(models.DayMonday, models.ShiftMorning)
	suite.seedShift(models.DayWednesday, models.ShiftAfternoon)

	result, err := suite.archiveServiceAt(mondayAfterWeek).ArchiveIfDue()

	suite.NoError(err)
	suite.True(result.Ran)
	suite.Equal(archiveWeekStart, result.WeekStart.UTC())
	suite.Equal(1, result.ArchivedCount)

	reports, err := suite.reportRepo.GetByBusinessAndWeek(suite.business.ID, archiveWeekStart)
	suite.NoError(err)
	suite.Len(reports, 1)
	suite.Equal("Avery Archivist", reports[0].EmployeeName)
	suite.Equal(2, reports[0].ShiftCount)
	suite.InDelta(15.0, reports[0].TotalHours, 0.001) // 6 morning + 9 afternoon
}

// TestArchiveIfDueRunsOncePerDay tests the persisted run key
func (suite *ArchiveServiceTestSuite) TestArchiveIfDueRunsOncePerDay() {
	suite.seedShift(models.DayMonday, models.ShiftMorning)
	svc := suite.archiveServiceAt(mondayAfterWeek)

	first, err := svc.ArchiveIfDue()
	suite.NoError(err)
	suite.True(first.Ran)

	second, err := svc.ArchiveIfDue()
	suite.NoError(err)
	suite.False(second.Ran)
}

// TestArchiveIfDueMidWeekIsNoOp tests that nothing triggers outside the windows
func (suite *ArchiveServiceTestSuite) TestArchiveIfDueMidWeekIsNoOp() {
	suite.seedShift(models.DayMonday, models.ShiftMorning)

	result, err := suite.archiveServiceAt(midWeek).ArchiveIfDue()

	suite.NoError(err)
	suite.False(result.Ran)

	result, err = suite.archiveServiceAt(sundayEarlyInWeek).ArchiveIfDue()
	suite.NoError(err)
	suite.False(result.Ran)
}

// TestArchiveIfDueLateSunday tests the early Sunday-night snapshot of the
// closing week
func (suite *ArchiveServiceTestSuite) TestArchiveIfDueLateSunday() {
	suite.seedShift(models.DayFriday, models.ShiftMorning)

	result, err := suite.archiveServiceAt(sundayLateInWeek).ArchiveIfDue()

	suite.NoError(err)
	suite.True(result.Ran)
	suite.Equal(archiveWeekStart, result.WeekStart.UTC())
}

// TestForceArchiveIsRepeatSafe tests that forcing twice archives once
func (suite *ArchiveServiceTestSuite) TestForceArchiveIsRepeatSafe() {
	suite.seedShift(models.DayTuesday, models.ShiftMorning)
	svc := suite.archiveServiceAt(midWeek)

	first, err := svc.ForceArchive()
	suite.NoError(err)
	suite.Equal(1, first.ArchivedCount)
	suite.Equal(archiveWeekStart, first.WeekStart.UTC())

	second, err := svc.ForceArchive()
	suite.NoError(err)
	suite.True(second.Ran)
	suite.Equal(0, second.ArchivedCount)

	reports, err := suite.reportRepo.GetByBusinessAndWeek(suite.business.ID, archiveWeekStart)
	suite.NoError(err)
	suite.Len(reports, 1)
}

// TestArchivedNameSurvivesRename tests the frozen-name property: renaming the
// employee after archiving never rewrites the report
func (suite *ArchiveServiceTestSuite) TestArchivedNameSurvivesRename() {
	suite.seedShift(models.DayThursday, models.ShiftAfternoon)

	_, err := suite.archiveServiceAt(midWeek).ForceArchive()
	suite.NoError(err)

	suite.employee.Name = "Avery Renamed"
	suite.NoError(suite.baseTestSuite.DB.Save(suite.employee).Error)

	reports, err := suite.reportRepo.GetByBusinessAndWeek(suite.business.ID, archiveWeekStart)
	suite.NoError(err)
	suite.Len(reports, 1)
	suite.Equal("Avery Archivist", reports[0].EmployeeName)
}

// TestArchiveGroupsPerBusiness tests that one employee working two businesses
// yields one report row per business
func (suite *ArchiveServiceTestSuite) TestArchiveGroupsPerBusiness() {
	suite.seedShift(models.DayMonday, models.ShiftMorning)

	other := testutils.NewBusinessFactory().WithOrganization(suite.org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)
	shift := testutils.NewShiftFactory().ForSlot(models.DayTuesday, models.ShiftMorning)
	shift.OrganizationID = suite.org.ID
	shift.EmployeeID = suite.employee.ID
	shift.BusinessID = other.ID
	suite.NoError(suite.shiftRepo.Create(shift))

	result, err := suite.archiveServiceAt(midWeek).ForceArchive()

	suite.NoError(err)
	suite.Equal(2, result.ArchivedCount)
}

// Run the test suite
func TestArchiveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArchiveServiceTestSuite))
}
