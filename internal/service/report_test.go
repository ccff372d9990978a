package service_test

import (
	"testing"
	"time"

	"roster-backend/internal/database/models"
	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/logger"
	"roster-backend/internal/repository"
	"roster-backend/internal/schedule"
	"roster-backend/internal/service"
	"roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ReportServiceTestSuite tests the per-week report views against Postgres
type ReportServiceTestSuite struct {
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
func (suite *ReportServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.shiftRepo = repository.NewShiftRepository(suite.baseTestSuite.DB)
	suite.reportRepo = repository.NewWeeklyReportRepository(suite.baseTestSuite.DB)
	suite.runRepo = repository.NewArchiveRunRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ReportServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds the ownership chain
func (suite *ReportServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = testutils.NewOrganizationFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)

	suite.business = testutils.NewBusinessFactory().WithOrganization(suite.org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.business).Error)

	suite.employee = testutils.NewEmployeeFactory().WithOrganization(suite.org.ID)
	suite.employee.Name = "Robin Reporter"
	suite.NoError(suite.baseTestSuite.DB.Create(suite.employee).Error)
}

// TearDownTest runs after each test
func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ReportServiceTestSuite) reportServiceAt(now time.Time) *service.ReportService {
	businessRepo := repository.NewBusinessRepository(suite.baseTestSuite.DB)
	return service.NewReportService(suite.reportRepo, suite.shiftRepo, businessRepo, schedule.FixedClock(now))
}

func (suite *ReportServiceTestSuite) seedShift(day models.DayOfWeek, shiftTime models.ShiftTime) {
	shift := testutils.NewShiftFactory().ForSlot(day, shiftTime)
	shift.OrganizationID = suite.org.ID
	shift.EmployeeID = suite.employee.ID
	shift.BusinessID = suite.business.ID
	suite.NoError(suite.shiftRepo.Create(shift))
}

func (suite *ReportServiceTestSuite) archiveNow(now time.Time) {
	archiver := service.NewArchiveService(
		suite.shiftRepo, suite.reportRepo, suite.runRepo,
		schedule.DefaultPolicy(), schedule.FixedClock(now), logger.New(),
	)
	_, err := archiver.ForceArchive()
	suite.NoError(err)
}

// TestReportRejectsNonMondayWeekStart tests the week-start validation
func (suite *ReportServiceTestSuite) TestReportRejectsNonMondayWeekStart() {
	wednesday := archiveWeekStart.AddDate(0, 0, 2)

	_, err := suite.reportServiceAt(midWeek).ReportForWeek(suite.business.ID, wednesday)

	suite.ErrorIs(err, apperrors.ErrInvalidWeekStart)
}

// TestReportForCurrentWeekIsLive tests that the current week aggregates the
// roster as it stands
func (suite *ReportServiceTestSuite) TestReportForCurrentWeekIsLive() {
	suite.seedShift(models.DayMonday, models.ShiftMorning)
	suite.seedShift(models.DayFriday, models.ShiftAfternoon)

	report, err := suite.reportServiceAt(midWeek).ReportForWeek(suite.business.ID, archiveWeekStart)

	suite.NoError(err)
	suite.True(report.IsCurrent)
	suite.Len(report.Entries, 1)

	entry := report.Entries[0]
	suite.Equal("Robin Reporter", entry.EmployeeName)
	suite.Equal(2, entry.ShiftCount)
	suite.InDelta(15.0, entry.TotalHours, 0.001)
	suite.Equal([]models.DayOfWeek{models.DayMonday, models.DayFriday}, entry.WorkingDays)
}

// TestReportForPastWeekReadsArchive tests that a past week comes from the
// frozen rows, untouched by later roster and employee changes
func (suite *ReportServiceTestSuite) TestReportForPastWeekReadsArchive() {
	suite.seedShift(models.DayTuesday, models.ShiftMorning)
	suite.archiveNow(midWeek)

	// Mutate everything the archive should have frozen
	suite.employee.Name = "Robin Renamed"
	suite.NoError(suite.baseTestSuite.DB.Save(suite.employee).Error)
	_, err := suite.shiftRepo.DeleteByBusinessID(suite.business.ID)
	suite.NoError(err)

	nextWeek := midWeek.AddDate(0, 0, 7)
	report, err := suite.reportServiceAt(nextWeek).ReportForWeek(suite.business.ID, archiveWeekStart)

	suite.NoError(err)
	suite.False(report.IsCurrent)
	suite.Len(report.Entries, 1)
	suite.Equal("Robin Reporter", report.Entries[0].EmployeeName)
	suite.Equal(1, report.Entries[0].ShiftCount)
	suite.Len(report.Entries[0].Shifts, 1)
	suite.Equal(models.DayTuesday, report.Entries[0].Shifts[0].DayOfWeek)
}

// TestReportForUnarchivedWeekIsEmpty tests that a past week nothing was
// archived for renders as an empty report, not an error
func (suite *ReportServiceTestSuite) TestReportForUnarchivedWeekIsEmpty() {
	longAgo := archiveWeekStart.AddDate(0, 0, -28)

	report, err := suite.reportServiceAt(midWeek).ReportForWeek(suite.business.ID, longAgo)

	suite.NoError(err)
	suite.False(report.IsCurrent)
	suite.Equal(longAgo, report.WeekStart)
	suite.Empty(report.Entries)
}

// TestReportForUnknownBusiness tests the business existence check
func (suite *ReportServiceTestSuite) TestReportForUnknownBusiness() {
	ghost := testutils.NewBusinessFactory().WithOrganization(suite.org.ID)

	_, err := suite.reportServiceAt(midWeek).ReportForWeek(ghost.ID, archiveWeekStart)

	suite.ErrorIs(err, apperrors.ErrBusinessNotFound)
}

// TestListWeeksCurrentFirst tests that the weeks listing leads with the live
// week and follows with archived weeks
func (suite *ReportServiceTestSuite) TestListWeeksCurrentFirst() {
	suite.seedShift(models.DayMonday, models.ShiftMorning)
	suite.archiveNow(midWeek)

	nextWeek := midWeek.AddDate(0, 0, 7)
	result, err := suite.reportServiceAt(nextWeek).ListWeeks(suite.business.ID)

	suite.NoError(err)
	suite.Len(result.Weeks, 2)

	// Archiving never clears the roster, so the live week still counts the shift
	suite.True(result.Weeks[0].IsCurrent)
	suite.Equal(int64(1), result.Weeks[0].TotalShifts)
	suite.Equal(int64(1), result.Weeks[0].EmployeeCount)

	suite.False(result.Weeks[1].IsCurrent)
	suite.Equal(archiveWeekStart, result.Weeks[1].WeekStart.UTC())
	suite.Equal(int64(1), result.Weeks[1].EmployeeCount)
	suite.Equal(int64(1), result.Weeks[1].TotalShifts)
}

// Run the test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
