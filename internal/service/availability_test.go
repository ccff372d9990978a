package service_test

import (
	"testing"
	"time"

	"roster-backend/internal/database/models"
	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/repository"
	"roster-backend/internal/schedule"
	"roster-backend/internal/service"
	"roster-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

var (
	saturdayLocked = time.Date(2026, time.February, 7, 23, 30, 0, 0, time.UTC)
	sundayNoon     = time.Date(2026, time.February, 8, 12, 0, 0, 0, time.UTC)
)

// AvailabilityServiceTestSuite tests the availability declarations and the
// lock window against Postgres
type AvailabilityServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite

	employee *models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *AvailabilityServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
}

// TearDownSuite runs after all tests in the suite
func (suite *AvailabilityServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds an employee
func (suite *AvailabilityServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	org := testutils.NewOrganizationFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	suite.employee = testutils.NewEmployeeFactory().WithOrganization(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.employee).Error)
}

// TearDownTest runs after each test
func (suite *AvailabilityServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AvailabilityServiceTestSuite) availabilityServiceAt(now time.Time) *service.AvailabilityService {
	db := suite.baseTestSuite.DB
	return service.NewAvailabilityService(
		repository.NewAvailabilityRepository(db),
		repository.NewEmployeeRepository(db),
		schedule.DefaultPolicy(),
		schedule.FixedClock(now),
		validator.New(),
	)
}

func unavailableRequest(day models.DayOfWeek, shiftTime models.ShiftTime) *service.SetAvailabilityRequest {
	unavailable := false
	return &service.SetAvailabilityRequest{
		DayOfWeek:   day,
		ShiftTime:   shiftTime,
		IsAvailable: &unavailable,
	}
}

// TestSetAndGet tests a plain declaration outside the lock window
func (suite *AvailabilityServiceTestSuite) TestSetAndGet() {
	svc := suite.availabilityServiceAt(rosterNow)

	suite.NoError(svc.Set(suite.employee.ID, unavailableRequest(models.DayFriday, models.ShiftMorning)))

	available, err := svc.Get(suite.employee.ID, models.DayFriday, models.ShiftMorning)
	suite.NoError(err)
	suite.False(available)
}

// TestGetDefaultsToAvailable tests that undeclared tuples read available
func (suite *AvailabilityServiceTestSuite) TestGetDefaultsToAvailable() {
	available, err := suite.availabilityServiceAt(rosterNow).Get(suite.employee.ID, models.DayMonday, models.ShiftAfternoon)

	suite.NoError(err)
	suite.True(available)
}

// TestSetRejectedDuringSaturdayLock tests the Saturday-night write lock
func (suite *AvailabilityServiceTestSuite) TestSetRejectedDuringSaturdayLock() {
	err := suite.availabilityServiceAt(saturdayLocked).Set(suite.employee.ID, unavailableRequest(models.DayMonday, models.ShiftMorning))

	var lockedErr *apperrors.LockedWindowError
	suite.ErrorAs(err, &lockedErr)
}

// TestSetRejectedOnSunday tests that the scheduling day is read-only for workers
func (suite *AvailabilityServiceTestSuite) TestSetRejectedOnSunday() {
	err := suite.availabilityServiceAt(sundayNoon).Set(suite.employee.ID, unavailableRequest(models.DayMonday, models.ShiftMorning))

	var lockedErr *apperrors.LockedWindowError
	suite.ErrorAs(err, &lockedErr)
}

// TestResetRejectedDuringLock tests that resets obey the same window
func (suite *AvailabilityServiceTestSuite) TestResetRejectedDuringLock() {
	err := suite.availabilityServiceAt(saturdayLocked).Reset(suite.employee.ID)

	var lockedErr *apperrors.LockedWindowError
	suite.ErrorAs(err, &lockedErr)
}

// TestGetWeekOverlaysDeclarations tests the full grid with defaults overlaid
// by stored rows
func (suite *AvailabilityServiceTestSuite) TestGetWeekOverlaysDeclarations() {
	svc := suite.availabilityServiceAt(rosterNow)
	suite.NoError(svc.Set(suite.employee.ID, unavailableRequest(models.DayWednesday, models.ShiftAfternoon)))

	grid, err := svc.GetWeek(suite.employee.ID)

	suite.NoError(err)
	suite.Len(grid.Grid, 7)
	suite.False(grid.Grid[models.DayWednesday][models.ShiftAfternoon])
	suite.True(grid.Grid[models.DayWednesday][models.ShiftMorning])
	suite.True(grid.Grid[models.DaySunday][models.ShiftAfternoon])
}

// TestResetRevertsToDefault tests that a reset wipes every declaration
func (suite *AvailabilityServiceTestSuite) TestResetRevertsToDefault() {
	svc := suite.availabilityServiceAt(rosterNow)
	suite.NoError(svc.Set(suite.employee.ID, unavailableRequest(models.DayThursday, models.ShiftMorning)))
	suite.NoError(svc.Set(suite.employee.ID, unavailableRequest(models.DaySaturday, models.ShiftAfternoon)))

	suite.NoError(svc.Reset(suite.employee.ID))

	available, err := svc.Get(suite.employee.ID, models.DayThursday, models.ShiftMorning)
	suite.NoError(err)
	suite.True(available)
}

// TestSetForUnknownEmployee tests the employee existence check
func (suite *AvailabilityServiceTestSuite) TestSetForUnknownEmployee() {
	ghost := testutils.NewEmployeeFactory().Create()

	err := suite.availabilityServiceAt(rosterNow).Set(ghost.ID, unavailableRequest(models.DayMonday, models.ShiftMorning))

	suite.ErrorIs(err, apperrors.ErrEmployeeNotFound)
}

// Run the test suite
func TestAvailabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}
