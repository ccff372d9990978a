package repository

import (
	"testing"

	"roster-backend/internal/database/models"
	"roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ShiftRepositoryTestSuite tests the ShiftRepository
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftRepository

	org      *models.Organization
	business *models.Business
	employee *models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShiftRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds the ownership chain
func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = testutils.NewOrganizationFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)

	suite.business = testutils.NewBusinessFactory().WithOrganization(suite.org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.business).Error)

	suite.employee = testutils.NewEmployeeFactory().WithOrganization(suite.org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.employee).Error)
}

// TearDownTest runs after each test
func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftRepositoryTestSuite) newShift(day models.DayOfWeek, shiftTime models.ShiftTime) *models.Shift {
	shift := testutils.NewShiftFactory().ForSlot(day, shiftTime)
	shift.OrganizationID = suite.org.ID
	shift.EmployeeID = suite.employee.ID
	shift.BusinessID = suite.business.ID
	return shift
}

// TestCreate tests inserting a shift
func (suite *ShiftRepositoryTestSuite) TestCreate() {
	shift := suite.newShift(models.DayMonday, models.ShiftMorning)

	err := suite.repo.Create(shift)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(shift.ID)
	suite.NoError(err)
	suite.Equal(models.DayMonday, retrieved.DayOfWeek)
	suite.Equal("08:00", retrieved.StartTime)
}

// TestCreateDoubleBookingRejected tests that the unique index rejects a second
// shift for the same employee, day and shift time anywhere in the organization
func (suite *ShiftRepositoryTestSuite) TestCreateDoubleBookingRejected() {
	first := suite.newShift(models.DayMonday, models.ShiftMorning)
	suite.NoError(suite.repo.Create(first))

	otherBusiness := testutils.NewBusinessFactory().WithOrganization(suite.org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(otherBusiness).Error)

	duplicate := suite.newShift(models.DayMonday, models.ShiftMorning)
	duplicate.BusinessID = otherBusiness.ID

	err := suite.repo.Create(duplicate)

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestCreateDifferentSlotsAllowed tests that the same employee can hold
// different slots
func (suite *ShiftRepositoryTestSuite) TestCreateDifferentSlotsAllowed() {
	suite.NoError(suite.repo.Create(suite.newShift(models.DayMonday, models.ShiftMorning)))
	suite.NoError(suite.repo.Create(suite.newShift(models.DayMonday, models.ShiftAfternoon)))
	suite.NoError(suite.repo.Create(suite.newShift(models.DayTuesday, models.ShiftMorning)))
}

// TestFindBooking tests locating a booking with its business preloaded
func (suite *ShiftRepositoryTestSuite) TestFindBooking() {
	shift := suite.newShift(models.DayWednesday, models.ShiftAfternoon)
	suite.NoError(suite.repo.Create(shift))

	found, err := suite.repo.FindBooking(suite.org.ID, suite.employee.ID, models.DayWednesday, models.ShiftAfternoon)

	suite.NoError(err)
	suite.NotNil(found)
	suite.Equal(suite.business.ID, found.BusinessID)
	suite.Equal(suite.business.Name, found.Business.Name)
}

// TestFindBookingEmpty tests that a free slot returns nil without an error
func (suite *ShiftRepositoryTestSuite) TestFindBookingEmpty() {
	found, err := suite.repo.FindBooking(suite.org.ID, suite.employee.ID, models.DayFriday, models.ShiftMorning)

	suite.NoError(err)
	suite.Nil(found)
}

// TestFindSlot tests locating the shift occupying a business slot
func (suite *ShiftRepositoryTestSuite) TestFindSlot() {
	shift := suite.newShift(models.DayThursday, models.ShiftMorning)
	suite.NoError(suite.repo.Create(shift))

	found, err := suite.repo.FindSlot(suite.business.ID, models.DayThursday, models.ShiftMorning)
	suite.NoError(err)
	suite.NotNil(found)
	suite.Equal(shift.ID, found.ID)

	empty, err := suite.repo.FindSlot(suite.business.ID, models.DayThursday, models.ShiftAfternoon)
	suite.NoError(err)
	suite.Nil(empty)
}

// TestUpdateAll tests that a multi-shift update persists every row
func (suite *ShiftRepositoryTestSuite) TestUpdateAll() {
	morning := suite.newShift(models.DayMonday, models.ShiftMorning)
	afternoon := suite.newShift(models.DayMonday, models.ShiftAfternoon)
	suite.NoError(suite.repo.Create(morning))
	suite.NoError(suite.repo.Create(afternoon))

	morning.EndTime = "14:10"
	afternoon.StartTime = "14:11"

	suite.NoError(suite.repo.UpdateAll(morning, afternoon))

	saved, err := suite.repo.GetByID(morning.ID)
	suite.NoError(err)
	suite.Equal("14:10", saved.EndTime)

	saved, err = suite.repo.GetByID(afternoon.ID)
	suite.NoError(err)
	suite.Equal("14:11", saved.StartTime)
}

// TestDelete tests removing a shift by its slot identity
func (suite *ShiftRepositoryTestSuite) TestDelete() {
	shift := suite.newShift(models.DayMonday, models.ShiftMorning)
	suite.NoError(suite.repo.Create(shift))

	affected, err := suite.repo.Delete(suite.employee.ID, suite.business.ID, models.DayMonday, models.ShiftMorning)
	suite.NoError(err)
	suite.Equal(int64(1), affected)

	// Deleting again is a silent no-op
	affected, err = suite.repo.Delete(suite.employee.ID, suite.business.ID, models.DayMonday, models.ShiftMorning)
	suite.NoError(err)
	suite.Equal(int64(0), affected)
}

// TestDeleteByBusinessID tests clearing a whole business roster
func (suite *ShiftRepositoryTestSuite) TestDeleteByBusinessID() {
	suite.NoError(suite.repo.Create(suite.newShift(models.DayMonday, models.ShiftMorning)))
	suite.NoError(suite.repo.Create(suite.newShift(models.DayTuesday, models.ShiftAfternoon)))

	affected, err := suite.repo.DeleteByBusinessID(suite.business.ID)

	suite.NoError(err)
	suite.Equal(int64(2), affected)

	remaining, err := suite.repo.GetByBusinessID(suite.business.ID)
	suite.NoError(err)
	suite.Empty(remaining)
}

// TestGetByEmployeeID tests loading an employee's shifts with businesses preloaded
func (suite *ShiftRepositoryTestSuite) TestGetByEmployeeID() {
	suite.NoError(suite.repo.Create(suite.newShift(models.DayMonday, models.ShiftMorning)))
	suite.NoError(suite.repo.Create(suite.newShift(models.DaySaturday, models.ShiftAfternoon)))

	shifts, err := suite.repo.GetByEmployeeID(suite.employee.ID)

	suite.NoError(err)
	suite.Len(shifts, 2)
	for _, shift := range shifts {
		suite.Equal(suite.business.Name, shift.Business.Name)
	}
}

// Run the test suite
func TestShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRepositoryTestSuite))
}

// AvailabilityRepositoryTestSuite tests the AvailabilityRepository
type AvailabilityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AvailabilityRepository

	employee *models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *AvailabilityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAvailabilityRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *AvailabilityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AvailabilityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	org := testutils.NewOrganizationFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	suite.employee = testutils.NewEmployeeFactory().WithOrganization(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.employee).Error)
}

// TearDownTest runs after each test
func (suite *AvailabilityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetDefaultsToAvailable tests that a tuple without a stored row reads available
func (suite *AvailabilityRepositoryTestSuite) TestGetDefaultsToAvailable() {
	available, err := suite.repo.Get(suite.employee.ID, models.DayMonday, models.ShiftMorning)

	suite.NoError(err)
	suite.True(available)
}

// TestUpsertIsIdempotent tests that repeated upserts keep a single row and the
// latest value wins
func (suite *AvailabilityRepositoryTestSuite) TestUpsertIsIdempotent() {
	slot := testutils.NewAvailabilitySlotFactory().ForEmployee(suite.employee.ID)
	suite.NoError(suite.repo.Upsert(slot))

	available, err := suite.repo.Get(suite.employee.ID, models.DayMonday, models.ShiftMorning)
	suite.NoError(err)
	suite.False(available)

	// Flip back to available through the same tuple
	again := testutils.NewAvailabilitySlotFactory().ForEmployee(suite.employee.ID)
	again.IsAvailable = true
	suite.NoError(suite.repo.Upsert(again))

	available, err = suite.repo.Get(suite.employee.ID, models.DayMonday, models.ShiftMorning)
	suite.NoError(err)
	suite.True(available)

	slots, err := suite.repo.GetByEmployeeID(suite.employee.ID)
	suite.NoError(err)
	suite.Len(slots, 1)
}

// TestDeleteByEmployeeID tests resetting a whole week
func (suite *AvailabilityRepositoryTestSuite) TestDeleteByEmployeeID() {
	for _, day := range []models.DayOfWeek{models.DayMonday, models.DayFriday} {
		slot := testutils.NewAvailabilitySlotFactory().ForEmployee(suite.employee.ID)
		slot.DayOfWeek = day
		suite.NoError(suite.repo.Upsert(slot))
	}

	suite.NoError(suite.repo.DeleteByEmployeeID(suite.employee.ID))

	slots, err := suite.repo.GetByEmployeeID(suite.employee.ID)
	suite.NoError(err)
	suite.Empty(slots)
}

// Run the test suite
func TestAvailabilityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityRepositoryTestSuite))
}
