package handlers

import (
	"net/http"
	"testing"
	"time"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/mocks"
	"roster-backend/internal/schedule"
	"roster-backend/internal/service"
	"roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// reportHandlerNow pins the handler clock to a Wednesday so the default
// week_start is a known Monday
var reportHandlerNow = time.Date(2026, time.February, 4, 12, 0, 0, 0, time.UTC)

// ReportHandlerTestSuite tests the report and archive endpoints
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockReports *mocks.MockReportServiceInterface
	mockArchive *mocks.MockArchiveServiceInterface
	handler     *ReportHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest runs before each test
func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReports = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.mockArchive = mocks.NewMockArchiveServiceInterface(suite.ctrl)
	suite.handler = NewReportHandler(suite.mockReports, suite.mockArchive, schedule.FixedClock(reportHandlerNow))
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/businesses/:id/reports", suite.handler.GetWeeklyReport)
	suite.httpSuite.Router.GET("/businesses/:id/weeks", suite.handler.ListWeeks)
	suite.httpSuite.Router.POST("/reports/archive", suite.handler.TriggerArchive)
}

// TearDownTest runs after each test
func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetWeeklyReportExplicitWeek tests a report request with week_start set
func (suite *ReportHandlerTestSuite) TestGetWeeklyReportExplicitWeek() {
	businessID := uuid.New()
	weekStart := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
	expected := &service.WeekReportResponse{BusinessID: businessID, WeekStart: weekStart}

	suite.mockReports.EXPECT().ReportForWeek(businessID, weekStart).Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/businesses/"+businessID.String()+"/reports?week_start=2026-02-02", nil)

	var response service.WeekReportResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(businessID, response.BusinessID)
}

// TestGetWeeklyReportDefaultsToClockWeek tests that an omitted week_start
// resolves against the injected clock, not the wall clock
func (suite *ReportHandlerTestSuite) TestGetWeeklyReportDefaultsToClockWeek() {
	businessID := uuid.New()
	weekStart := schedule.WeekStartFor(reportHandlerNow)
	expected := &service.WeekReportResponse{BusinessID: businessID, WeekStart: weekStart, IsCurrent: true}

	suite.mockReports.EXPECT().ReportForWeek(businessID, weekStart).Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/businesses/"+businessID.String()+"/reports", nil)

	var response service.WeekReportResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.True(response.IsCurrent)
}

// TestGetWeeklyReportBadDate tests an unparseable week_start
func (suite *ReportHandlerTestSuite) TestGetWeeklyReportBadDate() {
	businessID := uuid.New()

	recorder := suite.httpSuite.MakeRequest("GET", "/businesses/"+businessID.String()+"/reports?week_start=february", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid week_start")
}

// TestGetWeeklyReportNonMonday tests that a non-Monday week start maps to 400
func (suite *ReportHandlerTestSuite) TestGetWeeklyReportNonMonday() {
	businessID := uuid.New()
	wednesday := time.Date(2026, time.February, 4, 0, 0, 0, 0, time.UTC)
	suite.mockReports.EXPECT().ReportForWeek(businessID, wednesday).Return(nil, apperrors.ErrInvalidWeekStart)

	recorder := suite.httpSuite.MakeRequest("GET", "/businesses/"+businessID.String()+"/reports?week_start=2026-02-04", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

// TestGetWeeklyReportEmptyWeek tests that an unarchived week renders as an
// empty report rather than an error status
func (suite *ReportHandlerTestSuite) TestGetWeeklyReportEmptyWeek() {
	businessID := uuid.New()
	weekStart := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	empty := &service.WeekReportResponse{BusinessID: businessID, WeekStart: weekStart}
	suite.mockReports.EXPECT().ReportForWeek(businessID, weekStart).Return(empty, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/businesses/"+businessID.String()+"/reports?week_start=2026-01-05", nil)

	var response service.WeekReportResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Empty(response.Entries)
}

// TestListWeeksSuccess tests the weeks listing
func (suite *ReportHandlerTestSuite) TestListWeeksSuccess() {
	businessID := uuid.New()
	expected := &service.WeekListResponse{
		BusinessID: businessID,
		Weeks:      []service.WeekListEntry{{IsCurrent: true}},
	}
	suite.mockReports.EXPECT().ListWeeks(businessID).Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/businesses/"+businessID.String()+"/weeks", nil)

	var response service.WeekListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response.Weeks, 1)
	suite.True(response.Weeks[0].IsCurrent)
}

// TestTriggerArchiveDue tests the guarded archive path
func (suite *ReportHandlerTestSuite) TestTriggerArchiveDue() {
	suite.mockArchive.EXPECT().ArchiveIfDue().Return(&service.ArchiveResponse{Ran: false}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/reports/archive", nil)

	var response service.ArchiveResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.False(response.Ran)
}

// TestTriggerArchiveForced tests the force query parameter
func (suite *ReportHandlerTestSuite) TestTriggerArchiveForced() {
	suite.mockArchive.EXPECT().ForceArchive().Return(&service.ArchiveResponse{Ran: true, ArchivedCount: 4}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/reports/archive?force=true", nil)

	var response service.ArchiveResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.True(response.Ran)
	suite.Equal(4, response.ArchivedCount)
}

// Run the test suite
func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
