package handlers

import (
	"net/http"
	"testing"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/mocks"
	"roster-backend/internal/service"
	"roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite tests the organization handler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOrganizationServiceInterface
	handler     *OrganizationHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest runs before each test
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.handler = NewOrganizationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.POST("/organizations", suite.handler.CreateOrganization)
	suite.httpSuite.Router.GET("/organizations", suite.handler.ListOrganizations)
	suite.httpSuite.Router.GET("/organizations/:id", suite.handler.GetOrganization)
}

// TearDownTest runs after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganizationSuccess tests a successful creation
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationSuccess() {
	expected := &service.OrganizationResponse{ID: uuid.New(), Name: "Acme Group"}
	suite.mockService.EXPECT().Create(gomock.Any()).Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/organizations", &service.CreateOrganizationRequest{Name: "Acme Group"})

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("Acme Group", response.Name)
}

// TestCreateOrganizationDuplicate tests that a duplicate name maps to 409
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationDuplicate() {
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrOrganizationExists)

	recorder := suite.httpSuite.MakeRequest("POST", "/organizations", &service.CreateOrganizationRequest{Name: "Acme Group"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

// TestCreateOrganizationInvalidBody tests malformed JSON
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationInvalidBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/organizations", "not-json")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestGetOrganizationSuccess tests fetching one organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationSuccess() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(&service.OrganizationResponse{ID: id, Name: "Acme Group"}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/organizations/"+id.String(), nil)

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(id, response.ID)
}

// TestGetOrganizationNotFound tests an unknown organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrOrganizationNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/organizations/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

// TestGetOrganizationInvalidID tests a malformed organization ID
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/organizations/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

// TestListOrganizations tests pagination defaults
func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	expected := &service.OrganizationListResponse{
		Organizations: []service.OrganizationResponse{{ID: uuid.New(), Name: "Acme Group"}},
		Total:         1,
	}
	suite.mockService.EXPECT().List(1, 20).Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/organizations", nil)

	var response service.OrganizationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(1), response.Total)
	suite.Len(response.Organizations, 1)
}

// Run the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
