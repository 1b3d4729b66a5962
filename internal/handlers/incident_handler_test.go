package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/services"
	"cityresponse/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubIncidentService struct {
	lastInput  *services.CreateIncidentInput
	resolveErr error
}

func (s *stubIncidentService) CreateReport(ctx context.Context, input *services.CreateIncidentInput) (*models.IncidentReport, error) {
	s.lastInput = input
	return &models.IncidentReport{
		ID:         primitive.NewObjectID(),
		ReporterID: input.ReporterID,
		Title:      input.Title,
		Priority:   input.Priority,
		Status:     models.IncidentStatusPending,
		Coordinate: input.Coordinate,
	}, nil
}

func (s *stubIncidentService) GetIncident(ctx context.Context, id primitive.ObjectID) (*models.IncidentReport, error) {
	return nil, services.ErrNotFound
}

func (s *stubIncidentService) ListIncidents(ctx context.Context, filter *interfaces.IncidentFilter, params *utils.PaginationParams) ([]*models.IncidentReport, int64, error) {
	return nil, 0, nil
}

func (s *stubIncidentService) ScheduleResponse(ctx context.Context, id primitive.ObjectID, scheduledResponseTime string) error {
	return nil
}

func (s *stubIncidentService) ResolveIncident(ctx context.Context, id primitive.ObjectID) error {
	return s.resolveErr
}

func newIncidentRouter(stub *stubIncidentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewIncidentHandler(stub)
	router := gin.New()
	router.POST("/incidents", handler.CreateIncident)
	router.PUT("/incidents/:id/resolve", handler.ResolveIncident)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestCreateIncidentPassesCoordinateObject(t *testing.T) {
	stub := &stubIncidentService{}
	router := newIncidentRouter(stub)

	body := fmt.Sprintf(`{"reporter_id":%q,"title":"Fallen tree on the highway","priority":"high","coordinate":{"lat":8.38,"lng":124.88}}`,
		primitive.NewObjectID().Hex())
	recorder := postJSON(router, "/incidents", body)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, stub.lastInput)
	require.NotNil(t, stub.lastInput.Coordinate)
	assert.Equal(t, models.Coordinate{Lat: 8.38, Lng: 124.88}, *stub.lastInput.Coordinate)
	assert.Equal(t, models.IncidentPriorityHigh, stub.lastInput.Priority)
}

func TestCreateIncidentPassesCoordinateArray(t *testing.T) {
	stub := &stubIncidentService{}
	router := newIncidentRouter(stub)

	body := fmt.Sprintf(`{"reporter_id":%q,"title":"Flooded road","coordinate":[124.88,8.38]}`,
		primitive.NewObjectID().Hex())
	recorder := postJSON(router, "/incidents", body)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, stub.lastInput)
	require.NotNil(t, stub.lastInput.Coordinate)
	assert.Equal(t, models.Coordinate{Lat: 8.38, Lng: 124.88}, *stub.lastInput.Coordinate)
}

func TestCreateIncidentWithoutCoordinate(t *testing.T) {
	stub := &stubIncidentService{}
	router := newIncidentRouter(stub)

	body := fmt.Sprintf(`{"reporter_id":%q,"title":"Broken streetlight"}`, primitive.NewObjectID().Hex())
	recorder := postJSON(router, "/incidents", body)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, stub.lastInput)
	assert.Nil(t, stub.lastInput.Coordinate)
	assert.Equal(t, models.IncidentPriorityMedium, stub.lastInput.Priority)
}

func TestCreateIncidentRejectsBadCoordinate(t *testing.T) {
	stub := &stubIncidentService{}
	router := newIncidentRouter(stub)

	body := fmt.Sprintf(`{"reporter_id":%q,"title":"Ghost report","coordinate":"not-a-coordinate"}`,
		primitive.NewObjectID().Hex())
	recorder := postJSON(router, "/incidents", body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Nil(t, stub.lastInput)
}

func TestResolveIncidentConflictMapsTo409(t *testing.T) {
	stub := &stubIncidentService{resolveErr: fmt.Errorf("%w: incident already resolved", services.ErrStateConflict)}
	router := newIncidentRouter(stub)

	request := httptest.NewRequest(http.MethodPut, "/incidents/"+primitive.NewObjectID().Hex()+"/resolve", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}
