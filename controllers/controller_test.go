package controllers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/config"
	"backoffice/controllers"
	"backoffice/metrics"
	"backoffice/repository"
	"backoffice/routes"
	"backoffice/services"
	"backoffice/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	ID      string          `json:"id"`
	Code    string          `json:"code"`
}

type server struct {
	t      *testing.T
	router *gin.Engine
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg, "backoffice")
	log := logger.NewNop()
	svc := services.NewService(services.ServiceOptions{
		Store:   repository.NewMemoryStore(nil),
		Logger:  log,
		Locker:  services.NewMemoryLocker(),
		Metrics: m,
	})

	router := config.InitApp(&config.Config{Env: "dev"}, log, m)
	routes.SetupRoutes(router, controllers.NewController(svc), reg)
	return &server{t: t, router: router}
}

func (s *server) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *server) create(path string, body interface{}) string {
	s.t.Helper()
	w, env := s.do(http.MethodPost, path, body)
	require.Equal(s.t, http.StatusCreated, w.Code, env.Message)
	require.True(s.t, env.Success)
	require.NotEmpty(s.t, env.ID)
	return env.ID
}

func TestCreateAndGetProperty(t *testing.T) {
	s := newServer(t)
	id := s.create("/api/v1/properties", gin.H{"name": "Seaside", "email": "desk@seaside.test"})

	w, env := s.do(http.MethodGet, "/api/v1/properties/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Seaside", got.Name)

	w, env = s.do(http.MethodGet, "/api/v1/properties/missing", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Contains(t, w.Body.String(), `"data":null`)
}

func TestBindingFailuresAreValidationErrors(t *testing.T) {
	s := newServer(t)

	w, env := s.do(http.MethodPost, "/api/v1/properties", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
	assert.False(t, env.Success)

	w, env = s.do(http.MethodPost, "/api/v1/properties", gin.H{"email": "desk@seaside.test"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name is required", env.Message)

	w, env = s.do(http.MethodGet, "/api/v1/properties?order=sideways", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
}

func TestErrorCodesMapToStatuses(t *testing.T) {
	s := newServer(t)
	p := s.create("/api/v1/properties", gin.H{"name": "Seaside"})

	w, env := s.do(http.MethodPost, "/api/v1/properties", gin.H{"name": "Seaside"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", env.Code)

	s.create("/api/v1/room-types", gin.H{"propertyId": p, "name": "Double", "maxOccupancy": 2})
	w, env = s.do(http.MethodDelete, "/api/v1/properties/"+p, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "REFERENCE_ERROR", env.Code)

	w, env = s.do(http.MethodPut, "/api/v1/properties/missing", gin.H{"name": "Other"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestTaskShorthands(t *testing.T) {
	s := newServer(t)
	p := s.create("/api/v1/properties", gin.H{"name": "Seaside"})
	rt := s.create("/api/v1/room-types", gin.H{"propertyId": p, "name": "Double", "maxOccupancy": 2})
	room := s.create("/api/v1/rooms", gin.H{"propertyId": p, "roomTypeId": rt, "roomNumber": "101"})
	task := s.create("/api/v1/housekeeping-tasks", gin.H{"propertyId": p, "roomId": room, "taskType": "cleaning"})

	w, _ := s.do(http.MethodPost, "/api/v1/housekeeping-tasks/"+task+"/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodPost, "/api/v1/housekeeping-tasks/"+task+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := s.do(http.MethodPost, "/api/v1/housekeeping-tasks/"+task+"/start", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, env.Message, "invalid status transition")

	_, env = s.do(http.MethodGet, "/api/v1/housekeeping-tasks/"+task, nil)
	var view struct {
		Task struct {
			Status string `json:"status"`
		} `json:"task"`
		Room struct {
			Room struct {
				RoomNumber string `json:"roomNumber"`
			} `json:"room"`
		} `json:"room"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "completed", view.Task.Status)
	assert.Equal(t, "101", view.Room.Room.RoomNumber)

	_, env = s.do(http.MethodGet, "/api/v1/properties/"+p+"/housekeeping-tasks?limit=1", nil)
	var page struct {
		Items  []json.RawMessage `json:"items"`
		IsDone bool              `json:"isDone"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 1)
	assert.True(t, page.IsDone)
}

func TestRepairEndpoint(t *testing.T) {
	s := newServer(t)

	w, env := s.do(http.MethodPost, "/api/v1/maintenance/recipe-lines/repair", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var report struct {
		Scanned int      `json:"scanned"`
		Removed []string `json:"removed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Zero(t, report.Scanned)
	assert.Empty(t, report.Removed)
}

func TestOperationalRoutes(t *testing.T) {
	s := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	w, env := s.do(http.MethodGet, "/api/v1/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, _ = s.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "backoffice_http_requests_total")
	assert.Contains(t, w.Body.String(), `path="unmatched"`)
}
