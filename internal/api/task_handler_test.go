package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/core"
	"github.com/ojharitesh/Launch-Navigator/internal/db"
	"github.com/ojharitesh/Launch-Navigator/internal/middleware"
)

func newTestTaskHandler() *TaskHandler {
	store := db.NewMemoryStore()
	activity := core.NewActivityService(store.Activity())
	taskService := core.NewTaskService(
		store.Catalog(),
		store.UserTasks(),
		store.Profiles(),
		store.Licenses(),
		store.Inspections(),
		activity,
		30,
		zap.NewNop(),
	)
	return NewTaskHandler(taskService, zap.NewNop())
}

func testContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, recorder
}

func TestListCatalogHandler(t *testing.T) {
	handler := newTestTaskHandler()
	c, recorder := testContext(t, http.MethodGet, "/api/v1/tasks?state=CA&business_type=restaurant", nil)

	handler.ListCatalog(c)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	var resp CatalogResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Source != core.SourceSeed {
		t.Errorf("source = %q, want %q with an empty store", resp.Source, core.SourceSeed)
	}
	if len(resp.Tasks) == 0 {
		t.Error("expected tasks for a CA restaurant")
	}
}

func TestToggleTaskHandlerNotFound(t *testing.T) {
	handler := newTestTaskHandler()
	body, _ := json.Marshal(map[string]bool{"completed": true})
	c, recorder := testContext(t, http.MethodPatch, "/api/v1/user-tasks/missing", body)
	c.Set(middleware.ContextUserID, "user-1")
	c.Params = gin.Params{{Key: "userTaskId", Value: "missing"}}

	handler.ToggleTask(c)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for an unknown user task", recorder.Code)
	}
}

func TestToggleTaskHandlerUnauthenticated(t *testing.T) {
	handler := newTestTaskHandler()
	body, _ := json.Marshal(map[string]bool{"completed": true})
	c, recorder := testContext(t, http.MethodPatch, "/api/v1/user-tasks/x", body)
	c.Params = gin.Params{{Key: "userTaskId", Value: "x"}}

	handler.ToggleTask(c)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without a user in context", recorder.Code)
	}
}

func TestAssignTasksHandlerValidation(t *testing.T) {
	handler := newTestTaskHandler()
	c, recorder := testContext(t, http.MethodPost, "/api/v1/user-tasks", []byte(`{"wrong":"shape"`))
	c.Set(middleware.ContextUserID, "user-1")

	handler.AssignTasks(c)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a malformed payload", recorder.Code)
	}
}

func TestMetaHandlers(t *testing.T) {
	handler := NewMetaHandler()

	c, recorder := testContext(t, http.MethodGet, "/api/v1/meta/states", nil)
	handler.ListStates(c)
	if recorder.Code != http.StatusOK {
		t.Fatalf("states status = %d, want 200", recorder.Code)
	}
	var statesResp struct {
		States []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"states"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &statesResp); err != nil {
		t.Fatalf("decoding states: %v", err)
	}
	if len(statesResp.States) != 50 {
		t.Errorf("got %d states, want 50", len(statesResp.States))
	}

	c, recorder = testContext(t, http.MethodGet, "/api/v1/meta/business-types", nil)
	handler.ListBusinessTypes(c)
	if recorder.Code != http.StatusOK {
		t.Fatalf("business types status = %d, want 200", recorder.Code)
	}
}
