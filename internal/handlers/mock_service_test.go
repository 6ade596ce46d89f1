package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"

	"todo_api/internal/models"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockTodoList struct {
	mu        sync.Mutex
	items     []models.TodoItem
	listErr   error
	createN   int64
	createErr error
	deleteN   int64
	deleteErr error

	listCalls      int
	createCalls    int
	lastCreateItem string
	lastDeleteID   int64
	deleteCalls    int
}

func (m *mockTodoList) List(ctx context.Context) ([]models.TodoItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	return slices.Clone(m.items), m.listErr
}

// setItems swaps the listed items; safe while a stream is polling.
func (m *mockTodoList) setItems(items []models.TodoItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
}

func (m *mockTodoList) Create(ctx context.Context, item string) (int64, error) {
	m.createCalls++
	m.lastCreateItem = item
	return m.createN, m.createErr
}

func (m *mockTodoList) Delete(ctx context.Context, id int64) (int64, error) {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteN, m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func doRequest(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	contentType := ""
	if body != "" {
		contentType = "application/json"
	}
	return doRequestWithType(r, method, target, contentType, body)
}

func doRequestWithType(r http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
