package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/middleware"
	"todo-backend/internal/model"
	"todo-backend/internal/todo"
	repo "todo-backend/internal/todo/repository"
	"todo-backend/pkg/response"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockUseCase implements todo.UseCase with overridable functions.
type mockUseCase struct {
	listFunc   func(sc model.Scope, input todo.ListTodosInput) (todo.ListTodosOutput, error)
	detailFunc func(sc model.Scope, id string) (todo.DetailTodoOutput, error)
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input todo.ListTodosInput) (todo.ListTodosOutput, error) {
	if m.listFunc != nil {
		return m.listFunc(sc, input)
	}
	return todo.ListTodosOutput{}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (todo.DetailTodoOutput, error) {
	if m.detailFunc != nil {
		return m.detailFunc(sc, id)
	}
	return todo.DetailTodoOutput{}, nil
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateTodoInput) (todo.CreateTodoOutput, error) {
	return todo.CreateTodoOutput{}, nil
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateTodoInput) (todo.UpdateTodoOutput, error) {
	return todo.UpdateTodoOutput{}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (m *mockUseCase) ToggleComplete(ctx context.Context, sc model.Scope, id string) (todo.UpdateTodoOutput, error) {
	return todo.UpdateTodoOutput{}, nil
}

func (m *mockUseCase) Stats(ctx context.Context, sc model.Scope) (todo.StatsOutput, error) {
	return todo.StatsOutput{}, nil
}

// serveWithScope routes the request through the handler with an
// authenticated scope already on the context.
func serveWithScope(method, path string, register func(*gin.RouterGroup)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rg := r.Group("", func(c *gin.Context) {
		middleware.SetScope(c, model.Scope{UserID: "user-1"})
	})
	register(rg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListHandler(t *testing.T) {
	t.Run("Store Failure Is A Server Error", func(t *testing.T) {
		uc := &mockUseCase{
			listFunc: func(sc model.Scope, input todo.ListTodosInput) (todo.ListTodosOutput, error) {
				return todo.ListTodosOutput{}, repo.ErrFailedToList
			},
		}
		h := New(&mockLogger{}, uc)

		w := serveWithScope(http.MethodGet, "/todos", func(rg *gin.RouterGroup) {
			rg.GET("/todos", h.List)
		})

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 for a store failure, got %d", w.Code)
		}
		var body response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Message != response.DefaultErrorMessage {
			t.Errorf("store detail must not leak, got %q", body.Message)
		}
	})

	t.Run("Successful List", func(t *testing.T) {
		uc := &mockUseCase{
			listFunc: func(sc model.Scope, input todo.ListTodosInput) (todo.ListTodosOutput, error) {
				if sc.UserID != "user-1" {
					t.Errorf("expected caller scope, got %q", sc.UserID)
				}
				return todo.ListTodosOutput{Todos: []model.Todo{{ID: "1", Title: "Buy milk"}}, Total: 1}, nil
			},
		}
		h := New(&mockLogger{}, uc)

		w := serveWithScope(http.MethodGet, "/todos", func(rg *gin.RouterGroup) {
			rg.GET("/todos", h.List)
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDetailHandler(t *testing.T) {
	t.Run("Not Found Maps To 404", func(t *testing.T) {
		uc := &mockUseCase{
			detailFunc: func(sc model.Scope, id string) (todo.DetailTodoOutput, error) {
				return todo.DetailTodoOutput{}, todo.ErrTodoNotFound
			},
		}
		h := New(&mockLogger{}, uc)

		w := serveWithScope(http.MethodGet, "/todos/missing", func(rg *gin.RouterGroup) {
			rg.GET("/todos/:id", h.Detail)
		})

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Store Failure Is A Server Error", func(t *testing.T) {
		uc := &mockUseCase{
			detailFunc: func(sc model.Scope, id string) (todo.DetailTodoOutput, error) {
				return todo.DetailTodoOutput{}, repo.ErrFailedToGet
			},
		}
		h := New(&mockLogger{}, uc)

		w := serveWithScope(http.MethodGet, "/todos/1", func(rg *gin.RouterGroup) {
			rg.GET("/todos/:id", h.Detail)
		})

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 for a store failure, got %d", w.Code)
		}
	})
}
