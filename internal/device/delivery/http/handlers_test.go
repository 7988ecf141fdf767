package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/device"
	repo "todo-backend/internal/device/repository"
	"todo-backend/internal/middleware"
	"todo-backend/internal/model"
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

// mockUseCase implements device.UseCase with overridable functions.
type mockUseCase struct {
	listFunc func(sc model.Scope) (device.ListDevicesOutput, error)
}

func (m *mockUseCase) Register(ctx context.Context, sc model.Scope, input device.RegisterDeviceInput) (device.RegisterDeviceOutput, error) {
	return device.RegisterDeviceOutput{}, nil
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope) (device.ListDevicesOutput, error) {
	if m.listFunc != nil {
		return m.listFunc(sc)
	}
	return device.ListDevicesOutput{}, nil
}

func (m *mockUseCase) Unregister(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func TestListHandler(t *testing.T) {
	t.Run("Store Failure Is A Server Error", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		uc := &mockUseCase{
			listFunc: func(sc model.Scope) (device.ListDevicesOutput, error) {
				return device.ListDevicesOutput{}, repo.ErrFailedToListDevices
			},
		}
		h := New(&mockLogger{}, uc)

		r := gin.New()
		r.GET("/devices", func(c *gin.Context) {
			middleware.SetScope(c, model.Scope{UserID: "user-1"})
		}, h.List)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/devices", nil)
		r.ServeHTTP(w, req)

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

	t.Run("Missing Scope Is Unauthorized", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		h := New(&mockLogger{}, &mockUseCase{})

		r := gin.New()
		r.GET("/devices", h.List)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/devices", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without a scope, got %d", w.Code)
		}
	})
}
