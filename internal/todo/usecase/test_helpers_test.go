package usecase_test

import (
	"context"

	"todo-backend/internal/model"
	"todo-backend/internal/todo/repository"
	"todo-backend/pkg/gcalendar"
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

// mockTodoRepo implements repository.Repository with overridable functions.
type mockTodoRepo struct {
	createFunc  func(opt repository.CreateTodoOptions) (model.Todo, error)
	getOneFunc  func(opt repository.GetOneTodoOptions) (model.Todo, error)
	listFunc    func(opt repository.ListTodosOptions) ([]model.Todo, error)
	updateFunc  func(opt repository.UpdateTodoOptions) (model.Todo, error)
	deleteFunc  func(opt repository.DeleteTodoOptions) error
	listDueFunc func(opt repository.ListDueTodosOptions) ([]repository.DueTodo, error)
	markFunc    func(ids []string) error
}

func (m *mockTodoRepo) CreateTodo(ctx context.Context, opt repository.CreateTodoOptions) (model.Todo, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Todo{}, nil
}

func (m *mockTodoRepo) GetOneTodo(ctx context.Context, opt repository.GetOneTodoOptions) (model.Todo, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.Todo{}, nil
}

func (m *mockTodoRepo) ListTodos(ctx context.Context, opt repository.ListTodosOptions) ([]model.Todo, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockTodoRepo) UpdateTodo(ctx context.Context, opt repository.UpdateTodoOptions) (model.Todo, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.Todo{}, nil
}

func (m *mockTodoRepo) DeleteTodo(ctx context.Context, opt repository.DeleteTodoOptions) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(opt)
	}
	return nil
}

func (m *mockTodoRepo) ListDueTodos(ctx context.Context, opt repository.ListDueTodosOptions) ([]repository.DueTodo, error) {
	if m.listDueFunc != nil {
		return m.listDueFunc(opt)
	}
	return nil, nil
}

func (m *mockTodoRepo) MarkNotified(ctx context.Context, ids []string) error {
	if m.markFunc != nil {
		return m.markFunc(ids)
	}
	return nil
}

// mockCalendar implements gcalendar.ICalendar and records requests.
type mockCalendar struct {
	createFunc func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error)

	requests []gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.createFunc != nil {
		return m.createFunc(req)
	}
	return &gcalendar.Event{ID: "evt-1"}, nil
}
