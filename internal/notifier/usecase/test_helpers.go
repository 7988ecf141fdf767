package usecase

import (
	"context"

	"todo-backend/internal/model"
	repo "todo-backend/internal/todo/repository"
	"todo-backend/pkg/expopush"
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

// mockRepo implements repository.Repository with overridable functions; only
// the notifier-facing methods matter here.
type mockRepo struct {
	listDueFunc      func(opt repo.ListDueTodosOptions) ([]repo.DueTodo, error)
	markNotifiedFunc func(ids []string) error

	markedIDs []string
}

func (m *mockRepo) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error) {
	return model.Todo{}, nil
}

func (m *mockRepo) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
	return model.Todo{}, nil
}

func (m *mockRepo) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.Todo, error) {
	return nil, nil
}

func (m *mockRepo) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
	return model.Todo{}, nil
}

func (m *mockRepo) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) error {
	return nil
}

func (m *mockRepo) ListDueTodos(ctx context.Context, opt repo.ListDueTodosOptions) ([]repo.DueTodo, error) {
	if m.listDueFunc != nil {
		return m.listDueFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) MarkNotified(ctx context.Context, ids []string) error {
	m.markedIDs = append(m.markedIDs, ids...)
	if m.markNotifiedFunc != nil {
		return m.markNotifiedFunc(ids)
	}
	return nil
}

// mockPush implements expopush.IPush and records every batch it receives.
type mockPush struct {
	sendFunc func(messages []expopush.Message) ([]expopush.Ticket, error)

	batches [][]expopush.Message
}

func (m *mockPush) SendBatch(ctx context.Context, messages []expopush.Message) ([]expopush.Ticket, error) {
	m.batches = append(m.batches, messages)
	if m.sendFunc != nil {
		return m.sendFunc(messages)
	}
	tickets := make([]expopush.Ticket, len(messages))
	for i := range tickets {
		tickets[i] = expopush.Ticket{Status: "ok"}
	}
	return tickets, nil
}
