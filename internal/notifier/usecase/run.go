package usecase

import (
	"context"
	"fmt"
	"time"

	"todo-backend/internal/notifier"
	repo "todo-backend/internal/todo/repository"
	"todo-backend/pkg/expopush"
)

// Run executes one notifier cycle.
//
// Failure semantics: a query error aborts the run before anything is sent, so
// the todos stay eligible for the next tick. A send error also aborts without
// marking. Once the batch was accepted, todos are marked notified regardless
// of per-ticket status — delivery is fire-and-forget; a marking failure after
// a successful send means the next manual retry may push duplicates.
func (uc *implUseCase) Run(ctx context.Context) (notifier.RunOutput, error) {
	due, err := uc.repo.ListDueTodos(ctx, repo.ListDueTodosOptions{Before: time.Now()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Run ListDueTodos: %v", err)
		return notifier.RunOutput{}, fmt.Errorf("query due todos: %w", err)
	}
	if len(due) == 0 {
		return notifier.RunOutput{Sent: 0}, nil
	}

	messages, ids := buildBatch(due)
	if len(messages) == 0 {
		return notifier.RunOutput{Sent: 0}, nil
	}

	tickets, err := uc.push.SendBatch(ctx, messages)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Run SendBatch: %v", err)
		return notifier.RunOutput{}, fmt.Errorf("send push batch: %w", err)
	}
	// Tickets come back positionally, but the endpoint is not trusted to
	// return exactly one per message.
	for i, ticket := range tickets {
		if ticket.Status != "error" {
			continue
		}
		if i < len(messages) {
			uc.l.Warnf(ctx, "uc.Run push rejected for %s: %s", messages[i].To, ticket.Message)
		} else {
			uc.l.Warnf(ctx, "uc.Run push rejected (unmatched ticket %d): %s", i, ticket.Message)
		}
	}

	if err := uc.repo.MarkNotified(ctx, ids); err != nil {
		uc.l.Errorf(ctx, "uc.Run MarkNotified: %v", err)
		return notifier.RunOutput{}, fmt.Errorf("mark notified: %w", err)
	}

	uc.l.Infof(ctx, "notifier run: %d notifications for %d todos", len(messages), len(ids))
	return notifier.RunOutput{Sent: len(messages)}, nil
}

// buildBatch flattens due todos into one message per (todo, device token) and
// collects the deduplicated todo ids to mark.
func buildBatch(due []repo.DueTodo) ([]expopush.Message, []string) {
	var (
		messages []expopush.Message
		ids      []string
		seen     = make(map[string]bool, len(due))
	)
	for _, item := range due {
		for _, token := range item.Tokens {
			if token == "" {
				continue
			}
			messages = append(messages, expopush.Message{
				To:    token,
				Sound: PushSound,
				Title: PushTitle,
				Body:  fmt.Sprintf(PushBodyTmpl, item.Title),
				Data:  map[string]any{"todoId": item.ID},
			})
		}
		if !seen[item.ID] {
			seen[item.ID] = true
			ids = append(ids, item.ID)
		}
	}
	return messages, ids
}
