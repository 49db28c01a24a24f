// Package tasks is a small task-planning service used to demonstrate impmock
// against a realistic collaborator.
package tasks

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/toejough/impmock/future"
)

// Task is an item held by the remote task service.
type Task struct {
	ID    string
	Title string
	Done  bool
}

// TaskService is the remote collaborator the Planner depends on.
type TaskService interface {
	CreateTask(ctx context.Context, requestID, title string) (Task, error)
	GetTasks(ctx context.Context) ([]Task, error)
	CompleteTask(ctx context.Context, id string) error
	WatchTasks(ctx context.Context) *future.Future[[]Task]
}

// Planner is the business logic under test.
type Planner struct {
	svc   TaskService
	newID func() string
}

// NewPlanner creates a Planner that tags every create request with a fresh UUID.
func NewPlanner(svc TaskService) *Planner {
	return &Planner{svc: svc, newID: uuid.NewString}
}

// AddAll creates one task per title, in order, stopping at the first failure.
func (p *Planner) AddAll(ctx context.Context, titles []string) ([]Task, error) {
	created := make([]Task, 0, len(titles))

	for _, title := range titles {
		task, err := p.svc.CreateTask(ctx, p.newID(), title)
		if err != nil {
			return created, fmt.Errorf("creating task %q: %w", title, err)
		}

		created = append(created, task)
	}

	return created, nil
}

// FinishAll completes every outstanding task and returns how many it completed.
func (p *Planner) FinishAll(ctx context.Context) (int, error) {
	outstanding, err := p.Outstanding(ctx)
	if err != nil {
		return 0, err
	}

	for i, task := range outstanding {
		err := p.svc.CompleteTask(ctx, task.ID)
		if err != nil {
			return i, fmt.Errorf("completing task %s: %w", task.ID, err)
		}
	}

	return len(outstanding), nil
}

// Outstanding lists the tasks not yet done.
func (p *Planner) Outstanding(ctx context.Context) ([]Task, error) {
	all, err := p.svc.GetTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	var open []Task

	for _, task := range all {
		if !task.Done {
			open = append(open, task)
		}
	}

	return open, nil
}

// Refresh waits for the next task snapshot pushed by the service.
func (p *Planner) Refresh(ctx context.Context) ([]Task, error) {
	snapshot, err := p.svc.WatchTasks(ctx).Await(ctx)
	if err != nil {
		return nil, fmt.Errorf("watching tasks: %w", err)
	}

	return snapshot, nil
}
