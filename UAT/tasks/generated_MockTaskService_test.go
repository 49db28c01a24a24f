// Code generated manually for impmock demonstration. DO NOT EDIT.

package tasks_test

import (
	"context"

	"github.com/toejough/impmock"
	"github.com/toejough/impmock/UAT/tasks"
	"github.com/toejough/impmock/future"
)

// Method names recorded by the TaskService double.
const (
	methodCompleteTask = "CompleteTask"
	methodCreateTask   = "CreateTask"
	methodGetTasks     = "GetTasks"
	methodWatchTasks   = "WatchTasks"
)

// TaskServiceMock is the mock implementation returned by MockTaskService.
type TaskServiceMock struct {
	Engine       *impmock.Engine
	CompleteTask *impmock.Method[struct{}]
	CreateTask   *impmock.Method[tasks.Task]
	GetTasks     *impmock.Method[[]tasks.Task]
	WatchTasks   *impmock.Method[[]tasks.Task]
}

// MockTaskService creates a new mock for the TaskService interface.
func MockTaskService(opts ...impmock.Option) *TaskServiceMock {
	engine := impmock.NewEngine(append([]impmock.Option{impmock.WithName("TaskService")}, opts...)...)

	return &TaskServiceMock{
		Engine:       engine,
		CompleteTask: impmock.NewMethod[struct{}](engine, methodCompleteTask),
		CreateTask:   impmock.NewMethod[tasks.Task](engine, methodCreateTask),
		GetTasks:     impmock.NewMethod[[]tasks.Task](engine, methodGetTasks),
		WatchTasks:   impmock.NewMethod[[]tasks.Task](engine, methodWatchTasks),
	}
}

// Interface returns the mock as a TaskService interface implementation.
func (m *TaskServiceMock) Interface() tasks.TaskService {
	return &taskServiceImpl{mock: m}
}

// taskServiceImpl implements the TaskService interface by forwarding to the mock.
type taskServiceImpl struct {
	mock *TaskServiceMock
}

// CompleteTask implements TaskService.CompleteTask.
func (impl *taskServiceImpl) CompleteTask(_ context.Context, id string) error {
	_, err := impl.mock.CompleteTask.Call(impmock.Arg("id", id))

	return err
}

// CreateTask implements TaskService.CreateTask.
func (impl *taskServiceImpl) CreateTask(_ context.Context, requestID, title string) (tasks.Task, error) {
	return impl.mock.CreateTask.Call(impmock.Arg("requestID", requestID), impmock.Arg("title", title))
}

// GetTasks implements TaskService.GetTasks.
func (impl *taskServiceImpl) GetTasks(_ context.Context) ([]tasks.Task, error) {
	return impl.mock.GetTasks.Call()
}

// WatchTasks implements TaskService.WatchTasks. The call is recorded and
// answered immediately; the outcome is then wrapped in a resolved future.
func (impl *taskServiceImpl) WatchTasks(_ context.Context) *future.Future[[]tasks.Task] {
	snapshot, err := impl.mock.WatchTasks.Call()

	return future.Resolved(snapshot, err)
}
