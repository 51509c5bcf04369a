package tasks

import (
	"context"
	"net/http"
	"strconv"

	"github.com/blackroad/blackroad-go/core"
	"github.com/blackroad/blackroad-go/logging"
)

// Options configures the tasks facade.
type Options struct {
	// Logger receives domain events for mutating operations. Defaults
	// to a no-op logger.
	Logger logging.Logger
}

// API exposes the task queue over the shared request pipeline.
type API struct {
	caller core.Caller
	logger logging.Logger
}

// New creates a tasks API. The caller is typically the client's
// transport pipeline; tests substitute a stub.
func New(caller core.Caller, optFns ...func(o *Options)) *API {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &API{caller: caller, logger: opts.Logger}
}

// Dispatch enqueues a new task. Priority defaults to "medium"; the
// caller's options struct is never modified.
func (t *API) Dispatch(ctx context.Context, opts *core.DispatchTaskOptions) (*core.Task, error) {
	var o core.DispatchTaskOptions
	if opts != nil {
		o = *opts
	}
	if o.Priority == "" {
		o.Priority = "medium"
	}

	t.logger.Debug("Dispatching task", "title", o.Title, "priority", o.Priority)

	var task core.Task
	err := t.caller.Call(ctx, core.Request{
		Method: http.MethodPost,
		Path:   "/tasks",
		Body:   o,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Get fetches a single task by id.
func (t *API) Get(ctx context.Context, taskID string) (*core.Task, error) {
	var task core.Task
	err := t.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/tasks/" + taskID,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns tasks matching the given filters. A nil opts lists
// everything.
func (t *API) List(ctx context.Context, opts *core.TaskListOptions) ([]core.Task, error) {
	query := map[string]string{}
	if opts != nil {
		if opts.Status != "" {
			query["status"] = opts.Status
		}
		if opts.Priority != "" {
			query["priority"] = opts.Priority
		}
		if opts.Division != "" {
			query["division"] = opts.Division
		}
		if opts.Limit > 0 {
			query["limit"] = strconv.Itoa(opts.Limit)
		}
		if opts.Offset > 0 {
			query["offset"] = strconv.Itoa(opts.Offset)
		}
	}

	var envelope struct {
		Tasks []core.Task `json:"tasks"`
	}
	err := t.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/tasks",
		Query:  query,
	}, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Tasks, nil
}

// Complete marks a task as completed, attaching a result when one is
// given.
func (t *API) Complete(ctx context.Context, taskID, result string) (*core.Task, error) {
	body := map[string]any{"status": "completed"}
	if result != "" {
		body["result"] = result
	}
	return t.updateStatus(ctx, taskID, body)
}

// Fail marks a task as failed, attaching the reason when one is given.
func (t *API) Fail(ctx context.Context, taskID, reason string) (*core.Task, error) {
	body := map[string]any{"status": "failed"}
	if reason != "" {
		body["result"] = reason
	}
	return t.updateStatus(ctx, taskID, body)
}

// Assign hands a task to a specific agent and moves it to the assigned
// status.
func (t *API) Assign(ctx context.Context, taskID, agentID string) (*core.Task, error) {
	t.logger.Debug("Assigning task", "task_id", taskID, "agent_id", agentID)

	return t.updateStatus(ctx, taskID, map[string]any{
		"assigned_agent": agentID,
		"status":         "assigned",
	})
}

func (t *API) updateStatus(ctx context.Context, taskID string, body map[string]any) (*core.Task, error) {
	var task core.Task
	err := t.caller.Call(ctx, core.Request{
		Method: http.MethodPut,
		Path:   "/tasks/" + taskID,
		Body:   body,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Cancel removes a task from the queue.
func (t *API) Cancel(ctx context.Context, taskID string) error {
	t.logger.Debug("Cancelling task", "task_id", taskID)

	var envelope struct {
		Cancelled bool `json:"cancelled"`
	}
	return t.caller.Call(ctx, core.Request{
		Method: http.MethodDelete,
		Path:   "/tasks/" + taskID,
	}, &envelope)
}

// Stats returns aggregate counts over the queue.
func (t *API) Stats(ctx context.Context) (*core.Stats, error) {
	var stats core.Stats
	err := t.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/tasks/stats",
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Pending lists tasks still waiting for an agent.
func (t *API) Pending(ctx context.Context) ([]core.Task, error) {
	return t.List(ctx, &core.TaskListOptions{Status: "pending"})
}

// InProgress lists tasks currently being worked.
func (t *API) InProgress(ctx context.Context) ([]core.Task, error) {
	return t.List(ctx, &core.TaskListOptions{Status: "in_progress"})
}

// ByDivision lists the tasks of one division.
func (t *API) ByDivision(ctx context.Context, division string) ([]core.Task, error) {
	return t.List(ctx, &core.TaskListOptions{Division: division})
}

// Urgent lists tasks dispatched at the highest priority.
func (t *API) Urgent(ctx context.Context) ([]core.Task, error) {
	return t.List(ctx, &core.TaskListOptions{Priority: "urgent"})
}
