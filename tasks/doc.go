// Package tasks provides typed access to the task queue endpoints:
// dispatching work, listing with filters, lifecycle transitions
// (complete, fail, assign, cancel), and queue statistics.
package tasks
