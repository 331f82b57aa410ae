package testutil

import (
	"errors"

	"github.com/AntonioJCosta/crush/internal/core/domain/process"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// MockProcessSpawner is a mock implementation of ports.ProcessSpawner.
// Every request is recorded in Requests.
type MockProcessSpawner struct {
	SpawnAndWaitFunc func(req process.Request) (process.Status, error)
	Requests         []process.Request
}

// SpawnAndWait records req and calls the mock SpawnAndWaitFunc.
func (m *MockProcessSpawner) SpawnAndWait(req process.Request) (process.Status, error) {
	m.Requests = append(m.Requests, req)
	if m.SpawnAndWaitFunc != nil {
		return m.SpawnAndWaitFunc(req)
	}
	return process.StatusNotFound, errors.New("MockProcessSpawner.SpawnAndWaitFunc not implemented")
}

// Names returns the names of all spawned requests in order.
func (m *MockProcessSpawner) Names() []string {
	names := make([]string, 0, len(m.Requests))
	for _, r := range m.Requests {
		names = append(names, r.Name)
	}
	return names
}

// ExitStatuses returns a SpawnAndWaitFunc that looks statuses up by program
// name. Unknown programs succeed.
func ExitStatuses(statuses map[string]process.Status) func(req process.Request) (process.Status, error) {
	return func(req process.Request) (process.Status, error) {
		return statuses[req.Name], nil
	}
}

var _ ports.ProcessSpawner = (*MockProcessSpawner)(nil)
