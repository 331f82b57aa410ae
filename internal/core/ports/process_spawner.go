package ports

import "github.com/AntonioJCosta/crush/internal/core/domain/process"

// ProcessSpawner defines an interface for running an external program and waiting for it to exit.
type ProcessSpawner interface {
	// SpawnAndWait blocks until the child exits. Programs that never started are
	// reported as a *process.SpawnError.
	SpawnAndWait(req process.Request) (process.Status, error)
}
