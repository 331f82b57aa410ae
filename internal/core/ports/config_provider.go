package ports

import "github.com/AntonioJCosta/crush/internal/core/domain/config"

// ConfigProvider loads the interpreter configuration.
type ConfigProvider interface {
	Load() (config.Config, error)
}
