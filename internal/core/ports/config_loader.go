package ports

import "go.trai.ch/grid/internal/core/domain"

// ScriptLoader defines the interface for loading sheet scripts.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ScriptLoader interface {
	// Load reads and validates the script at path.
	Load(path string) (*domain.Script, error)
}
