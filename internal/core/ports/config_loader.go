package ports

import "go.trai.ch/bakehouse/internal/core/domain"

// ConfigLoader defines the interface for loading the bakehouse configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration of the workspace at root.
	// A missing configuration file yields the defaults.
	Load(root string) (domain.Config, error)
}
