package ports

import "go.trai.ch/bakehouse/internal/core/domain"

// Hasher defines the interface for computing provisioning hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash hashes every input that influences the generated file.
	ComputeInputHash(req domain.ProvisionRequest) string

	// ComputeContentHash hashes file contents.
	ComputeContentHash(data []byte) string
}
