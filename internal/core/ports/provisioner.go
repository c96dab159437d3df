package ports

import "go.trai.ch/bakehouse/internal/core/domain"

// DockerfileProvisioner renders the body of a build-instruction file.
//
//go:generate go run go.uber.org/mock/mockgen -source=provisioner.go -destination=mocks/mock_provisioner.go -package=mocks
type DockerfileProvisioner interface {
	// Generate returns the build-instruction text for the requested package.
	Generate(req domain.ProvisionRequest) (string, error)
}
