package ports

import "go.trai.ch/bakehouse/internal/core/domain"

// BakeCodec encodes and decodes a bake file in a single format.
//
//go:generate go run go.uber.org/mock/mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type BakeCodec interface {
	// Format returns the encoding handled by the codec.
	Format() domain.Format

	// Encode serializes the bake file.
	Encode(bake *domain.BakeFile) ([]byte, error)

	// Decode parses a previously encoded bake file.
	Decode(data []byte) (*domain.BakeFile, error)
}
