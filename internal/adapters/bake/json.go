// Package bake encodes and decodes docker buildx bake files.
package bake

import (
	"encoding/json"

	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BakeCodec = (*JSONCodec)(nil)

// JSONCodec implements the structured encoding.
type JSONCodec struct{}

// NewJSONCodec creates a new JSONCodec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns domain.FormatJSON.
func (c *JSONCodec) Format() domain.Format {
	return domain.FormatJSON
}

// Encode serializes bake as indented JSON.
func (c *JSONCodec) Encode(bake *domain.BakeFile) ([]byte, error) {
	data, err := json.MarshalIndent(bake, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal bake file")
	}
	return append(data, '\n'), nil
}

// Decode parses a JSON bake file.
func (c *JSONCodec) Decode(data []byte) (*domain.BakeFile, error) {
	bake := domain.NewBakeFile()
	if err := json.Unmarshal(data, bake); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBakeFileParse.Error()), "format", domain.FormatJSON.String())
	}
	return bake, nil
}
