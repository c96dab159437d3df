package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for provisioning inputs and files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeContentHash computes the XXHash of data.
func (h *Hasher) ComputeContentHash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// ComputeInputHash computes a single hash representing every input that
// influences a generated build-instruction file. The absolute package path is
// left out so moving the workspace does not invalidate it.
func (h *Hasher) ComputeInputHash(req domain.ProvisionRequest) string {
	hasher := xxhash.New()

	for _, field := range []string{
		req.Target,
		req.ManifestName,
		req.Context,
		req.Dockerfile,
		req.NodeVersion,
		req.PackageManager,
		req.Template,
		fmt.Sprint(req.Root),
	} {
		_, _ = hasher.WriteString(field)
		_, _ = hasher.Write([]byte{0}) // Separator
	}

	for _, dep := range req.Dependencies {
		_, _ = hasher.WriteString(dep)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	if req.Template != "" {
		// Template edits also make the output stale.
		if sum, err := h.ComputeFileHash(req.Template); err == nil {
			_, _ = hasher.WriteString(sum)
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
