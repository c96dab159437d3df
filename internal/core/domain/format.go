package domain

import (
	"errors"
	"strconv"

	"go.trai.ch/zerr"
)

// Format selects the encoding of the bake file.
type Format string

const (
	// FormatHCL is the block encoding understood by docker buildx bake.
	FormatHCL Format = "hcl"
	// FormatJSON is the structured encoding.
	FormatJSON Format = "json"
)

// ParseFormat validates a user supplied format selector. Only the exact
// values "hcl" and "json" are accepted.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatHCL, FormatJSON:
		return f, nil
	default:
		return "", errors.Join(ErrUnsupportedFormat, zerr.With(zerr.New("expected hcl or json, got "+strconv.Quote(s)), "format", s))
	}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}
