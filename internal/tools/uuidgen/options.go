package uuidgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Version selects the UUID layout.
type Version int

const (
	V4 Version = iota
	V7
)

var versions = []Version{V4, V7}

func (v Version) String() string {
	switch v {
	case V7:
		return "Version 7"
	default:
		return "Version 4"
	}
}

// ParseVersion maps the config's numeric version to a Version.
func ParseVersion(n int) (Version, error) {
	switch n {
	case 4:
		return V4, nil
	case 7:
		return V7, nil
	}
	return V4, fmt.Errorf("unsupported uuid version %d", n)
}

func (v Version) generate() string {
	if v == V7 {
		if id, err := uuid.NewV7(); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}

// Quotes controls how each generated value is wrapped.
type Quotes int

const (
	NoQuotes Quotes = iota
	SingleQuotes
	DoubleQuotes
)

var quoteStyles = []Quotes{NoQuotes, SingleQuotes, DoubleQuotes}

func (q Quotes) String() string {
	switch q {
	case SingleQuotes:
		return "Single Quotes"
	case DoubleQuotes:
		return "Double Quotes"
	default:
		return "No Quotes"
	}
}

func (q Quotes) wrap(s string) string {
	switch q {
	case SingleQuotes:
		return "'" + s + "'"
	case DoubleQuotes:
		return `"` + s + `"`
	default:
		return s
	}
}

// cycle returns the element after (or before, when step is -1) current.
func cycle[T comparable](all []T, current T, step int) T {
	for i, v := range all {
		if v == current {
			return all[(i+step+len(all))%len(all)]
		}
	}
	return all[0]
}
