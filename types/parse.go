package types

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrMalformedNumericField = errors.New("malformed numeric field")

// ParsePolicy decides what happens to numeric strings that fail to parse.
type ParsePolicy int

const (
	// Lenient substitutes zero for a malformed value and carries on.
	Lenient ParsePolicy = iota
	// Strict rejects the value.
	Strict
)

func (p ParsePolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

// PolicyFor maps a strict toggle to a ParsePolicy.
func PolicyFor(strict bool) ParsePolicy {
	if strict {
		return Strict
	}
	return Lenient
}

// Decimal parses s under the policy.
func (p ParsePolicy) Decimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err == nil {
		return d, nil
	}
	if p == Strict {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrMalformedNumericField)
	}
	return decimal.Zero, nil
}
