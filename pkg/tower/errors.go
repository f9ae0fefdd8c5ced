// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Error constructors and classification helpers
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/foundation/core/errors"
)

func invalidType(op string, got any) error {
	return errors.InvalidType(errors.ModuleTower, op, got)
}

func divisionByZero(op string) error {
	return errors.DivisionByZero(errors.ModuleTower, op)
}

func domainError(op string, x, y Value) error {
	return errors.Domain(errors.ModuleTower, op,
		"negative base with an even root index has no value").
		WithDetail("base", x.String()).
		WithDetail("exponent", y.String())
}

// IsInvalidType reports whether err is an unsupported operand error
func IsInvalidType(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidType)
}

// IsDomain reports whether err is a domain error
func IsDomain(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeDomain)
}

// IsDivisionByZero reports whether err is an exact division by zero
func IsDivisionByZero(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeDivisionByZero)
}
