package customer

import (
	"fmt"
	"strings"

	"fastfood/internal/pkg/errs"
)

// CPF is a value object for the Brazilian national taxpayer id.
// It accepts the masked form "000.000.000-00" or eleven bare digits and
// stores the digits only. The two check digits are verified on construction,
// so a constructed CPF is always arithmetically valid.
//
// The zero value of CPF is invalid and must be created via NewCPF.
type CPF struct {
	digits string
}

// NewCPF parses and validates a CPF string.
// Returns an error for wrong length, non-digit characters, the degenerate
// all-same-digit numbers, or a check digit mismatch.
func NewCPF(raw string) (CPF, error) {
	digits := strings.NewReplacer(".", "", "-", "", " ", "").Replace(raw)

	if len(digits) != 11 {
		return CPF{}, errs.NewValueIsInvalidErrorWithCause(
			"cpf",
			fmt.Errorf("%q does not have 11 digits", raw),
		)
	}

	allEqual := true
	for i, r := range digits {
		if r < '0' || r > '9' {
			return CPF{}, errs.NewValueIsInvalidErrorWithCause(
				"cpf",
				fmt.Errorf("%q contains non-digit characters", raw),
			)
		}
		if i > 0 && digits[i] != digits[0] {
			allEqual = false
		}
	}
	if allEqual {
		return CPF{}, errs.NewValueIsInvalidErrorWithCause(
			"cpf",
			fmt.Errorf("%q is a degenerate repeated-digit number", raw),
		)
	}

	if checkDigit(digits, 9) != int(digits[9]-'0') ||
		checkDigit(digits, 10) != int(digits[10]-'0') {
		return CPF{}, errs.NewValueIsInvalidErrorWithCause(
			"cpf",
			fmt.Errorf("%q has an invalid check digit", raw),
		)
	}

	return CPF{digits: digits}, nil
}

// checkDigit computes the verification digit over the first n digits using
// the standard descending-weight modulus 11 scheme.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

// Validate checks the CPF was created via NewCPF.
func (c CPF) Validate() error {
	if c.digits == "" {
		return errs.NewValueIsRequiredError("CPF must be created via NewCPF")
	}
	return nil
}

// String returns the eleven digits without mask.
// This method implements the fmt.Stringer interface.
func (c CPF) String() string {
	return c.digits
}

// IsEqual compares two CPFs by their digits.
func (c CPF) IsEqual(other CPF) bool {
	return c.digits == other.digits
}
