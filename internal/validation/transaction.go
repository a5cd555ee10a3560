package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/bills/internal/constants"
	"github.com/shopspring/decimal"
)

// ValidateName validates a transaction or account name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("name can't be empty")
	}

	if len([]rune(name)) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ParseSum parses a positive amount such as "150", "150.5" or "150,50".
func ParseSum(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("sum is required")
	}

	sum, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid sum: %s", s)
	}

	if !sum.IsPositive() {
		return decimal.Zero, fmt.Errorf("sum must be positive")
	}

	if sum.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("sum can have at most 2 decimal places")
	}

	return sum, nil
}

func ValidateSum(s string) error {
	_, err := ParseSum(s)
	return err
}

func ValidateType(t string) error {
	switch t {
	case constants.TypeIncome, constants.TypeExpense:
		return nil
	default:
		return fmt.Errorf("invalid transaction type '%s' (must be %s or %s)", t, constants.TypeIncome, constants.TypeExpense)
	}
}

// ParseID parses a positive record ID.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID: %s", s)
	}
	return id, nil
}
