package client

import (
	"fmt"
	"strings"
)

// Values accepted by [ListOptions.OrderDir].
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// validateFields checks that every requested field belongs to d and returns
// them comma-joined, in the order given.
func validateFields(d Descriptor, fields []string) (string, error) {
	for _, field := range fields {
		if !d.HasField(field) {
			return "", fmt.Errorf("%w: %s is not an allowed field for %s", ErrInvalidField, field, d.Name)
		}
	}

	return strings.Join(fields, ","), nil
}

func validateOrderBy(d Descriptor, orderBy string) error {
	if !d.HasField(orderBy) {
		return fmt.Errorf("%w: %s is not a valid field to order %s by", ErrInvalidOrderField, orderBy, d.Name)
	}

	return nil
}

// validateOrderDir is case sensitive; the API only understands ASC and DESC.
func validateOrderDir(dir string) error {
	if dir != OrderAsc && dir != OrderDesc {
		return fmt.Errorf("%w: %s is not valid, use %s or %s", ErrInvalidOrderDirection, dir, OrderAsc, OrderDesc)
	}

	return nil
}
