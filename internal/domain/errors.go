package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLeagueNotFound   = errors.New("league not found")
	ErrUnknownAllocator = errors.New("unknown allocation strategy")
	ErrInvalidLeagueID  = errors.New("invalid league id")
)

// SchemaError reports a batch whose field names cannot be mapped onto the
// fields a computation needs.
type SchemaError struct {
	Kind   string
	Fields []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("cannot determine %s fields, available fields: [%s]", e.Kind, strings.Join(e.Fields, ", "))
}

// IsSchemaError reports whether err wraps a *SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}
