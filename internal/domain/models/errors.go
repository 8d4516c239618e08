// internal/domain/models/errors.go
package models

import "github.com/cockroachdb/errors"

// ErrInvalidArgument marks lookups outside the closed type/function
// vocabularies. Callers check it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgumentf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}
