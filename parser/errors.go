package parser

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIdentifier  = errors.New("not a valid identifier")
	ErrUnknownType        = errors.New("not a valid arg type")
	ErrMalformedArg       = errors.New("not a valid arg")
	ErrMalformedPredicate = errors.New("not a valid predicate")
)

// ParsingError reports a token rejected by the grammar. Err is one of the
// sentinel errors above.
type ParsingError struct {
	Token string
	Err   error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("'%s' is %v", e.Token, e.Err)
}

func (e *ParsingError) Unwrap() error { return e.Err }

func parsingError(token string, err error) error {
	return &ParsingError{Token: token, Err: err}
}
