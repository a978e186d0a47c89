package reducers

import "errors"

// Every reducer failure is one of three kinds. Handlers map the kind
// to an HTTP status; the message is what the caller sees.

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindValidation
	KindConflict
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func notFound(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }
func validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }
func conflict(msg string) error   { return &Error{Kind: KindConflict, Message: msg} }

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsNotFound(err error) bool   { return isKind(err, KindNotFound) }
func IsValidation(err error) bool { return isKind(err, KindValidation) }
func IsConflict(err error) bool   { return isKind(err, KindConflict) }
