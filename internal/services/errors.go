package services

import (
	"fmt"
	"log"
)

// NotFoundError signals a query that expects at least one logical result
// matched no rows. Handlers map it to 404 with the detail string intact.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

// ValidationError signals malformed caller input, such as a status filter
// outside the closed enumeration. Handlers map it to 400.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// UnauthorizedError signals failed admin credentials. Handlers map it to 401.
type UnauthorizedError struct {
	Detail string
}

func (e *UnauthorizedError) Error() string {
	return e.Detail
}

// InternalError wraps an unexpected persistence failure. The cause stays
// attached for logs; callers only ever see the generic message.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return "server error"
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func notFoundf(format string, args ...interface{}) error {
	return &NotFoundError{Detail: fmt.Sprintf(format, args...)}
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

func internal(op string, err error) error {
	log.Printf("ERROR %s: %v", op, err)
	return &InternalError{Err: err}
}
