package imaging

// ValidationError reports a submission the client can fix. Its message
// is safe to return to the caller verbatim; the wrapped cause, if any,
// is for logs only.
type ValidationError struct {
	msg   string
	cause error
}

func validationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Unwrap() error { return e.cause }
