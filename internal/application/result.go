package application

// ResultType classifies every use-case outcome surfaced to callers.
type ResultType int

const (
	// ResultSuccess means the use case completed.
	ResultSuccess ResultType = iota
	// ResultValidationError means the caller-supplied data was
	// unacceptable or conflicted with an existing record. Recoverable
	// by correcting input.
	ResultValidationError
	// ResultInternalError means an invariant the caller cannot
	// influence was violated. No diagnostic detail leaves the server.
	ResultInternalError
)

func (r ResultType) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultValidationError:
		return "validation_error"
	case ResultInternalError:
		return "internal_error"
	}
	return "unknown"
}

// RegisterValidation reports the validity of each registration field
// individually so a caller can highlight every offending field at once.
type RegisterValidation struct {
	UserNameOK    bool
	SignInIDOK    bool
	RawPasswordOK bool
}
