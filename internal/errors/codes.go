package errors

// Code categorizes an error
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument"
	CodeNotFound        Code = "not_found"
	CodeAlreadyExists   Code = "already_exists"
	CodeInternal        Code = "internal"
	CodeValidation      Code = "validation"

	// CodeIneligible is an action that failed its eligibility check
	CodeIneligible Code = "ineligible"

	// CodeCancelled is an action the caller dismissed before it resolved
	CodeCancelled Code = "cancelled"

	// CodeFailedPrecondition is an operation invalid in the current state,
	// such as confirming a use twice
	CodeFailedPrecondition Code = "failed_precondition"
)

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Ineligible(message string) *Error {
	return New(CodeIneligible, message)
}

func Ineligiblef(format string, args ...any) *Error {
	return Newf(CodeIneligible, format, args...)
}

func Cancelled(message string) *Error {
	return New(CodeCancelled, message)
}

func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

func IsNotFound(err error) bool           { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool    { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool      { return Is(err, CodeAlreadyExists) }
func IsInternal(err error) bool           { return Is(err, CodeInternal) }
func IsValidation(err error) bool         { return Is(err, CodeValidation) }
func IsIneligible(err error) bool         { return Is(err, CodeIneligible) }
func IsCancelled(err error) bool          { return Is(err, CodeCancelled) }
func IsFailedPrecondition(err error) bool { return Is(err, CodeFailedPrecondition) }
