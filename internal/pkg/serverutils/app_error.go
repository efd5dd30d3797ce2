package serverutils

// ErrorKind distinguishes failure classes at the transport boundary.
type ErrorKind string

const (
	KindValidation      ErrorKind = "validation"
	KindNotFound        ErrorKind = "not_found"
	KindConflict        ErrorKind = "conflict"
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindInternal        ErrorKind = "internal"
)

// AppError is the error type services return to controllers. Data carries
// kind-specific context; for conflicts it holds the pre-existing record so
// the caller can reconcile without a second fetch.
type AppError struct {
	Kind    ErrorKind
	Message string
	Data    interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string, existing interface{}) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Data: existing}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}
