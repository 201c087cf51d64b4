package util

import "errors"

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindAuth       ErrorKind = "auth"
	KindNotFound   ErrorKind = "not_found"
)

// AppError carries a user-facing message. Fields holds per-field messages for form validation.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

func newError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

var (
	ErrMissingFields      = newError(KindValidation, "Todos los campos son obligatorios")
	ErrWeakPassword       = newError(KindValidation, "La contraseña debe tener al menos 6 caracteres")
	ErrPasswordMismatch   = newError(KindValidation, "Las contraseñas no coinciden")
	ErrDuplicateUser      = newError(KindConflict, "Ya existe una cuenta con esta cédula")
	ErrMissingCredentials = newError(KindAuth, "Cédula y contraseña son obligatorios")
	ErrInvalidCredentials = newError(KindAuth, "Cédula o contraseña incorrectos")
	ErrNotAuthenticated   = newError(KindAuth, "Debes iniciar sesión para continuar")

	ErrDuplicateReview = newError(KindConflict, "Ya has dejado una reseña para este curso")
	ErrInvalidRating   = newError(KindValidation, "Por favor selecciona una calificación")
	ErrCommentTooShort = newError(KindValidation, "El comentario debe tener al menos 10 caracteres")
	ErrEmptyComment    = newError(KindValidation, "El comentario no puede estar vacío")

	ErrUserNotFound       = newError(KindNotFound, "Usuario no encontrado")
	ErrEnrollmentNotFound = newError(KindNotFound, "Inscripción no encontrada")
	ErrReviewNotFound     = newError(KindNotFound, "Reseña no encontrada")
	ErrInvoiceNotFound    = newError(KindNotFound, "Factura no encontrada")
	ErrCourseNotFound     = newError(KindNotFound, "Curso no encontrado")
	ErrPlanNotFound       = newError(KindNotFound, "Plan no encontrado")

	ErrEmptyCart            = newError(KindValidation, "El carrito está vacío")
	ErrInvalidPaymentMethod = newError(KindValidation, "Método de pago no válido")
	ErrInvalidQuiz          = newError(KindValidation, "El cuestionario no tiene preguntas")
)

// NewValidationError reports form errors keyed by field name.
func NewValidationError(message string, fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

// KindOf returns the kind of the first AppError in err's chain, or "" when there is none.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
