package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// Keys under which the persistence medium holds each value.
const (
	KeyData           = "lms_data"
	KeySession        = "current_user"
	KeyCart           = "nextlevel_cart"
	KeyInvoices       = "nextlevel_invoices"
	KeyInvoiceCounter = "nextlevel_invoice_counter"

	// Legacy keys are read once at startup and folded into lms_data.
	KeyLegacyReviews  = "course_reviews"
	KeyLegacyPayments = "historialPagos"
)

const (
	PassingScore    = 70
	MinPasswordLen  = 6
	MinCommentLen   = 10
	DefaultCategory = "otros"
)
