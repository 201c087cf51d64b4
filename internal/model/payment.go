package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodPagoMovil     PaymentMethod = "pago-movil"
	MethodVisa          PaymentMethod = "visa"
	MethodPayPal        PaymentMethod = "paypal"
	MethodTransferencia PaymentMethod = "transferencia"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodPagoMovil, MethodVisa, MethodPayPal, MethodTransferencia:
		return true
	}
	return false
}

const PaymentSucceeded = "exitoso"

// Payment is an entry of the append-only payment log. JSON names match the
// legacy historialPagos records so those decode unchanged.
type Payment struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId,omitempty"`
	Amount        decimal.Decimal `json:"monto"`
	Method        PaymentMethod   `json:"metodoPago"`
	Date          time.Time       `json:"fecha"`
	Status        string          `json:"estado"`
	InvoiceID     string          `json:"invoiceId,omitempty"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	CourseIDs     []string        `json:"courseIds,omitempty"`
}

type PaymentInput struct {
	UserID        string
	Amount        decimal.Decimal
	Method        PaymentMethod
	Status        string
	InvoiceID     string
	InvoiceNumber string
	CourseIDs     []string
}

type MethodCounts struct {
	PagoMovil     int `json:"pagoMovil"`
	Visa          int `json:"visa"`
	Transferencia int `json:"transferencia"`
	PayPal        int `json:"paypal"`
}

type PaymentStatistics struct {
	TotalPayments  int             `json:"totalPagos"`
	TotalAmount    decimal.Decimal `json:"montoTotal"`
	AveragePayment decimal.Decimal `json:"promedioCompra"`
	Methods        MethodCounts    `json:"metodosUsados"`
}
