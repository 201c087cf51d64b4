package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoicePaid      InvoiceStatus = "paid"
	InvoicePending   InvoiceStatus = "pending"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is immutable once issued; it can only be deleted.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          time.Time       `json:"date"`
	Items         []InvoiceItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	PaymentInfo   PaymentInfo     `json:"paymentInfo"`
	CustomerInfo  CustomerInfo    `json:"customerInfo"`
	Status        InvoiceStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// InvoiceItem.Plan is nil when the course's own price was charged.
type InvoiceItem struct {
	CourseID      string          `json:"courseId"`
	Title         string          `json:"title"`
	Instructor    string          `json:"instructor"`
	Plan          *Plan           `json:"plan"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
}

type PaymentInfo struct {
	Method    PaymentMethod     `json:"method"`
	Details   map[string]string `json:"details"`
	Reference string            `json:"reference"`
}

type CustomerInfo struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Identification string `json:"identification"`
}
