package service

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"
	"nextlevel_lms/pkg/logger"
	"nextlevel_lms/pkg/monitoring"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultCustomerName = "Cliente"
	defaultReference    = "N/A"
)

type InvoiceService struct {
	InvoiceRepo *repository.InvoiceRepository
}

func NewInvoiceService(invoiceRepo *repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{InvoiceRepo: invoiceRepo}
}

// GenerateInvoice builds a paid invoice from a cart snapshot. It reads no state: the
// number and issue time are supplied by the caller.
//
// Subtotal and total are both the sum of effective prices; the discount, the sum of
// (original price - price), is reported but not subtracted from the total.
func GenerateInvoice(items []model.CartItem, payment model.PaymentInfo, customer model.CustomerInfo, number string, issuedAt time.Time) model.Invoice {
	lines := make([]model.InvoiceItem, 0, len(items))
	subtotal := decimal.Zero
	discount := decimal.Zero

	for _, it := range items {
		price := it.Price()
		original := it.OriginalPrice()

		line := model.InvoiceItem{
			CourseID:      it.Course.ID,
			Title:         it.Course.Title,
			Instructor:    it.Course.Instructor,
			Price:         price,
			OriginalPrice: original,
		}
		if plan, ok := it.Pricing.Plan(); ok {
			line.Plan = &plan
		}
		lines = append(lines, line)

		subtotal = subtotal.Add(price)
		discount = discount.Add(original.Sub(price))
	}

	if payment.Reference == "" {
		payment.Reference = defaultReference
	}
	if payment.Details == nil {
		payment.Details = map[string]string{}
	}
	if customer.Name == "" {
		customer.Name = defaultCustomerName
	}

	return model.Invoice{
		ID:            model.NewID("inv"),
		InvoiceNumber: number,
		Date:          issuedAt,
		Items:         lines,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         subtotal,
		PaymentInfo:   payment,
		CustomerInfo:  customer,
		Status:        model.InvoicePaid,
		CreatedAt:     issuedAt,
	}
}

// Issue numbers, generates and stores an invoice. A failed save is logged; the
// invoice is still returned so the purchase can complete.
func (s *InvoiceService) Issue(items []model.CartItem, payment model.PaymentInfo, customer model.CustomerInfo) model.Invoice {
	now := time.Now()
	invoice := GenerateInvoice(items, payment, customer, s.InvoiceRepo.NextNumber(now.Year()), now)

	if !s.InvoiceRepo.Save(invoice) {
		logger.Log.Warn("Invoice issued but not persisted", zap.String("invoice_id", invoice.ID))
	}
	monitoring.InvoicesIssued.Inc()
	logger.Log.Info("Invoice issued",
		zap.String("invoice_id", invoice.ID),
		zap.String("number", invoice.InvoiceNumber),
		zap.String("total", invoice.Total.StringFixed(2)),
	)
	return invoice
}

func (s *InvoiceService) List() []model.Invoice {
	return s.InvoiceRepo.All()
}

func (s *InvoiceService) Get(id string) (*model.Invoice, error) {
	return s.InvoiceRepo.FindByID(id)
}

func (s *InvoiceService) GetByNumber(number string) (*model.Invoice, error) {
	return s.InvoiceRepo.FindByNumber(number)
}

func (s *InvoiceService) Delete(id string) error {
	if _, err := s.InvoiceRepo.FindByID(id); err != nil {
		return err
	}
	s.InvoiceRepo.Delete(id)
	return nil
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatInvoiceDate renders t the way invoices print it, e.g. "5 de marzo de 2024, 14:05".
func FormatInvoiceDate(t time.Time) string {
	return t.Format("2") + " de " + spanishMonths[t.Month()-1] + " de " + t.Format("2006, 15:04")
}
