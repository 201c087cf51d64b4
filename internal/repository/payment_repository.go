package repository

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/store"
	"time"
)

// PaymentRepository is an append-only log; the last payment is the top of the stack.
type PaymentRepository struct {
	Store *store.Store
}

func NewPaymentRepository(s *store.Store) *PaymentRepository {
	return &PaymentRepository{Store: s}
}

func (r *PaymentRepository) Create(input model.PaymentInput) *model.Payment {
	status := input.Status
	if status == "" {
		status = model.PaymentSucceeded
	}
	payment := model.Payment{
		ID:            model.NewIDWithSeparator("PAG", "-"),
		UserID:        input.UserID,
		Amount:        input.Amount,
		Method:        input.Method,
		Date:          time.Now(),
		Status:        status,
		InvoiceID:     input.InvoiceID,
		InvoiceNumber: input.InvoiceNumber,
		CourseIDs:     input.CourseIDs,
	}

	_ = r.Store.Update(func(data *model.Dataset) error {
		data.Payments = append(data.Payments, payment)
		return nil
	})
	return &payment
}

func (r *PaymentRepository) FindByUser(userID string) []model.Payment {
	payments := []model.Payment{}
	for _, p := range r.Store.Snapshot().Payments {
		if p.UserID == userID {
			payments = append(payments, p)
		}
	}
	return payments
}

// All returns every payment in the order they were made.
func (r *PaymentRepository) All() []model.Payment {
	return r.Store.Snapshot().Payments
}

func (r *PaymentRepository) Last() (*model.Payment, bool) {
	var last *model.Payment
	r.Store.Read(func(data *model.Dataset) {
		if n := len(data.Payments); n > 0 {
			p := data.Payments[n-1]
			last = &p
		}
	})
	return last, last != nil
}

func (r *PaymentRepository) ByMethod(method model.PaymentMethod) []model.Payment {
	payments := []model.Payment{}
	for _, p := range r.Store.Snapshot().Payments {
		if p.Method == method {
			payments = append(payments, p)
		}
	}
	return payments
}

// Clear drops the whole payment log.
func (r *PaymentRepository) Clear() {
	_ = r.Store.Update(func(data *model.Dataset) error {
		data.Payments = []model.Payment{}
		return nil
	})
}
