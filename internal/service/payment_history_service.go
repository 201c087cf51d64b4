package service

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"

	"github.com/shopspring/decimal"
)

// PaymentHistoryService reads the payment log as a stack: Last is the top.
type PaymentHistoryService struct {
	PaymentRepo *repository.PaymentRepository
}

func NewPaymentHistoryService(paymentRepo *repository.PaymentRepository) *PaymentHistoryService {
	return &PaymentHistoryService{PaymentRepo: paymentRepo}
}

func (s *PaymentHistoryService) History() []model.Payment {
	return s.PaymentRepo.All()
}

func (s *PaymentHistoryService) Last() (*model.Payment, bool) {
	return s.PaymentRepo.Last()
}

func (s *PaymentHistoryService) ByMethod(method model.PaymentMethod) []model.Payment {
	return s.PaymentRepo.ByMethod(method)
}

func (s *PaymentHistoryService) Clear() {
	s.PaymentRepo.Clear()
}

func (s *PaymentHistoryService) Statistics() model.PaymentStatistics {
	return PaymentStatisticsOf(s.PaymentRepo.All())
}

func PaymentStatisticsOf(payments []model.Payment) model.PaymentStatistics {
	stats := model.PaymentStatistics{
		TotalPayments:  len(payments),
		TotalAmount:    decimal.Zero,
		AveragePayment: decimal.Zero,
	}
	for _, p := range payments {
		stats.TotalAmount = stats.TotalAmount.Add(p.Amount)
		switch p.Method {
		case model.MethodPagoMovil:
			stats.Methods.PagoMovil++
		case model.MethodVisa:
			stats.Methods.Visa++
		case model.MethodTransferencia:
			stats.Methods.Transferencia++
		case model.MethodPayPal:
			stats.Methods.PayPal++
		}
	}
	if len(payments) > 0 {
		stats.AveragePayment = stats.TotalAmount.Div(decimal.NewFromInt(int64(len(payments)))).Round(2)
	}
	return stats
}
