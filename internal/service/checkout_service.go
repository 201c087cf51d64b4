package service

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"
	"nextlevel_lms/internal/util"
	"nextlevel_lms/pkg/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CheckoutRequest pays either the whole cart or, when CourseID is set, a single course.
type CheckoutRequest struct {
	Method   model.PaymentMethod `json:"method"`
	Details  map[string]string   `json:"details"`
	CourseID string              `json:"courseId,omitempty"`
	PlanID   string              `json:"planId,omitempty"`
}

type CheckoutResult struct {
	Invoice     model.Invoice      `json:"invoice"`
	Payment     *model.Payment     `json:"payment"`
	Enrollments []model.Enrollment `json:"enrollments"`
}

type CheckoutService struct {
	Auth        *AuthService
	Cart        *CartService
	Invoices    *InvoiceService
	Enrollments *EnrollmentService
	PaymentRepo *repository.PaymentRepository

	validate *validator.Validate
}

func NewCheckoutService(
	auth *AuthService,
	cart *CartService,
	invoices *InvoiceService,
	enrollments *EnrollmentService,
	paymentRepo *repository.PaymentRepository,
) *CheckoutService {
	return &CheckoutService{
		Auth:        auth,
		Cart:        cart,
		Invoices:    invoices,
		Enrollments: enrollments,
		PaymentRepo: paymentRepo,
		validate:    newFormValidator(),
	}
}

// Checkout validates the payment form, issues the invoice, records the payment and
// enrolls the buyer in every purchased course. A cart purchase empties the cart.
func (s *CheckoutService) Checkout(req CheckoutRequest) (*CheckoutResult, error) {
	user, err := s.Auth.RequireUser()
	if err != nil {
		return nil, err
	}

	form, err := s.ValidatePaymentForm(req.Method, req.Details)
	if err != nil {
		return nil, err
	}

	cartPurchase := req.CourseID == ""
	var items []model.CartItem
	if cartPurchase {
		items = s.Cart.CartRepo.Items()
		if len(items) == 0 {
			return nil, util.ErrEmptyCart
		}
	} else {
		course, pricing, err := s.Cart.Resolve(req.CourseID, req.PlanID)
		if err != nil {
			return nil, err
		}
		items = []model.CartItem{{Course: course, Pricing: pricing}}
	}

	invoice := s.Invoices.Issue(items, model.PaymentInfo{
		Method:    form.Method,
		Details:   form.Stored(),
		Reference: form.Reference(),
	}, form.Customer())

	courseIDs := make([]string, 0, len(items))
	for _, it := range items {
		courseIDs = append(courseIDs, it.Course.ID)
	}
	payment := s.PaymentRepo.Create(model.PaymentInput{
		UserID:        user.ID,
		Amount:        invoice.Total,
		Method:        form.Method,
		Status:        model.PaymentSucceeded,
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		CourseIDs:     courseIDs,
	})

	enrollments := make([]model.Enrollment, 0, len(items))
	for _, it := range items {
		e, err := s.Enrollments.EnrollUser(user.ID, it.Course.ID, it.Course.Title, it.Course.Category)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, *e)
	}

	if cartPurchase {
		s.Cart.Clear()
	}

	logger.Log.Info("Checkout completed",
		zap.String("user_id", user.ID),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("method", string(form.Method)),
	)

	return &CheckoutResult{Invoice: invoice, Payment: payment, Enrollments: enrollments}, nil
}
