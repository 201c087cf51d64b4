package service_test

import (
	"nextlevel_lms/internal/catalog"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/testutil"
	"testing"
)

type fixture struct {
	repos       *testutil.Repos
	auth        *service.AuthService
	enrollments *service.EnrollmentService
	reviews     *service.ReviewService
	comments    *service.CommentService
	cart        *service.CartService
	invoices    *service.InvoiceService
	checkout    *service.CheckoutService
	payments    *service.PaymentHistoryService
	stats       *service.StatsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureOn(t, testutil.NewFlakyMedium())
}

func newFixtureOn(t *testing.T, medium *testutil.FlakyMedium) *fixture {
	t.Helper()
	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	repos := testutil.NewReposOn(t, medium)
	auth := service.NewAuthService(repos.Users, repos.Store, service.PlaintextPasswords{})
	auth.Restore()
	enrollments := service.NewEnrollmentService(repos.Enrollments, auth)
	cart := service.NewCartService(repos.Cart, cat)
	invoices := service.NewInvoiceService(repos.Invoices)

	return &fixture{
		repos:       repos,
		auth:        auth,
		enrollments: enrollments,
		reviews:     service.NewReviewService(repos.Reviews, enrollments, auth),
		comments:    service.NewCommentService(repos.Comments, auth),
		cart:        cart,
		invoices:    invoices,
		checkout:    service.NewCheckoutService(auth, cart, invoices, enrollments, repos.Payments),
		payments:    service.NewPaymentHistoryService(repos.Payments),
		stats:       service.NewStatsService(repos.Users, repos.Enrollments, repos.Reviews),
	}
}

// login registers a user with cedula and logs them in.
func (f *fixture) login(t *testing.T, cedula string) *model.PublicUser {
	t.Helper()
	_, err := f.auth.Register(service.RegisterRequest{
		Name:            "Ana",
		Lastname:        "Lopez",
		Cedula:          cedula,
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("register %s: %v", cedula, err)
	}
	user, err := f.auth.Login(service.LoginRequest{Cedula: cedula, Password: "secret1"})
	if err != nil {
		t.Fatalf("login %s: %v", cedula, err)
	}
	return user
}
