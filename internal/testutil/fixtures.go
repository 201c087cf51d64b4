package testutil

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"
	"nextlevel_lms/internal/store"
	"testing"

	"github.com/shopspring/decimal"
)

// Repos bundles every repository over one store.
type Repos struct {
	Medium      *FlakyMedium
	Store       *store.Store
	Users       *repository.UserRepository
	Enrollments *repository.EnrollmentRepository
	Payments    *repository.PaymentRepository
	Reviews     *repository.ReviewRepository
	Comments    *repository.CommentRepository
	Invoices    *repository.InvoiceRepository
	Cart        *repository.CartRepository
}

func NewRepos(tb testing.TB) *Repos {
	tb.Helper()
	return NewReposOn(tb, NewFlakyMedium())
}

func NewReposOn(tb testing.TB, medium *FlakyMedium) *Repos {
	tb.Helper()
	st := store.New(medium)
	return &Repos{
		Medium:      medium,
		Store:       st,
		Users:       repository.NewUserRepository(st),
		Enrollments: repository.NewEnrollmentRepository(st),
		Payments:    repository.NewPaymentRepository(st),
		Reviews:     repository.NewReviewRepository(st),
		Comments:    repository.NewCommentRepository(st),
		Invoices:    repository.NewInvoiceRepository(st, "NL"),
		Cart:        repository.NewCartRepository(st),
	}
}

func SeedUser(tb testing.TB, repos *Repos, cedula string) *model.User {
	tb.Helper()
	return repos.Users.Create(model.UserInput{
		Name:     "Ana",
		Lastname: "Lopez",
		Cedula:   cedula,
		Password: "secret1",
	})
}

func SeedReview(tb testing.TB, repos *Repos, courseID, userID string, rating int) *model.Review {
	tb.Helper()
	return repos.Reviews.Add(courseID, model.ReviewInput{
		UserID:   userID,
		UserName: "Ana Lopez",
		Rating:   rating,
		Comment:  "Muy buen curso, lo recomiendo",
	})
}

func Money(tb testing.TB, s string) decimal.Decimal {
	tb.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		tb.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func Course(tb testing.TB, id, price, original string) model.CourseSnapshot {
	tb.Helper()
	return model.CourseSnapshot{
		ID:            id,
		Title:         "Curso " + id,
		Instructor:    "Puño",
		Category:      "illustration",
		Price:         Money(tb, price),
		OriginalPrice: Money(tb, original),
	}
}
