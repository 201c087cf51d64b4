package service_test

import (
	"errors"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/util"
	"testing"
)

const goodComment = "Muy buen curso, aprendí mucho"

func TestSubmitReview(t *testing.T) {
	f := newFixture(t)
	if _, err := f.reviews.Submit("7", service.ReviewRequest{Rating: 5, Comment: goodComment}); !errors.Is(err, util.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	user := f.login(t, "V1")
	rv, err := f.reviews.Submit("7", service.ReviewRequest{Rating: 5, Comment: "  " + goodComment + "  "})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rv.UserID != user.ID || rv.UserName != "Ana Lopez" || rv.Comment != goodComment || rv.Verified {
		t.Fatalf("unexpected review %+v", rv)
	}

	if _, err := f.reviews.Submit("7", service.ReviewRequest{Rating: 4, Comment: goodComment}); !errors.Is(err, util.ErrDuplicateReview) {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}
}

func TestSubmitReviewValidation(t *testing.T) {
	f := newFixture(t)
	f.login(t, "V1")

	tests := []struct {
		req  service.ReviewRequest
		want error
	}{
		{service.ReviewRequest{Rating: 0, Comment: goodComment}, util.ErrInvalidRating},
		{service.ReviewRequest{Rating: 6, Comment: goodComment}, util.ErrInvalidRating},
		{service.ReviewRequest{Rating: 3, Comment: "   "}, util.ErrEmptyComment},
		{service.ReviewRequest{Rating: 3, Comment: "corto"}, util.ErrCommentTooShort},
	}
	for _, tt := range tests {
		if _, err := f.reviews.Submit("7", tt.req); !errors.Is(err, tt.want) {
			t.Fatalf("%+v: got %v, want %v", tt.req, err, tt.want)
		}
	}
	if n := len(f.repos.Reviews.All()); n != 0 {
		t.Fatalf("invalid reviews must not be stored, got %d", n)
	}
}

func TestReviewVerifiedAfterCompletion(t *testing.T) {
	f := newFixture(t)
	f.login(t, "V1")
	e, _ := f.enrollments.Enroll("7", "Photoshop", "design")
	f.enrollments.CompleteCourse(e.ID, 90)

	rv, err := f.reviews.Submit("7", service.ReviewRequest{Rating: 5, Comment: goodComment})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !rv.Verified {
		t.Fatalf("review of a completed course should be verified")
	}
}

func TestEditAndDeleteOwnReviewOnly(t *testing.T) {
	f := newFixture(t)
	f.login(t, "V1")
	rv, _ := f.reviews.Submit("7", service.ReviewRequest{Rating: 2, Comment: goodComment})

	edited, err := f.reviews.Edit(rv.ID, service.ReviewRequest{Rating: 4, Comment: "Mejoró bastante con el tiempo"})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Rating != 4 || edited.Comment != "Mejoró bastante con el tiempo" {
		t.Fatalf("unexpected review %+v", edited)
	}

	f.auth.Logout()
	f.login(t, "V2")
	if _, err := f.reviews.Edit(rv.ID, service.ReviewRequest{Rating: 1, Comment: goodComment}); !errors.Is(err, util.ErrReviewNotFound) {
		t.Fatalf("editing someone else's review should fail, got %v", err)
	}
	if err := f.reviews.Delete(rv.ID); !errors.Is(err, util.ErrReviewNotFound) {
		t.Fatalf("deleting someone else's review should fail, got %v", err)
	}

	helpful, err := f.reviews.MarkHelpful(rv.ID)
	if err != nil || helpful.Helpful != 1 {
		t.Fatalf("anyone can mark helpful: %+v %v", helpful, err)
	}
}

func TestCourseRatingSummary(t *testing.T) {
	f := newFixture(t)
	for i, rating := range []int{5, 4, 3} {
		f.repos.Reviews.Add("7", model.ReviewInput{UserID: string(rune('a' + i)), Rating: rating, Comment: goodComment})
	}

	summary := f.stats.CourseRating("7")
	if summary.Average != 4 || summary.Formatted != "4.0" || summary.Count != 3 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.Distribution[5] != 1 || summary.Distribution[2] != 0 {
		t.Fatalf("unexpected distribution %v", summary.Distribution)
	}

	if empty := f.stats.CourseRating("1"); empty.Formatted != "0.0" || empty.Count != 0 {
		t.Fatalf("unexpected empty summary %+v", empty)
	}
}

func TestGlobalStats(t *testing.T) {
	f := newFixture(t)
	f.login(t, "V1")
	e, _ := f.enrollments.Enroll("7", "Photoshop", "design")
	f.enrollments.Enroll("1", "Dibujo", "illustration")
	f.enrollments.CompleteCourse(e.ID, 100)
	f.reviews.Submit("7", service.ReviewRequest{Rating: 4, Comment: goodComment})
	f.auth.Logout()
	f.login(t, "V2")
	f.reviews.Submit("7", service.ReviewRequest{Rating: 5, Comment: goodComment})

	got := f.stats.Global()
	want := model.GlobalStats{TotalUsers: 2, TotalEnrollments: 2, TotalCompletions: 1, AverageRating: 4.5}
	if got != want {
		t.Fatalf("global = %+v, want %+v", got, want)
	}
}

func TestComments(t *testing.T) {
	f := newFixture(t)
	if _, err := f.comments.Create("7", "hola"); !errors.Is(err, util.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	f.login(t, "V1")
	if _, err := f.comments.Create("7", "   "); !errors.Is(err, util.ErrEmptyComment) {
		t.Fatalf("expected ErrEmptyComment, got %v", err)
	}
	c, err := f.comments.Create("7", " ¿Hay certificado? ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Content != "¿Hay certificado?" || c.UserName != "Ana Lopez" {
		t.Fatalf("unexpected comment %+v", c)
	}
	if n := len(f.comments.ForCourse("7")); n != 1 {
		t.Fatalf("expected one comment, got %d", n)
	}
}
