package repository_test

import (
	"errors"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"
	"nextlevel_lms/internal/testutil"
	"nextlevel_lms/internal/util"
	"strings"
	"testing"
)

func TestCourseRatingAndDistribution(t *testing.T) {
	repos := testutil.NewRepos(t)
	for i, rating := range []int{5, 4, 3} {
		testutil.SeedReview(t, repos, "7", string(rune('a'+i)), rating)
	}
	testutil.SeedReview(t, repos, "1", "a", 1)

	avg := repos.Reviews.CourseRating("7")
	if avg != 4.0 || util.FormatOneDecimal(avg) != "4.0" {
		t.Fatalf("expected 4.0, got %v", avg)
	}

	dist := repos.Reviews.RatingDistribution("7")
	want := model.RatingDistribution{5: 1, 4: 1, 3: 1, 2: 0, 1: 0}
	for star, n := range want {
		if dist[star] != n {
			t.Fatalf("distribution[%d] = %d, want %d", star, dist[star], n)
		}
	}

	if repos.Reviews.CourseRating("empty") != 0 {
		t.Fatalf("course without reviews should rate 0")
	}
	if got := repos.Reviews.RatingDistribution("empty"); len(got) != 5 {
		t.Fatalf("distribution should always carry five keys, got %v", got)
	}
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	reviews := []model.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	if got := repository.AverageRating(reviews); got != 4.3 {
		t.Fatalf("expected 4.3, got %v", got)
	}
}

func ratings(ones, twos int) []model.Review {
	var reviews []model.Review
	for i := 0; i < ones; i++ {
		reviews = append(reviews, model.Review{Rating: 1})
	}
	for i := 0; i < twos; i++ {
		reviews = append(reviews, model.Review{Rating: 2})
	}
	return reviews
}

func TestAverageRatingUsesBinaryValueOfMean(t *testing.T) {
	cases := []struct {
		name       string
		ones, twos int
		want       float64
		formatted  string
	}{
		{"29 over 20", 11, 9, 1.4, "1.4"},
		{"23 over 20", 17, 3, 1.1, "1.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := repository.AverageRating(ratings(tc.ones, tc.twos))
			if got != tc.want || util.FormatOneDecimal(got) != tc.formatted {
				t.Fatalf("expected %s, got %v", tc.formatted, got)
			}
		})
	}
}

func TestReviewAddPrependsAndMarksHelpful(t *testing.T) {
	repos := testutil.NewRepos(t)
	first := testutil.SeedReview(t, repos, "7", "u1", 5)
	second := testutil.SeedReview(t, repos, "7", "u2", 4)

	if !strings.HasPrefix(first.ID, "review-") || first.Helpful != 0 {
		t.Fatalf("unexpected review %+v", first)
	}
	all := repos.Reviews.FindByCourse("7")
	if all[0].ID != second.ID {
		t.Fatalf("newest review should come first")
	}

	for i := 0; i < 3; i++ {
		if err := repos.Reviews.MarkHelpful(first.ID); err != nil {
			t.Fatalf("mark helpful: %v", err)
		}
	}
	got, _ := repos.Reviews.FindByID(first.ID)
	if got.Helpful != 3 {
		t.Fatalf("expected helpful 3, got %d", got.Helpful)
	}

	if err := repos.Reviews.MarkHelpful("missing"); !errors.Is(err, util.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestReviewUpdateAndDelete(t *testing.T) {
	repos := testutil.NewRepos(t)
	rv := testutil.SeedReview(t, repos, "7", "u1", 2)

	rating := 5
	if err := repos.Reviews.Update(rv.ID, model.ReviewUpdate{Rating: &rating}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got, _ := repos.Reviews.FindUserReview("u1", "7"); got.Rating != 5 || got.Comment != rv.Comment {
		t.Fatalf("unexpected review after update %+v", got)
	}

	if err := repos.Reviews.Delete(rv.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repos.Reviews.Delete(rv.ID); !errors.Is(err, util.ErrReviewNotFound) {
		t.Fatalf("second delete should fail, got %v", err)
	}
}

func TestReviewSortedAndFiltered(t *testing.T) {
	repos := testutil.NewRepos(t)
	low := testutil.SeedReview(t, repos, "7", "u1", 2)
	high := testutil.SeedReview(t, repos, "7", "u2", 5)
	verified := repos.Reviews.Add("7", model.ReviewInput{UserID: "u3", Rating: 4, Comment: "Excelente curso", Verified: true})
	_ = repos.Reviews.MarkHelpful(low.ID)
	_ = repos.Reviews.MarkHelpful(low.ID)

	byRating := repos.Reviews.Sorted("7", model.SortRating, "all")
	if byRating[0].ID != high.ID || byRating[2].ID != low.ID {
		t.Fatalf("unexpected rating order %v", ids(byRating))
	}

	byHelpful := repos.Reviews.Sorted("7", model.SortHelpful, "")
	if byHelpful[0].ID != low.ID {
		t.Fatalf("most helpful should be first, got %v", ids(byHelpful))
	}

	onlyVerified := repos.Reviews.Sorted("7", model.SortRecent, "verified")
	if len(onlyVerified) != 1 || onlyVerified[0].ID != verified.ID {
		t.Fatalf("unexpected verified filter %v", ids(onlyVerified))
	}

	fives := repos.Reviews.Sorted("7", model.SortRecent, "5")
	if len(fives) != 1 || fives[0].ID != high.ID {
		t.Fatalf("unexpected star filter %v", ids(fives))
	}
}

func ids(reviews []model.Review) []string {
	out := make([]string, len(reviews))
	for i, r := range reviews {
		out[i] = r.ID
	}
	return out
}
