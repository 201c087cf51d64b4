package repository

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/store"
	"nextlevel_lms/internal/util"
	"sort"
	"strconv"
	"time"
)

// ReviewRepository keeps reviews newest first: Add prepends.
// One review per (user, course) is the review service's check, not this repository's.
type ReviewRepository struct {
	Store *store.Store
}

func NewReviewRepository(s *store.Store) *ReviewRepository {
	return &ReviewRepository{Store: s}
}

func (r *ReviewRepository) Add(courseID string, input model.ReviewInput) *model.Review {
	review := model.Review{
		ID:       model.NewIDWithSeparator("review", "-"),
		CourseID: courseID,
		UserID:   input.UserID,
		UserName: input.UserName,
		Rating:   input.Rating,
		Comment:  input.Comment,
		Date:     time.Now(),
		Helpful:  0,
		Verified: input.Verified,
	}

	_ = r.Store.Update(func(data *model.Dataset) error {
		data.Reviews = append([]model.Review{review}, data.Reviews...)
		return nil
	})
	return &review
}

func (r *ReviewRepository) FindByCourse(courseID string) []model.Review {
	reviews := []model.Review{}
	for _, rv := range r.Store.Snapshot().Reviews {
		if rv.CourseID == courseID {
			reviews = append(reviews, rv)
		}
	}
	return reviews
}

func (r *ReviewRepository) FindByID(id string) (*model.Review, error) {
	return r.find(func(rv *model.Review) bool { return rv.ID == id })
}

func (r *ReviewRepository) FindUserReview(userID, courseID string) (*model.Review, error) {
	return r.find(func(rv *model.Review) bool {
		return rv.UserID == userID && rv.CourseID == courseID
	})
}

func (r *ReviewRepository) find(match func(rv *model.Review) bool) (*model.Review, error) {
	var found *model.Review
	r.Store.Read(func(data *model.Dataset) {
		for i := range data.Reviews {
			if match(&data.Reviews[i]) {
				rv := data.Reviews[i]
				found = &rv
				return
			}
		}
	})
	if found == nil {
		return nil, util.ErrReviewNotFound
	}
	return found, nil
}

func (r *ReviewRepository) Update(id string, upd model.ReviewUpdate) error {
	return r.modify(id, func(rv *model.Review) { rv.Apply(upd) })
}

// MarkHelpful adds one to the helpful counter on every call.
func (r *ReviewRepository) MarkHelpful(id string) error {
	return r.modify(id, func(rv *model.Review) { rv.Helpful++ })
}

func (r *ReviewRepository) modify(id string, fn func(rv *model.Review)) error {
	return r.Store.Update(func(data *model.Dataset) error {
		for i := range data.Reviews {
			if data.Reviews[i].ID == id {
				fn(&data.Reviews[i])
				return nil
			}
		}
		return util.ErrReviewNotFound
	})
}

func (r *ReviewRepository) Delete(id string) error {
	return r.Store.Update(func(data *model.Dataset) error {
		for i := range data.Reviews {
			if data.Reviews[i].ID == id {
				data.Reviews = append(data.Reviews[:i], data.Reviews[i+1:]...)
				return nil
			}
		}
		return util.ErrReviewNotFound
	})
}

// CourseRating is the mean rating rounded to one decimal, 0 when the course has no reviews.
// util.FormatOneDecimal renders it as shown to users ("4.0").
func (r *ReviewRepository) CourseRating(courseID string) float64 {
	return AverageRating(r.FindByCourse(courseID))
}

// RatingDistribution counts reviews per star value; all five keys are always present.
func (r *ReviewRepository) RatingDistribution(courseID string) model.RatingDistribution {
	dist := model.NewRatingDistribution()
	for _, rv := range r.FindByCourse(courseID) {
		if _, ok := dist[rv.Rating]; ok {
			dist[rv.Rating]++
		}
	}
	return dist
}

// Sorted lists a course's reviews ordered by sortBy and narrowed by filter:
// "all", "verified", or a star value "1".."5".
func (r *ReviewRepository) Sorted(courseID string, sortBy model.ReviewSort, filter string) []model.Review {
	reviews := r.FindByCourse(courseID)

	switch sortBy {
	case model.SortRating:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Rating > reviews[j].Rating })
	case model.SortHelpful:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Helpful > reviews[j].Helpful })
	default:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Date.After(reviews[j].Date) })
	}

	if filter == "" || filter == "all" {
		return reviews
	}

	out := []model.Review{}
	stars, _ := strconv.Atoi(filter)
	for _, rv := range reviews {
		if filter == "verified" && rv.Verified || stars != 0 && rv.Rating == stars {
			out = append(out, rv)
		}
	}
	return out
}

func (r *ReviewRepository) All() []model.Review {
	return r.Store.Snapshot().Reviews
}

// AverageRating is the mean of the ratings rounded to one decimal, 0 for none.
func AverageRating(reviews []model.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, rv := range reviews {
		total += rv.Rating
	}
	return util.RoundOneDecimal(float64(total) / float64(len(reviews)))
}
