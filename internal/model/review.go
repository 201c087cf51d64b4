package model

import "time"

// Review holds one user's rating of a course. Helpful only ever grows.
type Review struct {
	ID       string    `json:"id"`
	CourseID string    `json:"courseId"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
	Helpful  int       `json:"helpful"`
	Verified bool      `json:"verified"`
}

type ReviewInput struct {
	UserID   string
	UserName string
	Rating   int
	Comment  string
	Verified bool
}

type ReviewUpdate struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

func (r *Review) Apply(upd ReviewUpdate) {
	if upd.Rating != nil {
		r.Rating = *upd.Rating
	}
	if upd.Comment != nil {
		r.Comment = *upd.Comment
	}
}

type ReviewSort string

const (
	SortRecent  ReviewSort = "recent"
	SortRating  ReviewSort = "rating"
	SortHelpful ReviewSort = "helpful"
)

// RatingDistribution maps a star value (1..5) to its review count.
type RatingDistribution map[int]int

func NewRatingDistribution() RatingDistribution {
	return RatingDistribution{5: 0, 4: 0, 3: 0, 2: 0, 1: 0}
}
