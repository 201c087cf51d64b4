package service

import (
	"errors"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"
	"nextlevel_lms/internal/util"
	"strings"
	"unicode/utf8"
)

type ReviewService struct {
	ReviewRepo  *repository.ReviewRepository
	Enrollments *EnrollmentService
	Auth        *AuthService
}

func NewReviewService(reviewRepo *repository.ReviewRepository, enrollments *EnrollmentService, auth *AuthService) *ReviewService {
	return &ReviewService{
		ReviewRepo:  reviewRepo,
		Enrollments: enrollments,
		Auth:        auth,
	}
}

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Submit adds the current user's review of a course. A user reviews a course once;
// the review is marked verified when the user completed the course.
func (s *ReviewService) Submit(courseID string, req ReviewRequest) (*model.Review, error) {
	user, err := s.Auth.RequireUser()
	if err != nil {
		return nil, err
	}

	if _, err := s.ReviewRepo.FindUserReview(user.ID, courseID); err == nil {
		return nil, util.ErrDuplicateReview
	} else if !errors.Is(err, util.ErrReviewNotFound) {
		return nil, err
	}

	comment, err := validateReview(req)
	if err != nil {
		return nil, err
	}

	return s.ReviewRepo.Add(courseID, model.ReviewInput{
		UserID:   user.ID,
		UserName: user.FullName(),
		Rating:   req.Rating,
		Comment:  comment,
		Verified: s.Enrollments.HasCompletedCourse(user.ID, courseID),
	}), nil
}

// Edit changes the rating and comment of one of the current user's reviews.
func (s *ReviewService) Edit(reviewID string, req ReviewRequest) (*model.Review, error) {
	review, err := s.ownReview(reviewID)
	if err != nil {
		return nil, err
	}
	comment, err := validateReview(req)
	if err != nil {
		return nil, err
	}
	if err := s.ReviewRepo.Update(review.ID, model.ReviewUpdate{Rating: &req.Rating, Comment: &comment}); err != nil {
		return nil, err
	}
	return s.ReviewRepo.FindByID(review.ID)
}

func (s *ReviewService) Delete(reviewID string) error {
	review, err := s.ownReview(reviewID)
	if err != nil {
		return err
	}
	return s.ReviewRepo.Delete(review.ID)
}

func (s *ReviewService) MarkHelpful(reviewID string) (*model.Review, error) {
	if err := s.ReviewRepo.MarkHelpful(reviewID); err != nil {
		return nil, err
	}
	return s.ReviewRepo.FindByID(reviewID)
}

func (s *ReviewService) List(courseID string, sortBy model.ReviewSort, filter string) []model.Review {
	return s.ReviewRepo.Sorted(courseID, sortBy, filter)
}

func (s *ReviewService) ownReview(reviewID string) (*model.Review, error) {
	user, err := s.Auth.RequireUser()
	if err != nil {
		return nil, err
	}
	review, err := s.ReviewRepo.FindByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != user.ID {
		return nil, util.ErrReviewNotFound
	}
	return review, nil
}

func validateReview(req ReviewRequest) (string, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return "", util.ErrInvalidRating
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return "", util.ErrEmptyComment
	}
	if utf8.RuneCountInString(comment) < util.MinCommentLen {
		return "", util.ErrCommentTooShort
	}
	return comment, nil
}
