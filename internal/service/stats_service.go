package service

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"
	"nextlevel_lms/internal/util"
)

// StatsService derives aggregates by rescanning the repositories on every call.
type StatsService struct {
	UserRepo       *repository.UserRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ReviewRepo     *repository.ReviewRepository
}

func NewStatsService(
	userRepo *repository.UserRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	reviewRepo *repository.ReviewRepository,
) *StatsService {
	return &StatsService{
		UserRepo:       userRepo,
		EnrollmentRepo: enrollmentRepo,
		ReviewRepo:     reviewRepo,
	}
}

func (s *StatsService) Global() model.GlobalStats {
	enrollments := s.EnrollmentRepo.All()
	completions := 0
	for _, e := range enrollments {
		if e.Status == model.StatusCompleted {
			completions++
		}
	}
	return model.GlobalStats{
		TotalUsers:       s.UserRepo.Count(),
		TotalEnrollments: len(enrollments),
		TotalCompletions: completions,
		AverageRating:    repository.AverageRating(s.ReviewRepo.All()),
	}
}

func (s *StatsService) User(userID string) model.UserStats {
	return UserStatsOf(s.EnrollmentRepo.FindByUser(userID))
}

func (s *StatsService) CourseRating(courseID string) model.CourseRatingSummary {
	avg := s.ReviewRepo.CourseRating(courseID)
	return model.CourseRatingSummary{
		CourseID:     courseID,
		Average:      avg,
		Formatted:    util.FormatOneDecimal(avg),
		Count:        len(s.ReviewRepo.FindByCourse(courseID)),
		Distribution: s.ReviewRepo.RatingDistribution(courseID),
	}
}

// UserStatsOf counts enrollments by status and averages the scores of completed ones.
func UserStatsOf(enrollments []model.Enrollment) model.UserStats {
	stats := model.UserStats{Total: len(enrollments)}
	scoreSum := 0
	for _, e := range enrollments {
		switch e.Status {
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusCompleted:
			stats.Completed++
			scoreSum += e.Score
		case model.StatusNotStarted:
			stats.NotStarted++
		}
	}
	if stats.Completed > 0 {
		stats.AvgScore = util.RoundHalfUp(float64(scoreSum) / float64(stats.Completed))
	}
	return stats
}
