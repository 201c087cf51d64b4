package service

import (
	"errors"
	"math"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"
	"nextlevel_lms/internal/util"
	"nextlevel_lms/pkg/logger"
	"time"

	"go.uber.org/zap"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	Auth           *AuthService
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, auth *AuthService) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		Auth:           auth,
	}
}

type QuizResult struct {
	Score      int               `json:"score"`
	Passed     bool              `json:"passed"`
	Enrollment *model.Enrollment `json:"enrollment"`
}

// Enroll signs the current user up for a course. An existing enrollment is returned
// as is instead of creating a second one.
func (s *EnrollmentService) Enroll(courseID, courseTitle, courseCategory string) (*model.Enrollment, error) {
	user, err := s.Auth.RequireUser()
	if err != nil {
		return nil, err
	}
	return s.EnrollUser(user.ID, courseID, courseTitle, courseCategory)
}

// EnrollUser is Enroll for an explicit user, used by checkout.
func (s *EnrollmentService) EnrollUser(userID, courseID, courseTitle, courseCategory string) (*model.Enrollment, error) {
	existing, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err == nil {
		return existing, nil
	} else if !errors.Is(err, util.ErrEnrollmentNotFound) {
		return nil, err
	}

	if courseCategory == "" {
		courseCategory = util.DefaultCategory
	}
	enrollment := s.EnrollmentRepo.Create(model.EnrollmentInput{
		UserID:         userID,
		CourseID:       courseID,
		CourseTitle:    courseTitle,
		CourseCategory: courseCategory,
	})
	logger.Log.Info("User enrolled",
		zap.String("user_id", userID),
		zap.String("course_id", courseID),
	)
	return enrollment, nil
}

func (s *EnrollmentService) MyEnrollments() []model.Enrollment {
	user := s.Auth.CurrentUser()
	if user == nil {
		return []model.Enrollment{}
	}
	return s.EnrollmentRepo.FindByUser(user.ID)
}

func (s *EnrollmentService) HasAccess(courseID string) bool {
	_, err := s.MyEnrollment(courseID)
	return err == nil
}

func (s *EnrollmentService) MyEnrollment(courseID string) (*model.Enrollment, error) {
	user, err := s.Auth.RequireUser()
	if err != nil {
		return nil, err
	}
	return s.EnrollmentRepo.FindByUserAndCourse(user.ID, courseID)
}

// UpdateProgress records lesson progress, clamped to 0..100, and the status as given.
// Transitions are not enforced; completedAt and score are set only by CompleteCourse.
func (s *EnrollmentService) UpdateProgress(enrollmentID string, progress int, status model.EnrollmentStatus) (*model.Enrollment, error) {
	if status != "" && !status.Valid() {
		return nil, util.NewValidationError("Estado no válido", map[string]string{"status": string(status)})
	}

	progress = clampPercent(progress)
	upd := model.EnrollmentUpdate{Progress: &progress}
	if status != "" {
		upd.Status = &status
	}
	return s.EnrollmentRepo.Update(enrollmentID, upd)
}

func (s *EnrollmentService) CompleteCourse(enrollmentID string, score int) (*model.Enrollment, error) {
	status := model.StatusCompleted
	progress := 100
	score = clampPercent(score)
	now := time.Now()
	return s.EnrollmentRepo.Update(enrollmentID, model.EnrollmentUpdate{
		Status:      &status,
		Progress:    &progress,
		Score:       &score,
		CompletedAt: &now,
	})
}

// SubmitQuiz scores the final quiz of a course for the current user and completes
// the enrollment when the score reaches the passing mark.
func (s *EnrollmentService) SubmitQuiz(courseID string, correct, total int) (*QuizResult, error) {
	if total <= 0 || correct < 0 || correct > total {
		return nil, util.ErrInvalidQuiz
	}
	enrollment, err := s.MyEnrollment(courseID)
	if err != nil {
		return nil, err
	}

	score := QuizScore(correct, total)
	result := &QuizResult{Score: score, Passed: score >= util.PassingScore, Enrollment: enrollment}
	if result.Passed {
		completed, err := s.CompleteCourse(enrollment.ID, score)
		if err != nil {
			return nil, err
		}
		result.Enrollment = completed
	}
	return result, nil
}

// FilterByStatus narrows the current user's enrollments; "all" keeps everything.
func (s *EnrollmentService) FilterByStatus(status string) []model.Enrollment {
	enrollments := s.MyEnrollments()
	if status == "" || status == "all" {
		return enrollments
	}
	out := []model.Enrollment{}
	for _, e := range enrollments {
		if string(e.Status) == status {
			out = append(out, e)
		}
	}
	return out
}

// HasCompletedCourse only answers for the logged in user; other ids report false.
func (s *EnrollmentService) HasCompletedCourse(userID, courseID string) bool {
	user := s.Auth.CurrentUser()
	if user == nil || user.ID != userID {
		return false
	}
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	return err == nil && enrollment.Status == model.StatusCompleted
}

func (s *EnrollmentService) MyStats() model.UserStats {
	return UserStatsOf(s.MyEnrollments())
}

// QuizScore is the percentage of correct answers rounded to the nearest integer.
func QuizScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return util.RoundHalfUp(float64(correct) / float64(total) * 100)
}

// LessonProgress is the course percentage reached once lesson index i (0-based) of n is done.
func LessonProgress(i, n int) int {
	if n <= 0 {
		return 0
	}
	return util.RoundHalfUp(math.Min(float64(i+1)/float64(n)*100, 100))
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
