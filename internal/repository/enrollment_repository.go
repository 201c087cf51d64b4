package repository

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/store"
	"nextlevel_lms/internal/util"
	"time"
)

type EnrollmentRepository struct {
	Store *store.Store
}

func NewEnrollmentRepository(s *store.Store) *EnrollmentRepository {
	return &EnrollmentRepository{Store: s}
}

// Create appends a not-started enrollment with zero progress and score.
func (r *EnrollmentRepository) Create(input model.EnrollmentInput) *model.Enrollment {
	enrollment := model.Enrollment{
		ID:             model.NewID("enroll"),
		UserID:         input.UserID,
		CourseID:       input.CourseID,
		CourseTitle:    input.CourseTitle,
		CourseCategory: input.CourseCategory,
		Status:         model.StatusNotStarted,
		Progress:       0,
		Score:          0,
		CreatedAt:      time.Now(),
	}

	_ = r.Store.Update(func(data *model.Dataset) error {
		data.Enrollments = append(data.Enrollments, enrollment)
		return nil
	})
	return &enrollment
}

// FindByUserAndCourse is the uniqueness lookup for (userID, courseID).
func (r *EnrollmentRepository) FindByUserAndCourse(userID, courseID string) (*model.Enrollment, error) {
	return r.find(func(e *model.Enrollment) bool {
		return e.UserID == userID && e.CourseID == courseID
	})
}

func (r *EnrollmentRepository) FindByID(id string) (*model.Enrollment, error) {
	return r.find(func(e *model.Enrollment) bool { return e.ID == id })
}

func (r *EnrollmentRepository) find(match func(e *model.Enrollment) bool) (*model.Enrollment, error) {
	var found *model.Enrollment
	r.Store.Read(func(data *model.Dataset) {
		for i := range data.Enrollments {
			if match(&data.Enrollments[i]) {
				e := data.Enrollments[i]
				found = &e
				return
			}
		}
	})
	if found == nil {
		return nil, util.ErrEnrollmentNotFound
	}
	return found, nil
}

func (r *EnrollmentRepository) FindByUser(userID string) []model.Enrollment {
	enrollments := []model.Enrollment{}
	for _, e := range r.Store.Snapshot().Enrollments {
		if e.UserID == userID {
			enrollments = append(enrollments, e)
		}
	}
	return enrollments
}

// Update merges the non-nil fields of upd into the enrollment with the given id.
func (r *EnrollmentRepository) Update(id string, upd model.EnrollmentUpdate) (*model.Enrollment, error) {
	var updated model.Enrollment
	err := r.Store.Update(func(data *model.Dataset) error {
		for i := range data.Enrollments {
			if data.Enrollments[i].ID == id {
				data.Enrollments[i].Apply(upd)
				updated = data.Enrollments[i]
				return nil
			}
		}
		return util.ErrEnrollmentNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *EnrollmentRepository) All() []model.Enrollment {
	return r.Store.Snapshot().Enrollments
}
