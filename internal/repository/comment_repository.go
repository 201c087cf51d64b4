package repository

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/store"
	"time"
)

type CommentRepository struct {
	Store *store.Store
}

func NewCommentRepository(s *store.Store) *CommentRepository {
	return &CommentRepository{Store: s}
}

func (r *CommentRepository) Create(input model.CommentInput) *model.CourseComment {
	comment := model.CourseComment{
		ID:        model.NewID("comment"),
		CourseID:  input.CourseID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}

	_ = r.Store.Update(func(data *model.Dataset) error {
		data.CourseComments = append(data.CourseComments, comment)
		return nil
	})
	return &comment
}

func (r *CommentRepository) FindByCourse(courseID string) []model.CourseComment {
	comments := []model.CourseComment{}
	for _, c := range r.Store.Snapshot().CourseComments {
		if c.CourseID == courseID {
			comments = append(comments, c)
		}
	}
	return comments
}
