package service

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"
	"nextlevel_lms/internal/util"
	"strings"
)

type CommentService struct {
	CommentRepo *repository.CommentRepository
	Auth        *AuthService
}

func NewCommentService(commentRepo *repository.CommentRepository, auth *AuthService) *CommentService {
	return &CommentService{CommentRepo: commentRepo, Auth: auth}
}

func (s *CommentService) Create(courseID, content string) (*model.CourseComment, error) {
	user, err := s.Auth.RequireUser()
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, util.ErrEmptyComment
	}
	return s.CommentRepo.Create(model.CommentInput{
		CourseID: courseID,
		UserID:   user.ID,
		UserName: user.FullName(),
		Content:  content,
	}), nil
}

func (s *CommentService) ForCourse(courseID string) []model.CourseComment {
	return s.CommentRepo.FindByCourse(courseID)
}
