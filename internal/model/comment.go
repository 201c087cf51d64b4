package model

import "time"

type CourseComment struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentInput struct {
	CourseID string
	UserID   string
	UserName string
	Content  string
}
