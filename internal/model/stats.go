package model

// GlobalStats aggregates the whole dataset. AverageRating has one decimal.
type GlobalStats struct {
	TotalUsers       int     `json:"totalUsers"`
	TotalEnrollments int     `json:"totalEnrollments"`
	TotalCompletions int     `json:"totalCompletions"`
	AverageRating    float64 `json:"averageRating"`
}

// UserStats counts one user's enrollments by status. AvgScore only covers completed ones.
type UserStats struct {
	Total      int `json:"total"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	NotStarted int `json:"notStarted"`
	AvgScore   int `json:"avgScore"`
}

type CourseRatingSummary struct {
	CourseID     string             `json:"courseId"`
	Average      float64            `json:"average"`
	Formatted    string             `json:"formatted"`
	Count        int                `json:"count"`
	Distribution RatingDistribution `json:"distribution"`
}
