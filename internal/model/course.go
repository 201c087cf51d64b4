package model

import "github.com/shopspring/decimal"

type Course struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Instructor    string          `json:"instructor"`
	Description   string          `json:"description"`
	Image         string          `json:"image"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Rating        int             `json:"rating"`
	Reviews       int             `json:"reviews"`
	Students      int             `json:"students"`
	Category      string          `json:"category"`
	Badge         string          `json:"badge,omitempty"`
	Lessons       int             `json:"lessons,omitempty"`
	Hours         int             `json:"hours,omitempty"`
	Level         string          `json:"level,omitempty"`
	InstagramURL  string          `json:"instagramUrl,omitempty"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// CourseSnapshot is the part of a course copied into carts and invoices, so later
// catalog edits never reach an issued invoice.
type CourseSnapshot struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Instructor    string          `json:"instructor"`
	Category      string          `json:"category"`
	Image         string          `json:"image,omitempty"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
}

func (c Course) Snapshot() CourseSnapshot {
	return CourseSnapshot{
		ID:            c.ID,
		Title:         c.Title,
		Instructor:    c.Instructor,
		Category:      c.Category,
		Image:         c.Image,
		Price:         c.Price,
		OriginalPrice: c.OriginalPrice,
	}
}

// Plan is a pricing tier chosen at purchase time.
type Plan struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Duration      string          `json:"duration"`
	Features      []string        `json:"features,omitempty"`
	Popular       bool            `json:"popular,omitempty"`
}
