package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem pairs a course snapshot with its pricing. A cart never holds two items
// with the same (course id, plan id).
type CartItem struct {
	Course  CourseSnapshot `json:"course"`
	Pricing PricingSource  `json:"pricing"`
	AddedAt time.Time      `json:"addedAt"`
}

func (i CartItem) CourseID() string { return i.Course.ID }

func (i CartItem) PlanID() string { return i.Pricing.PlanID() }

func (i CartItem) Price() decimal.Decimal { return i.Pricing.Price(i.Course) }

func (i CartItem) OriginalPrice() decimal.Decimal { return i.Pricing.OriginalPrice(i.Course) }

func (i CartItem) Matches(courseID, planID string) bool {
	return i.Course.ID == courseID && i.PlanID() == planID
}
