package repository

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/store"
	"nextlevel_lms/internal/util"
	"time"

	"github.com/shopspring/decimal"
)

// CartRepository persists the ordered cart under nextlevel_cart. A (course, plan)
// pair appears at most once.
type CartRepository struct {
	Store *store.Store
}

func NewCartRepository(s *store.Store) *CartRepository {
	return &CartRepository{Store: s}
}

func (r *CartRepository) Items() []model.CartItem {
	return store.ReadList[model.CartItem](r.Store, util.KeyCart)
}

// Add appends the course with the given pricing unless the pair is already in the cart.
// It reports whether an item was added. CourseDefault is keyed as the "basic" plan,
// so a course added without a plan and again with the explicit basic plan stays one item.
func (r *CartRepository) Add(course model.CourseSnapshot, pricing model.PricingSource) bool {
	added := false
	_, _ = store.UpdateList(r.Store, util.KeyCart, func(items []model.CartItem) ([]model.CartItem, error) {
		for _, it := range items {
			if it.Matches(course.ID, pricing.PlanID()) {
				return items, nil
			}
		}
		added = true
		return append(items, model.CartItem{Course: course, Pricing: pricing, AddedAt: time.Now()}), nil
	})
	return added
}

// Remove drops the (course, plan) pair; an empty planID drops every plan of the course.
func (r *CartRepository) Remove(courseID, planID string) {
	_, _ = store.UpdateList(r.Store, util.KeyCart, func(items []model.CartItem) ([]model.CartItem, error) {
		out := make([]model.CartItem, 0, len(items))
		for _, it := range items {
			if it.CourseID() == courseID && (planID == "" || it.PlanID() == planID) {
				continue
			}
			out = append(out, it)
		}
		return out, nil
	})
}

func (r *CartRepository) Clear() {
	r.Store.Locked(func() {
		r.Store.WriteJSON(util.KeyCart, []model.CartItem{})
	})
}

func (r *CartRepository) Count() int {
	return len(r.Items())
}

// Total sums the effective prices, rounded to cents.
func (r *CartRepository) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Items() {
		total = total.Add(it.Price())
	}
	return total.Round(2)
}

// Contains reports whether the pair is in the cart; an empty planID matches any plan.
func (r *CartRepository) Contains(courseID, planID string) bool {
	for _, it := range r.Items() {
		if it.CourseID() == courseID && (planID == "" || it.PlanID() == planID) {
			return true
		}
	}
	return false
}
