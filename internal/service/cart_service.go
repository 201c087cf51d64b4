package service

import (
	"nextlevel_lms/internal/catalog"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"

	"github.com/shopspring/decimal"
)

type CartService struct {
	CartRepo *repository.CartRepository
	Catalog  *catalog.Catalog
}

func NewCartService(cartRepo *repository.CartRepository, cat *catalog.Catalog) *CartService {
	return &CartService{CartRepo: cartRepo, Catalog: cat}
}

type CartView struct {
	Items []model.CartItem `json:"items"`
	Count int              `json:"count"`
	Total decimal.Decimal  `json:"total"`
}

// Resolve looks up a course and turns planID into its pricing source. An empty
// planID means the course's own price.
func (s *CartService) Resolve(courseID, planID string) (model.CourseSnapshot, model.PricingSource, error) {
	course, err := s.Catalog.Course(courseID)
	if err != nil {
		return model.CourseSnapshot{}, model.PricingSource{}, err
	}
	if planID == "" {
		return course.Snapshot(), model.CourseDefault(), nil
	}
	plan, err := catalog.Plan(course, planID)
	if err != nil {
		return model.CourseSnapshot{}, model.PricingSource{}, err
	}
	return course.Snapshot(), model.SelectedPlan(plan), nil
}

func (s *CartService) Add(courseID, planID string) (CartView, error) {
	course, pricing, err := s.Resolve(courseID, planID)
	if err != nil {
		return CartView{}, err
	}
	s.CartRepo.Add(course, pricing)
	return s.View(), nil
}

func (s *CartService) Remove(courseID, planID string) CartView {
	s.CartRepo.Remove(courseID, planID)
	return s.View()
}

func (s *CartService) Clear() {
	s.CartRepo.Clear()
}

func (s *CartService) Contains(courseID, planID string) bool {
	return s.CartRepo.Contains(courseID, planID)
}

func (s *CartService) View() CartView {
	items := s.CartRepo.Items()
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price())
	}
	return CartView{Items: items, Count: len(items), Total: total.Round(2)}
}
