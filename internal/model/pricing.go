package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	DefaultPlanID       = "basic"
	DefaultPlanName     = "Básico"
	DefaultPlanDuration = "3 meses de acceso"
)

type PricingKind string

const (
	PricingCourseDefault PricingKind = "course_default"
	PricingSelectedPlan  PricingKind = "selected_plan"
)

// PricingSource says where an item's price comes from: the course itself or a
// selected plan. It is resolved once, when the item enters the cart.
type PricingSource struct {
	kind PricingKind
	plan Plan
}

func CourseDefault() PricingSource {
	return PricingSource{kind: PricingCourseDefault}
}

func SelectedPlan(p Plan) PricingSource {
	return PricingSource{kind: PricingSelectedPlan, plan: p}
}

func (p PricingSource) Kind() PricingKind {
	if p.kind == "" {
		return PricingCourseDefault
	}
	return p.kind
}

// Plan returns the selected plan; ok is false for the course default.
func (p PricingSource) Plan() (Plan, bool) {
	if p.Kind() != PricingSelectedPlan {
		return Plan{}, false
	}
	return p.plan, true
}

// PlanID is the cart identity of the pricing; the course default counts as the basic plan.
func (p PricingSource) PlanID() string {
	if plan, ok := p.Plan(); ok {
		return plan.ID
	}
	return DefaultPlanID
}

func (p PricingSource) PlanName() string {
	if plan, ok := p.Plan(); ok {
		return plan.Name
	}
	return DefaultPlanName
}

// Price is the plan price, falling back to the course price when the plan has none.
func (p PricingSource) Price(c CourseSnapshot) decimal.Decimal {
	if plan, ok := p.Plan(); ok && !plan.Price.IsZero() {
		return plan.Price
	}
	return c.Price
}

// OriginalPrice falls back from plan to course; absent everywhere it is zero.
func (p PricingSource) OriginalPrice(c CourseSnapshot) decimal.Decimal {
	if plan, ok := p.Plan(); ok && !plan.OriginalPrice.IsZero() {
		return plan.OriginalPrice
	}
	return c.OriginalPrice
}

type pricingJSON struct {
	Kind PricingKind `json:"kind"`
	Plan *Plan       `json:"plan,omitempty"`
}

func (p PricingSource) MarshalJSON() ([]byte, error) {
	out := pricingJSON{Kind: p.Kind()}
	if plan, ok := p.Plan(); ok {
		out.Plan = &plan
	}
	return json.Marshal(out)
}

func (p *PricingSource) UnmarshalJSON(data []byte) error {
	var in pricingJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case PricingSelectedPlan:
		if in.Plan == nil {
			return fmt.Errorf("pricing %q without plan", in.Kind)
		}
		*p = SelectedPlan(*in.Plan)
	case PricingCourseDefault, "":
		*p = CourseDefault()
	default:
		return fmt.Errorf("unknown pricing kind %q", in.Kind)
	}
	return nil
}
