package repository_test

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/testutil"
	"testing"
)

func TestCartAddIgnoresDuplicatePair(t *testing.T) {
	repos := testutil.NewRepos(t)
	course := testutil.Course(t, "7", "4.99", "39.99")

	if !repos.Cart.Add(course, model.CourseDefault()) {
		t.Fatalf("first add should succeed")
	}
	if repos.Cart.Add(course, model.CourseDefault()) {
		t.Fatalf("second add of the same pair should be a no-op")
	}
	premium := model.Plan{ID: "premium", Name: "Premium", Price: testutil.Money(t, "10.98")}
	if !repos.Cart.Add(course, model.SelectedPlan(premium)) {
		t.Fatalf("another plan of the same course is a new item")
	}
	if repos.Cart.Count() != 2 {
		t.Fatalf("expected 2 items, got %d", repos.Cart.Count())
	}
}

func TestCartDefaultPricingSharesBasicPlanSlot(t *testing.T) {
	repos := testutil.NewRepos(t)
	course := testutil.Course(t, "7", "4.99", "39.99")

	repos.Cart.Add(course, model.CourseDefault())
	basic := model.Plan{ID: model.DefaultPlanID, Name: model.DefaultPlanName, Price: testutil.Money(t, "4.99")}
	if repos.Cart.Add(course, model.SelectedPlan(basic)) {
		t.Fatalf("explicit basic plan should match the default pricing item")
	}
	if repos.Cart.Count() != 1 {
		t.Fatalf("expected 1 item, got %d", repos.Cart.Count())
	}
}

func TestCartTotalAndContains(t *testing.T) {
	repos := testutil.NewRepos(t)
	repos.Cart.Add(testutil.Course(t, "1", "5.99", "39.99"), model.CourseDefault())
	standard := model.Plan{ID: "standard", Price: testutil.Money(t, "10.49")}
	repos.Cart.Add(testutil.Course(t, "2", "6.99", "39.99"), model.SelectedPlan(standard))

	if got := repos.Cart.Total(); !got.Equal(testutil.Money(t, "16.48")) {
		t.Fatalf("total = %s", got)
	}
	if !repos.Cart.Contains("1", "") || !repos.Cart.Contains("1", model.DefaultPlanID) {
		t.Fatalf("course 1 should be in the cart under the basic plan")
	}
	if repos.Cart.Contains("2", "premium") {
		t.Fatalf("course 2 is only in the cart as standard")
	}
}

func TestCartRemove(t *testing.T) {
	repos := testutil.NewRepos(t)
	course := testutil.Course(t, "7", "4.99", "39.99")
	repos.Cart.Add(course, model.CourseDefault())
	repos.Cart.Add(course, model.SelectedPlan(model.Plan{ID: "premium"}))
	repos.Cart.Add(testutil.Course(t, "1", "5.99", "39.99"), model.CourseDefault())

	repos.Cart.Remove("7", "premium")
	if repos.Cart.Count() != 2 || repos.Cart.Contains("7", "premium") {
		t.Fatalf("expected only the premium item removed")
	}

	repos.Cart.Add(course, model.SelectedPlan(model.Plan{ID: "premium"}))
	repos.Cart.Remove("7", "")
	if repos.Cart.Contains("7", "") || repos.Cart.Count() != 1 {
		t.Fatalf("empty plan should remove every plan of the course")
	}

	repos.Cart.Clear()
	if repos.Cart.Count() != 0 || !repos.Cart.Total().IsZero() {
		t.Fatalf("cart should be empty after clear")
	}
}

func TestCartPricingSurvivesReload(t *testing.T) {
	repos := testutil.NewRepos(t)
	plan := model.Plan{ID: "premium", Name: "Artista", Price: testutil.Money(t, "13.18")}
	repos.Cart.Add(testutil.Course(t, "1", "5.99", "39.99"), model.SelectedPlan(plan))

	reloaded := testutil.NewReposOn(t, repos.Medium)
	items := reloaded.Cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	got, ok := items[0].Pricing.Plan()
	if !ok || got.Name != "Artista" || !items[0].Price().Equal(plan.Price) {
		t.Fatalf("pricing lost on reload: %+v", items[0].Pricing)
	}
}
