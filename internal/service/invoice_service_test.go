package service_test

import (
	"errors"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/testutil"
	"nextlevel_lms/internal/util"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGenerateInvoiceWithoutPlan(t *testing.T) {
	issued := time.Date(2024, time.March, 5, 14, 5, 0, 0, time.UTC)
	items := []model.CartItem{{Course: testutil.Course(t, "A", "10", "20"), Pricing: model.CourseDefault()}}

	inv := service.GenerateInvoice(items, model.PaymentInfo{Method: model.MethodVisa}, model.CustomerInfo{}, "NL-2024-00001", issued)

	ten := testutil.Money(t, "10")
	if !inv.Subtotal.Equal(ten) || !inv.Discount.Equal(ten) || !inv.Total.Equal(ten) {
		t.Fatalf("subtotal/discount/total = %s/%s/%s", inv.Subtotal, inv.Discount, inv.Total)
	}
	if inv.Items[0].Plan != nil {
		t.Fatalf("course price item should carry no plan")
	}
	if inv.PaymentInfo.Reference != "N/A" || inv.PaymentInfo.Details == nil || inv.CustomerInfo.Name != "Cliente" {
		t.Fatalf("defaults not applied: %+v %+v", inv.PaymentInfo, inv.CustomerInfo)
	}
	if inv.Status != model.InvoicePaid || inv.InvoiceNumber != "NL-2024-00001" || !inv.Date.Equal(issued) {
		t.Fatalf("unexpected invoice %+v", inv)
	}
	if !strings.HasPrefix(inv.ID, "inv_") {
		t.Fatalf("unexpected id %q", inv.ID)
	}
}

func TestGenerateInvoiceUsesPlanPrices(t *testing.T) {
	plan := model.Plan{ID: "premium", Name: "Premium", Price: testutil.Money(t, "13.18"), OriginalPrice: testutil.Money(t, "87.98")}
	items := []model.CartItem{
		{Course: testutil.Course(t, "1", "5.99", "39.99"), Pricing: model.SelectedPlan(plan)},
		{Course: testutil.Course(t, "2", "6.99", "39.99"), Pricing: model.CourseDefault()},
	}

	inv := service.GenerateInvoice(items, model.PaymentInfo{Reference: "1234"}, model.CustomerInfo{Name: "Ana"}, "NL-2024-00002", time.Now())

	if !inv.Subtotal.Equal(testutil.Money(t, "20.17")) {
		t.Fatalf("subtotal = %s", inv.Subtotal)
	}
	if !inv.Discount.Equal(testutil.Money(t, "107.80")) {
		t.Fatalf("discount = %s", inv.Discount)
	}
	if inv.Items[0].Plan == nil || inv.Items[0].Plan.ID != "premium" {
		t.Fatalf("plan not carried on the invoice item")
	}
	if inv.PaymentInfo.Reference != "1234" || inv.CustomerInfo.Name != "Ana" {
		t.Fatalf("given values should be kept")
	}
}

func TestGenerateInvoicePlanWithoutPriceFallsBackToCourse(t *testing.T) {
	items := []model.CartItem{{Course: testutil.Course(t, "1", "5.99", "39.99"), Pricing: model.SelectedPlan(model.Plan{ID: "x"})}}
	inv := service.GenerateInvoice(items, model.PaymentInfo{}, model.CustomerInfo{}, "n", time.Now())
	if !inv.Total.Equal(testutil.Money(t, "5.99")) || !inv.Items[0].OriginalPrice.Equal(testutil.Money(t, "39.99")) {
		t.Fatalf("unexpected prices %s / %s", inv.Total, inv.Items[0].OriginalPrice)
	}
}

func TestIssueStoresNumberedInvoices(t *testing.T) {
	f := newFixture(t)
	items := []model.CartItem{{Course: testutil.Course(t, "7", "4.99", "39.99"), Pricing: model.CourseDefault()}}

	first := f.invoices.Issue(items, model.PaymentInfo{}, model.CustomerInfo{})
	second := f.invoices.Issue(items, model.PaymentInfo{}, model.CustomerInfo{})

	year := time.Now().Year()
	if !strings.HasSuffix(first.InvoiceNumber, "-00001") || !strings.HasPrefix(first.InvoiceNumber, "NL-") ||
		!strings.Contains(first.InvoiceNumber, "-"+strconv.Itoa(year)+"-") {
		t.Fatalf("unexpected number %q", first.InvoiceNumber)
	}
	if !strings.HasSuffix(second.InvoiceNumber, "-00002") {
		t.Fatalf("unexpected number %q", second.InvoiceNumber)
	}
	if n := len(f.invoices.List()); n != 2 {
		t.Fatalf("expected 2 invoices, got %d", n)
	}

	got, err := f.invoices.GetByNumber(second.InvoiceNumber)
	if err != nil || got.ID != second.ID {
		t.Fatalf("get by number: %+v %v", got, err)
	}

	if err := f.invoices.Delete(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := f.invoices.Delete(first.ID); !errors.Is(err, util.ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestIssueSurvivesStorageFailure(t *testing.T) {
	f := newFixture(t)
	f.repos.Medium.FailWrites(util.KeyInvoices)
	items := []model.CartItem{{Course: testutil.Course(t, "7", "4.99", "39.99"), Pricing: model.CourseDefault()}}

	inv := f.invoices.Issue(items, model.PaymentInfo{}, model.CustomerInfo{})
	if inv.ID == "" || !inv.Total.Equal(testutil.Money(t, "4.99")) {
		t.Fatalf("invoice should still be returned: %+v", inv)
	}
	if len(f.invoices.List()) != 0 {
		t.Fatalf("invoice should not be listed when the save failed")
	}
}

func TestFormatInvoiceDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 14, 5, 0, 0, time.UTC)
	if got := service.FormatInvoiceDate(d); got != "5 de marzo de 2024, 14:05" {
		t.Fatalf("got %q", got)
	}
}
