package repository_test

import (
	"errors"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/testutil"
	"nextlevel_lms/internal/util"
	"regexp"
	"testing"
)

func TestInvoiceNumbersIncrement(t *testing.T) {
	repos := testutil.NewRepos(t)

	if got := repos.Invoices.NextNumber(2024); got != "NL-2024-00001" {
		t.Fatalf("first number = %q", got)
	}
	if got := repos.Invoices.NextNumber(2024); got != "NL-2024-00002" {
		t.Fatalf("second number = %q", got)
	}
	// The counter carries over a year change.
	if got := repos.Invoices.NextNumber(2025); got != "NL-2025-00003" {
		t.Fatalf("third number = %q", got)
	}
	if raw, _ := repos.Medium.Raw(util.KeyInvoiceCounter); raw != "3" {
		t.Fatalf("stored counter = %q", raw)
	}
}

func TestInvoiceNumberWithMalformedCounter(t *testing.T) {
	repos := testutil.NewRepos(t)
	repos.Medium.Put(util.KeyInvoiceCounter, "abc")

	if got := repos.Invoices.NextNumber(2024); got != "NL-2024-00001" {
		t.Fatalf("malformed counter should count as zero, got %q", got)
	}
}

func TestInvoiceNumberFallsBackWhenCounterNotStored(t *testing.T) {
	repos := testutil.NewRepos(t)
	repos.Medium.FailWrites(util.KeyInvoiceCounter)

	got := repos.Invoices.NextNumber(2024)
	if !regexp.MustCompile(`^NL-2024-\d{5}$`).MatchString(got) {
		t.Fatalf("unexpected fallback number %q", got)
	}
	if _, ok := repos.Medium.Raw(util.KeyInvoiceCounter); ok {
		t.Fatalf("counter should not be stored")
	}
}

func TestInvoiceSaveFindDelete(t *testing.T) {
	repos := testutil.NewRepos(t)
	inv := model.Invoice{ID: "inv_1", InvoiceNumber: "NL-2024-00001", Status: model.InvoicePaid}

	if !repos.Invoices.Save(inv) {
		t.Fatalf("save failed")
	}
	if got, err := repos.Invoices.FindByID("inv_1"); err != nil || got.InvoiceNumber != inv.InvoiceNumber {
		t.Fatalf("find by id: %+v %v", got, err)
	}
	if got, err := repos.Invoices.FindByNumber("NL-2024-00001"); err != nil || got.ID != "inv_1" {
		t.Fatalf("find by number: %+v %v", got, err)
	}

	repos.Invoices.Delete("inv_1")
	if _, err := repos.Invoices.FindByID("inv_1"); !errors.Is(err, util.ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
	if len(repos.Invoices.All()) != 0 {
		t.Fatalf("expected no invoices")
	}
}

func TestInvoiceSaveReportsFailure(t *testing.T) {
	repos := testutil.NewRepos(t)
	repos.Medium.FailWrites(util.KeyInvoices)

	if repos.Invoices.Save(model.Invoice{ID: "inv_1"}) {
		t.Fatalf("save should report the failed write")
	}
}
