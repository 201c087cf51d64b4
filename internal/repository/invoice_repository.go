package repository

import (
	"fmt"
	"math/rand"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/store"
	"nextlevel_lms/internal/util"
	"nextlevel_lms/pkg/logger"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// InvoiceRepository keeps issued invoices under their own key, apart from lms_data,
// together with the counter behind invoice numbers.
type InvoiceRepository struct {
	Store  *store.Store
	Prefix string
}

func NewInvoiceRepository(s *store.Store, prefix string) *InvoiceRepository {
	return &InvoiceRepository{Store: s, Prefix: prefix}
}

// NextNumber increments the persisted counter and formats "<prefix>-<year>-<counter:05d>".
// The counter is never reset when the year changes. If the new counter cannot be
// stored a random five digit suffix is used instead, so that number may repeat.
func (r *InvoiceRepository) NextNumber(year int) string {
	var number string
	r.Store.Locked(func() {
		current := 0
		if raw, ok := r.Store.ReadRaw(util.KeyInvoiceCounter); ok {
			current = util.MustParseInt(strings.TrimSpace(raw))
		}
		next := current + 1

		if !r.Store.WriteRaw(util.KeyInvoiceCounter, strconv.Itoa(next)) {
			next = rand.Intn(100000)
			logger.Log.Warn("Invoice counter not persisted, using random number",
				zap.Int("number", next),
			)
		}
		number = fmt.Sprintf("%s-%d-%05d", r.Prefix, year, next)
	})
	return number
}

func (r *InvoiceRepository) All() []model.Invoice {
	return store.ReadList[model.Invoice](r.Store, util.KeyInvoices)
}

// Save appends the invoice and reports whether it reached the medium.
func (r *InvoiceRepository) Save(invoice model.Invoice) bool {
	saved, _ := store.UpdateList(r.Store, util.KeyInvoices, func(items []model.Invoice) ([]model.Invoice, error) {
		return append(items, invoice), nil
	})
	return saved
}

func (r *InvoiceRepository) FindByID(id string) (*model.Invoice, error) {
	for _, inv := range r.All() {
		if inv.ID == id {
			return &inv, nil
		}
	}
	return nil, util.ErrInvoiceNotFound
}

func (r *InvoiceRepository) FindByNumber(number string) (*model.Invoice, error) {
	for _, inv := range r.All() {
		if inv.InvoiceNumber == number {
			return &inv, nil
		}
	}
	return nil, util.ErrInvoiceNotFound
}

// Delete removes the invoice with the given id. A missing id is not an error.
func (r *InvoiceRepository) Delete(id string) bool {
	saved, _ := store.UpdateList(r.Store, util.KeyInvoices, func(items []model.Invoice) ([]model.Invoice, error) {
		out := make([]model.Invoice, 0, len(items))
		for _, inv := range items {
			if inv.ID != id {
				out = append(out, inv)
			}
		}
		return out, nil
	})
	return saved
}
