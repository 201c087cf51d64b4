package store_test

import (
	"encoding/json"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/store"
	"nextlevel_lms/internal/testutil"
	"nextlevel_lms/internal/util"
	"testing"
)

func seedJSON(t *testing.T, medium *testutil.FlakyMedium, key string, v interface{}) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", key, err)
	}
	medium.Put(key, string(b))
}

func TestLegacyCollectionsAreMerged(t *testing.T) {
	medium := testutil.NewFlakyMedium()
	seedJSON(t, medium, util.KeyData, model.Dataset{
		Reviews: []model.Review{{ID: "review-1", CourseID: "7", Rating: 5}},
	})
	seedJSON(t, medium, util.KeyLegacyReviews, []model.Review{
		{ID: "review-1", CourseID: "7", Rating: 1},
		{ID: "review-2", CourseID: "7", Rating: 4},
		{ID: "", CourseID: "7", Rating: 3},
	})
	medium.Put(util.KeyLegacyPayments, `[{"id":"PAG-1","monto":"9.99","metodoPago":"visa","estado":"exitoso"}]`)

	st := store.New(medium)
	data := st.Snapshot()

	if len(data.Reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(data.Reviews))
	}
	if data.Reviews[0].Rating != 5 {
		t.Fatalf("existing review must win over legacy copy, got rating %d", data.Reviews[0].Rating)
	}
	if len(data.Payments) != 1 || data.Payments[0].Method != model.MethodVisa {
		t.Fatalf("expected migrated visa payment, got %+v", data.Payments)
	}
	if _, ok := medium.Raw(util.KeyLegacyReviews); ok {
		t.Fatalf("legacy reviews key should be removed")
	}
	if _, ok := medium.Raw(util.KeyLegacyPayments); ok {
		t.Fatalf("legacy payments key should be removed")
	}

	persisted := store.New(medium).Snapshot()
	if len(persisted.Reviews) != 2 || len(persisted.Payments) != 1 {
		t.Fatalf("merged data not persisted: %+v", persisted)
	}
}

func TestLegacyKeysKeptWhenSaveFails(t *testing.T) {
	medium := testutil.NewFlakyMedium()
	seedJSON(t, medium, util.KeyLegacyReviews, []model.Review{{ID: "review-1", CourseID: "7", Rating: 4}})
	medium.FailWrites(util.KeyData)

	st := store.New(medium)
	if n := len(st.Snapshot().Reviews); n != 1 {
		t.Fatalf("expected migrated review in memory, got %d", n)
	}
	if _, ok := medium.Raw(util.KeyLegacyReviews); !ok {
		t.Fatalf("legacy key must survive a failed save")
	}
}

func TestMalformedLegacyKeyIsLeftAlone(t *testing.T) {
	medium := testutil.NewFlakyMedium()
	medium.Put(util.KeyLegacyPayments, "not json")

	st := store.New(medium)
	if n := len(st.Snapshot().Payments); n != 0 {
		t.Fatalf("expected no payments, got %d", n)
	}
	if raw, ok := medium.Raw(util.KeyLegacyPayments); !ok || raw != "not json" {
		t.Fatalf("malformed legacy key should stay untouched")
	}
}
