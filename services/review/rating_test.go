package review

import (
	"context"
	"testing"

	"allservices/models"
	"allservices/utils"
)

func TestMeanRating(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 4},
		{"pair", []int{4, 5}, 4.5},
		{"full range", []int{1, 2, 3, 4, 5}, 3},
	}

	for _, tc := range cases {
		reviews := make([]models.Review, len(tc.ratings))
		for i, r := range tc.ratings {
			reviews[i] = models.Review{Rating: r}
		}
		if got := MeanRating(reviews); got != tc.want {
			t.Fatalf("%s: MeanRating = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func addCompletedBooking(t *testing.T, env *testEnv, id, clientID string) {
	t.Helper()
	err := env.svc.BookingRepo.Create(context.Background(), &models.Booking{
		ID:         id,
		ServiceID:  "svc-1",
		ClientID:   clientID,
		ProviderID: "prov-1",
		Status:     models.BookingCompleted,
	})
	if err != nil {
		t.Fatalf("failed to add booking: %v", err)
	}
}

func TestAggregatesTrackEachReview(t *testing.T) {
	env := newTestEnv()

	input := validReviewInput()
	input.Rating = 4
	if _, err := env.svc.Create(context.Background(), "client-1", input); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if agg := env.services.aggregates["svc-1"]; agg.rating != 4 || agg.total != 1 {
		t.Fatalf("service aggregate after first review = %+v, want {4 1}", agg)
	}
	if agg := env.users.aggregates["prov-1"]; agg.rating != 4 || agg.total != 1 {
		t.Fatalf("provider aggregate after first review = %+v, want {4 1}", agg)
	}

	addCompletedBooking(t, env, "bk-done-2", "client-2")
	input = validReviewInput()
	input.BookingID = "bk-done-2"
	input.Rating = 5
	if _, err := env.svc.Create(context.Background(), "client-2", input); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if agg := env.services.aggregates["svc-1"]; agg.rating != 4.5 || agg.total != 2 {
		t.Fatalf("service aggregate after second review = %+v, want {4.5 2}", agg)
	}
	if agg := env.users.aggregates["prov-1"]; agg.rating != 4.5 || agg.total != 2 {
		t.Fatalf("provider aggregate after second review = %+v, want {4.5 2}", agg)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	env := newTestEnv()

	input := validReviewInput()
	input.Rating = 4
	if _, err := env.svc.Create(context.Background(), "client-1", input); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	addCompletedBooking(t, env, "bk-done-2", "client-2")
	input = validReviewInput()
	input.BookingID = "bk-done-2"
	input.Rating = 5
	if _, err := env.svc.Create(context.Background(), "client-2", input); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	first := env.services.aggregates["svc-1"]
	firstProv := env.users.aggregates["prov-1"]

	// Re-running the recompute with an unchanged review set must land
	// on the same stored aggregate every time.
	for i := 0; i < 2; i++ {
		if err := env.svc.recomputeService(context.Background(), "svc-1"); err != nil {
			t.Fatalf("recomputeService returned error: %v", err)
		}
		if err := env.svc.recomputeProvider(context.Background(), "prov-1"); err != nil {
			t.Fatalf("recomputeProvider returned error: %v", err)
		}
		if agg := env.services.aggregates["svc-1"]; agg != first {
			t.Fatalf("run %d: service aggregate drifted to %+v, want %+v", i+1, agg, first)
		}
		if agg := env.users.aggregates["prov-1"]; agg != firstProv {
			t.Fatalf("run %d: provider aggregate drifted to %+v, want %+v", i+1, agg, firstProv)
		}
	}
}

func TestUpdateRecomputesOnlyWhenRatingChanges(t *testing.T) {
	env := newTestEnv()

	input := validReviewInput()
	input.Rating = 4
	rev, err := env.svc.Create(context.Background(), "client-1", input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	writesAfterCreate := env.services.writes

	// Re-submitting the same rating must not touch the aggregates.
	same := 4
	if _, err := env.svc.Update(context.Background(), rev.ID, "client-1", UpdateInput{Rating: &same}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if env.services.writes != writesAfterCreate {
		t.Fatalf("aggregate rewritten for unchanged rating: %d writes, want %d", env.services.writes, writesAfterCreate)
	}

	lower := 2
	if _, err := env.svc.Update(context.Background(), rev.ID, "client-1", UpdateInput{Rating: &lower}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if agg := env.services.aggregates["svc-1"]; agg.rating != 2 || agg.total != 1 {
		t.Fatalf("service aggregate after re-rate = %+v, want {2 1}", agg)
	}
	if agg := env.users.aggregates["prov-1"]; agg.rating != 2 || agg.total != 1 {
		t.Fatalf("provider aggregate after re-rate = %+v, want {2 1}", agg)
	}
}

func TestDeleteResetsAggregatesWhenLastReviewGoes(t *testing.T) {
	env := newTestEnv()

	rev, err := env.svc.Create(context.Background(), "client-1", validReviewInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := env.svc.Delete(context.Background(), rev.ID, "client-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if agg := env.services.aggregates["svc-1"]; agg.rating != 0 || agg.total != 0 {
		t.Fatalf("service aggregate after delete = %+v, want {0 0}", agg)
	}
	if agg := env.users.aggregates["prov-1"]; agg.rating != 0 || agg.total != 0 {
		t.Fatalf("provider aggregate after delete = %+v, want {0 0}", agg)
	}
}

// recordingLocker captures the keys recomputes lock on.
type recordingLocker struct {
	keys []string
}

func (l *recordingLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	l.keys = append(l.keys, key)
	return fn(ctx)
}

func TestRecomputesLockPerEntity(t *testing.T) {
	env := newTestEnv()
	locker := &recordingLocker{}
	env.svc.Locker = locker

	if _, err := env.svc.Create(context.Background(), "client-1", validReviewInput()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	want := []string{"rating:service:svc-1", "rating:provider:prov-1"}
	if len(locker.keys) != len(want) {
		t.Fatalf("locked keys = %v, want %v", locker.keys, want)
	}
	for i, key := range want {
		if locker.keys[i] != key {
			t.Fatalf("locked keys = %v, want %v", locker.keys, want)
		}
	}
}

// busyLocker always reports the lock as held elsewhere.
type busyLocker struct{}

func (busyLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	return utils.ErrLockNotAcquired
}

func TestRecomputeFallsBackWhenLockBusy(t *testing.T) {
	env := newTestEnv()
	env.svc.Locker = busyLocker{}

	if _, err := env.svc.Create(context.Background(), "client-1", validReviewInput()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// The recompute still lands even though the lock was never held.
	if agg := env.services.aggregates["svc-1"]; agg.rating != 5 || agg.total != 1 {
		t.Fatalf("service aggregate = %+v, want {5 1}", agg)
	}
}
