package review

import (
	"context"
	"errors"
	"fmt"
	"testing"

	reviewRepo "allservices/database/repository/review"
	serviceRepo "allservices/database/repository/service"
	"allservices/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeReviewRepo is an in-memory ReviewRepository enforcing the
// one-review-per-booking constraint the way the unique index does.
type fakeReviewRepo struct {
	reviews map[string]*models.Review
	nextID  int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (r *fakeReviewRepo) Create(ctx context.Context, rev *models.Review) error {
	for _, existing := range r.reviews {
		if existing.BookingID == rev.BookingID {
			return reviewRepo.ErrDuplicateBooking
		}
	}
	if rev.ID == "" {
		r.nextID++
		rev.ID = fmt.Sprintf("rev-%d", r.nextID)
	}
	cp := *rev
	r.reviews[rev.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	cp := *rev
	return &cp, nil
}

func (r *fakeReviewRepo) ListByService(ctx context.Context, serviceID string) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.ServiceID == serviceID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.ProviderID == providerID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, id string, fields bson.M) error {
	rev, ok := r.reviews[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "rating":
			rev.Rating = v.(int)
		case "comment":
			rev.Comment = v.(string)
		case "workQuality":
			rev.WorkQuality = v.(int)
		case "communication":
			rev.Communication = v.(int)
		case "punctuality":
			rev.Punctuality = v.(int)
		case "images":
			rev.Images = v.([]string)
		case "isAnonymous":
			rev.IsAnonymous = v.(bool)
		}
	}
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) IncrementHelpful(ctx context.Context, id string) (*models.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	rev.Helpful++
	cp := *rev
	return &cp, nil
}

// fakeBookingRepo serves bookings by ID; the review ledger only reads.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	m := make(map[string]*models.Booking)
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) SetStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	return nil, nil
}

// aggregate captures an UpdateAggregateRating write.
type aggregate struct {
	rating float64
	total  int
}

// fakeServiceRepo records aggregate writes per service ID.
type fakeServiceRepo struct {
	aggregates map[string]aggregate
	writes     int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{aggregates: make(map[string]aggregate)}
}

func (r *fakeServiceRepo) Create(ctx context.Context, s *models.Service) error { return nil }

func (r *fakeServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) List(ctx context.Context, f serviceRepo.Filter) ([]models.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) ListByCategory(ctx context.Context, category string) ([]models.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) Search(ctx context.Context, keyword string) ([]models.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, id string, fields bson.M) error { return nil }

func (r *fakeServiceRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeServiceRepo) UpdateAggregateRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	r.aggregates[id] = aggregate{rating: rating, total: totalReviews}
	r.writes++
	return nil
}

// fakeUserRepo records aggregate writes per user ID.
type fakeUserRepo struct {
	aggregates map[string]aggregate
	writes     int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{aggregates: make(map[string]aggregate)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error { return nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListProviders(ctx context.Context) ([]models.User, error) { return nil, nil }

func (r *fakeUserRepo) Update(ctx context.Context, id string, fields bson.M) error { return nil }

func (r *fakeUserRepo) UpdateAggregateRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	r.aggregates[id] = aggregate{rating: rating, total: totalReviews}
	r.writes++
	return nil
}

type testEnv struct {
	svc      *DefaultReviewService
	reviews  *fakeReviewRepo
	services *fakeServiceRepo
	users    *fakeUserRepo
}

// newTestEnv wires a review service around one completed booking
// (bk-done, client-1, svc-1, prov-1) and one pending booking (bk-open).
func newTestEnv() *testEnv {
	reviews := newFakeReviewRepo()
	services := newFakeServiceRepo()
	users := newFakeUserRepo()
	bookings := newFakeBookingRepo(
		&models.Booking{
			ID:         "bk-done",
			ServiceID:  "svc-1",
			ClientID:   "client-1",
			ProviderID: "prov-1",
			Status:     models.BookingCompleted,
		},
		&models.Booking{
			ID:         "bk-open",
			ServiceID:  "svc-1",
			ClientID:   "client-1",
			ProviderID: "prov-1",
			Status:     models.BookingPending,
		},
	)

	return &testEnv{
		svc: &DefaultReviewService{
			Repo:        reviews,
			BookingRepo: bookings,
			ServiceRepo: services,
			UserRepo:    users,
		},
		reviews:  reviews,
		services: services,
		users:    users,
	}
}

func validReviewInput() CreateInput {
	return CreateInput{
		ServiceID: "svc-1",
		BookingID: "bk-done",
		Rating:    5,
		Comment:   "great work",
	}
}

func TestCreateCopiesProviderFromBooking(t *testing.T) {
	env := newTestEnv()

	rev, err := env.svc.Create(context.Background(), "client-1", validReviewInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rev.ProviderID != "prov-1" {
		t.Fatalf("expected provider prov-1, got %q", rev.ProviderID)
	}
	if rev.ClientID != "client-1" {
		t.Fatalf("expected client client-1, got %q", rev.ClientID)
	}
}

func TestCreateRequiresCompletedBooking(t *testing.T) {
	env := newTestEnv()

	input := validReviewInput()
	input.BookingID = "bk-open"
	if _, err := env.svc.Create(context.Background(), "client-1", input); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for pending booking, got %v", err)
	}
}

func TestCreateRequiresBookingClient(t *testing.T) {
	env := newTestEnv()

	if _, err := env.svc.Create(context.Background(), "client-2", validReviewInput()); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for non-client, got %v", err)
	}
}

func TestCreateRejectsServiceMismatch(t *testing.T) {
	env := newTestEnv()

	input := validReviewInput()
	input.ServiceID = "svc-other"
	if _, err := env.svc.Create(context.Background(), "client-1", input); !errors.Is(err, ErrServiceMismatch) {
		t.Fatalf("expected ErrServiceMismatch, got %v", err)
	}
}

func TestCreateRejectsSecondReviewForBooking(t *testing.T) {
	env := newTestEnv()

	if _, err := env.svc.Create(context.Background(), "client-1", validReviewInput()); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, err := env.svc.Create(context.Background(), "client-1", validReviewInput()); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
}

func TestCreateRejectsOutOfRangeRatings(t *testing.T) {
	env := newTestEnv()

	input := validReviewInput()
	input.Rating = 6
	if _, err := env.svc.Create(context.Background(), "client-1", input); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating for rating 6, got %v", err)
	}

	input = validReviewInput()
	input.WorkQuality = 9
	if _, err := env.svc.Create(context.Background(), "client-1", input); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating for sub-score 9, got %v", err)
	}
}

func TestCreateRejectsUnknownBooking(t *testing.T) {
	env := newTestEnv()

	input := validReviewInput()
	input.BookingID = "bk-missing"
	if _, err := env.svc.Create(context.Background(), "client-1", input); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestUpdateIsAuthorOnly(t *testing.T) {
	env := newTestEnv()

	rev, err := env.svc.Create(context.Background(), "client-1", validReviewInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newComment := "edited"
	if _, err := env.svc.Update(context.Background(), rev.ID, "client-2", UpdateInput{Comment: &newComment}); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}

	updated, err := env.svc.Update(context.Background(), rev.ID, "client-1", UpdateInput{Comment: &newComment})
	if err != nil {
		t.Fatalf("author update returned error: %v", err)
	}
	if updated.Comment != "edited" {
		t.Fatalf("expected edited comment, got %q", updated.Comment)
	}
}

func TestDeleteIsAuthorOnly(t *testing.T) {
	env := newTestEnv()

	rev, err := env.svc.Create(context.Background(), "client-1", validReviewInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := env.svc.Delete(context.Background(), rev.ID, "client-2"); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}
	if err := env.svc.Delete(context.Background(), rev.ID, "client-1"); err != nil {
		t.Fatalf("author delete returned error: %v", err)
	}
	if _, err := env.svc.GetByID(context.Background(), rev.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound after delete, got %v", err)
	}
}

func TestMarkHelpfulIncrementsCounter(t *testing.T) {
	env := newTestEnv()

	rev, err := env.svc.Create(context.Background(), "client-1", validReviewInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	bumped, err := env.svc.MarkHelpful(context.Background(), rev.ID)
	if err != nil {
		t.Fatalf("MarkHelpful returned error: %v", err)
	}
	if bumped.Helpful != 1 {
		t.Fatalf("expected helpful=1, got %d", bumped.Helpful)
	}

	bumped, err = env.svc.MarkHelpful(context.Background(), rev.ID)
	if err != nil {
		t.Fatalf("MarkHelpful returned error: %v", err)
	}
	if bumped.Helpful != 2 {
		t.Fatalf("expected helpful=2, got %d", bumped.Helpful)
	}
}
