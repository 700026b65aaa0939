package user

import (
	"context"
	"errors"
	"testing"

	"allservices/models"
	"allservices/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
)

func init() {
	// Point the auth cache at nothing; writes fail and the service
	// falls back to the stored token hash, which is what we assert.
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListProviders(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.IsProvider() {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id string, fields bson.M) error {
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "tokenHash":
			u.TokenHash = v.(string)
		case "name":
			u.Name = v.(string)
		case "phone":
			u.Phone = v.(string)
		case "address":
			u.Address = v.(models.Address)
		case "profilePhoto":
			u.ProfilePhoto = v.(string)
		case "bio":
			u.Bio = v.(string)
		}
	}
	return nil
}

func (r *fakeUserRepo) UpdateAggregateRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	return nil
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:     "Jordan Reyes",
		Email:    "jordan@example.com",
		Password: "hunter22",
		Role:     models.RoleClient,
		Phone:    "555-0101",
		City:     "Austin",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a signed token")
	}
	if resp.User.Role != models.RoleClient {
		t.Fatalf("expected role client, got %q", resp.User.Role)
	}

	login, err := svc.Authenticate(context.Background(), "jordan@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Fatalf("expected same user, got %q vs %q", login.User.ID, resp.User.ID)
	}

	if _, err := svc.Authenticate(context.Background(), "jordan@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	input := validRegisterInput()
	input.Email = ""
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	input = validRegisterInput()
	input.Role = "admin"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, err := svc.Register(context.Background(), validRegisterInput()); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterStoresTokenHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored := repo.users[resp.User.ID]
	if stored.TokenHash != utils.HashToken(resp.Token) {
		t.Fatalf("stored token hash does not match issued token")
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	bio := "weekend woodworker"
	updated, err := svc.UpdateProfile(context.Background(), resp.User.ID, ProfilePatch{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Bio != bio {
		t.Fatalf("expected bio updated, got %q", updated.Bio)
	}
	if updated.Name != resp.User.Name {
		t.Fatalf("expected name untouched, got %q", updated.Name)
	}
}

func TestGetProviderRejectsClients(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.GetProvider(context.Background(), resp.User.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for client account, got %v", err)
	}
}
