package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"marketx/internal/config"
	"marketx/internal/core/auth"
	"marketx/internal/core/product"
	"marketx/internal/domain"
)

const testSecret = "rest-handler-test-secret-key-32!"

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
	failure error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if r.failure != nil {
		return r.failure
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.failure != nil {
		return nil, r.failure
	}
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

type fakeProductRepo struct {
	byID    map[int64]*domain.Product
	nextID  int64
	failure error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[int64]*domain.Product), nextID: 1}
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	if r.failure != nil {
		return nil, r.failure
	}
	var products []*domain.Product
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.byID[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, productID int64) (*domain.Product, error) {
	if r.failure != nil {
		return nil, r.failure
	}
	p, ok := r.byID[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, p *domain.Product) error {
	if r.failure != nil {
		return r.failure
	}
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	r.nextID++
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *domain.Product, productID int64) error {
	if r.failure != nil {
		return r.failure
	}
	// Absent id reports success, mirroring zero-rows-affected semantics.
	if existing, ok := r.byID[productID]; ok {
		existing.Name = p.Name
		existing.Price = p.Price
		existing.ImageURL = p.ImageURL
		existing.Category = p.Category
	}
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, productID int64) error {
	if r.failure != nil {
		return r.failure
	}
	delete(r.byID, productID)
	return nil
}

type testEnv struct {
	router      http.Handler
	tokens      *auth.TokenManager
	userRepo    *fakeUserRepo
	productRepo *fakeProductRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: testSecret,
		JWTExpiry: time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := newFakeUserRepo()
	productRepo := newFakeProductRepo()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	authService := auth.NewService(userRepo, tokens)
	productService := product.NewService(productRepo)

	router := NewRouter(cfg, &RouterDeps{
		Auth:    NewAuthHandler(authService),
		Product: NewProductHandler(productService),
		Tokens:  tokens,
		Log:     log,
	})

	return &testEnv{
		router:      router,
		tokens:      tokens,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}
