package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	authsvc "github.com/edutorres-dev/BellaVitta/internal/auth"
	cartsvc "github.com/edutorres-dev/BellaVitta/internal/cart"
	catalogsvc "github.com/edutorres-dev/BellaVitta/internal/catalog"
	customersvc "github.com/edutorres-dev/BellaVitta/internal/customers"
	financesvc "github.com/edutorres-dev/BellaVitta/internal/finance"
	ordersvc "github.com/edutorres-dev/BellaVitta/internal/orders"
	pkgauth "github.com/edutorres-dev/BellaVitta/pkg/auth"
	"github.com/edutorres-dev/BellaVitta/pkg/config"
	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
	"github.com/edutorres-dev/BellaVitta/pkg/pagination"
	"github.com/edutorres-dev/BellaVitta/pkg/redis"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(context.Context, string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Register(context.Context, authsvc.RegisterInput) (*authsvc.Session, error) {
	return &authsvc.Session{}, nil
}

func (stubAuthService) Login(context.Context, authsvc.LoginInput) (*authsvc.Session, error) {
	return &authsvc.Session{}, nil
}

func (stubAuthService) Refresh(context.Context, string, string) (*authsvc.Session, error) {
	return &authsvc.Session{}, nil
}

func (stubAuthService) Logout(context.Context, string) error {
	return nil
}

func (stubAuthService) Profile(context.Context, uuid.UUID) (customersvc.PublicProfile, error) {
	return customersvc.PublicProfile{}, nil
}

func (stubAuthService) UpdateContact(context.Context, uuid.UUID, authsvc.UpdateContactInput) (customersvc.PublicProfile, error) {
	return customersvc.PublicProfile{}, nil
}

func (stubAuthService) UpdatePassword(context.Context, uuid.UUID, authsvc.UpdatePasswordInput) error {
	return nil
}

func (stubAuthService) DeleteAccount(context.Context, uuid.UUID) error {
	return nil
}

type stubCatalogService struct{}

func (stubCatalogService) Menu(context.Context) catalogsvc.MenuView {
	return catalogsvc.MenuView{}
}

func (stubCatalogService) PriceFor(context.Context, string, enums.PizzaSize) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (stubCatalogService) Get(context.Context, uuid.UUID) (*models.Product, error) {
	return &models.Product{}, nil
}

func (stubCatalogService) ListPage(context.Context, pagination.Params) (pagination.Page[models.Product], error) {
	return pagination.Page[models.Product]{}, nil
}

func (stubCatalogService) Create(context.Context, catalogsvc.CreateProductInput) (*models.Product, error) {
	return &models.Product{}, nil
}

func (stubCatalogService) Update(context.Context, catalogsvc.UpdateProductInput) (*models.Product, error) {
	return &models.Product{}, nil
}

func (stubCatalogService) Delete(context.Context, uuid.UUID) error {
	return nil
}

type stubCartService struct{}

func (stubCartService) View(context.Context, string) (cartsvc.View, error) {
	return cartsvc.View{}, nil
}

func (stubCartService) AddItem(context.Context, string, string, enums.PizzaSize) (cartsvc.View, error) {
	return cartsvc.View{}, nil
}

func (stubCartService) RemoveOne(context.Context, string, string, decimal.Decimal) (cartsvc.View, error) {
	return cartsvc.View{}, nil
}

func (stubCartService) Clear(context.Context, string) error {
	return nil
}

func (stubCartService) Snapshot(context.Context, string) (*cartsvc.Cart, error) {
	return &cartsvc.Cart{}, nil
}

type stubOrdersService struct{}

func (stubOrdersService) Checkout(context.Context, ordersvc.CheckoutInput) (*ordersvc.CheckoutResult, error) {
	return &ordersvc.CheckoutResult{}, nil
}

func (stubOrdersService) Get(context.Context, uuid.UUID) (*models.Order, error) {
	return &models.Order{}, nil
}

func (stubOrdersService) AdminList(context.Context, ordersvc.AdminListFilters) (pagination.Page[models.Order], error) {
	return pagination.Page[models.Order]{}, nil
}

func (stubOrdersService) UpdateStatus(context.Context, uuid.UUID, string) (*models.Order, error) {
	return &models.Order{}, nil
}

type stubCustomersService struct{}

func (stubCustomersService) AdminList(context.Context, customersvc.AdminListFilters) (pagination.Page[customersvc.PublicProfile], error) {
	return pagination.Page[customersvc.PublicProfile]{}, nil
}

func (stubCustomersService) Get(context.Context, uuid.UUID) (*models.Customer, error) {
	return &models.Customer{}, nil
}

func (stubCustomersService) Delete(context.Context, uuid.UUID) error {
	return nil
}

type stubFinanceService struct{}

func (stubFinanceService) Summary(context.Context, financesvc.Filters) (*financesvc.Summary, error) {
	return &financesvc.Summary{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		(*redis.Client)(nil),
		nil,
		prometheus.NewRegistry(),
		stubSessionChecker{},
		stubAuthService{},
		stubCatalogService{},
		stubCartService{},
		stubOrdersService{},
		stubCustomersService{},
		stubFinanceService{},
	)
}

func buildToken(t *testing.T, cfg *config.Config, role enums.ActorRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		CustomerID: uuid.New(),
		Name:       "Test",
		Role:       role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestPublicSurfaceNeedsNoToken(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, target := range []string{"/health/live", "/api/public/ping", "/api/v1/catalog", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", target, resp.Code)
		}
	}
}

func TestCustomerGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestCustomerGroupSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.ActorRoleCustomer))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}

func TestAdminGroupRequiresAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	customer := httptest.NewRequest(http.MethodGet, "/api/admin/v1/ping", nil)
	customer.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.ActorRoleCustomer))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, customer)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer got %d", resp.Code)
	}

	admin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/ping", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.ActorRoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestFinanceSummaryIsAdminOnly(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/finance/summary?ano=2026", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.ActorRoleCustomer))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer got %d", resp.Code)
	}
}
