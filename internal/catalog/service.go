package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
	"github.com/edutorres-dev/BellaVitta/pkg/pagination"
)

// Service exposes the menu to the storefront and CRUD to the back office.
type Service interface {
	Menu(ctx context.Context) MenuView
	PriceFor(ctx context.Context, name string, size enums.PizzaSize) (decimal.Decimal, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListPage(ctx context.Context, params pagination.Params) (pagination.Page[models.Product], error)
	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, input UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService builds the catalog service.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// Menu returns every pizza on the menu. When the storage lookup fails the
// house fallback menu is served instead so ordering never goes dark.
func (s *service) Menu(ctx context.Context) MenuView {
	products, err := s.repo.List(ctx)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "catalog.fetch_failed_serving_fallback")
		}
		return MenuView{Items: FallbackMenu(), FromFallback: true}
	}
	if len(products) == 0 {
		return MenuView{Items: FallbackMenu(), FromFallback: true}
	}
	return MenuView{Items: products}
}

// PriceFor resolves the unit price for one flavor/size pair, consulting the
// fallback menu when storage is unavailable.
func (s *service) PriceFor(ctx context.Context, name string, size enums.PizzaSize) (decimal.Decimal, error) {
	if !size.IsValid() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "tamanho inválido").
			WithDetails(map[string]any{"tamanho": string(size)})
	}

	name = strings.TrimSpace(name)
	product, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, pkgerrors.New(pkgerrors.CodeNotFound, "sabor não encontrado").
				WithDetails(map[string]any{"sabor": name})
		}
		for _, fallback := range FallbackMenu() {
			if fallback.Name == name {
				return tierPrice(fallback, size), nil
			}
		}
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consultando catálogo")
	}
	return tierPrice(*product, size), nil
}

func tierPrice(product models.Product, size enums.PizzaSize) decimal.Decimal {
	switch size {
	case enums.PizzaSizeSmall:
		return product.PriceSmall
	case enums.PizzaSizeMedium:
		return product.PriceMedium
	default:
		return product.PriceLarge
	}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "produto não encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consultando produto")
	}
	return product, nil
}

func (s *service) ListPage(ctx context.Context, params pagination.Params) (pagination.Page[models.Product], error) {
	products, total, err := s.repo.ListPage(ctx, params)
	if err != nil {
		return pagination.Page[models.Product]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listando produtos")
	}
	return pagination.NewPage(products, total, params), nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if err := validatePrices(input.PriceSmall, input.PriceMedium, input.PriceLarge); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Image:       strings.TrimSpace(input.Image),
		PriceSmall:  input.PriceSmall,
		PriceMedium: input.PriceMedium,
		PriceLarge:  input.PriceLarge,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "criando produto")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, input UpdateProductInput) (*models.Product, error) {
	product, err := s.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Image != nil {
		product.Image = strings.TrimSpace(*input.Image)
	}
	if input.PriceSmall != nil {
		product.PriceSmall = *input.PriceSmall
	}
	if input.PriceMedium != nil {
		product.PriceMedium = *input.PriceMedium
	}
	if input.PriceLarge != nil {
		product.PriceLarge = *input.PriceLarge
	}

	if err := validatePrices(product.PriceSmall, product.PriceMedium, product.PriceLarge); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "atualizando produto")
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removendo produto")
	}
	return nil
}

func validatePrices(small, medium, large decimal.Decimal) error {
	details := map[string]string{}
	if !small.IsPositive() {
		details["preco_pequena"] = "deve ser positivo"
	}
	if !medium.IsPositive() {
		details["preco_media"] = "deve ser positivo"
	}
	if !large.IsPositive() {
		details["preco_grande"] = "deve ser positivo"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "preços inválidos").WithDetails(details)
	}
	return nil
}
