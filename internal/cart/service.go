package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
	"github.com/edutorres-dev/BellaVitta/pkg/money"
)

type priceResolver interface {
	PriceFor(ctx context.Context, name string, size enums.PizzaSize) (decimal.Decimal, error)
}

// View is the grouped cart the storefront renders.
type View struct {
	Items []GroupedLine `json:"itens"`
	Total string        `json:"valor_total"`
	Count int           `json:"quantidade"`
}

// Service exposes cart mutations for the authenticated customer.
type Service interface {
	View(ctx context.Context, customerID string) (View, error)
	AddItem(ctx context.Context, customerID, flavor string, size enums.PizzaSize) (View, error)
	RemoveOne(ctx context.Context, customerID, flavor string, unitPrice decimal.Decimal) (View, error)
	Clear(ctx context.Context, customerID string) error
	Snapshot(ctx context.Context, customerID string) (*Cart, error)
}

type service struct {
	store  *Store
	prices priceResolver
	logg   *logger.Logger
}

// NewService builds the cart service.
func NewService(store *Store, prices priceResolver, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if prices == nil {
		return nil, fmt.Errorf("price resolver required")
	}
	return &service{store: store, prices: prices, logg: logg}, nil
}

func (s *service) View(ctx context.Context, customerID string) (View, error) {
	cart, err := s.store.Load(ctx, customerID)
	if err != nil {
		return View{}, err
	}
	return buildView(cart), nil
}

// AddItem resolves the tier price, stages the selection, and confirms it into
// the cart in one round trip.
func (s *service) AddItem(ctx context.Context, customerID, flavor string, size enums.PizzaSize) (View, error) {
	price, err := s.prices.PriceFor(ctx, flavor, size)
	if err != nil {
		return View{}, err
	}

	cart, err := s.store.Load(ctx, customerID)
	if err != nil {
		return View{}, err
	}

	cart.SelectItem(flavor, size, price)
	if err := cart.ConfirmSelection(); err != nil {
		return View{}, err
	}

	if err := s.store.Save(ctx, customerID, cart); err != nil {
		return View{}, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"sabor":   flavor,
			"tamanho": string(size),
			"itens":   cart.Count(),
		}), "cart.item_added")
	}
	return buildView(cart), nil
}

func (s *service) RemoveOne(ctx context.Context, customerID, flavor string, unitPrice decimal.Decimal) (View, error) {
	cart, err := s.store.Load(ctx, customerID)
	if err != nil {
		return View{}, err
	}

	if cart.RemoveOne(flavor, unitPrice) {
		if err := s.store.Save(ctx, customerID, cart); err != nil {
			return View{}, err
		}
	}
	return buildView(cart), nil
}

func (s *service) Clear(ctx context.Context, customerID string) error {
	return s.store.Clear(ctx, customerID)
}

// Snapshot returns the raw cart for the checkout flow.
func (s *service) Snapshot(ctx context.Context, customerID string) (*Cart, error) {
	return s.store.Load(ctx, customerID)
}

func buildView(cart *Cart) View {
	return View{
		Items: cart.GroupedView(),
		Total: money.Format(cart.Total()),
		Count: cart.Count(),
	}
}
