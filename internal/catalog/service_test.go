package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
)

type stubRepo struct {
	Repository
	products []models.Product
	listErr  error
	findErr  error
}

func (s *stubRepo) List(context.Context) ([]models.Product, error) {
	return s.products, s.listErr
}

func (s *stubRepo) FindByName(_ context.Context, name string) (*models.Product, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for i := range s.products {
		if s.products[i].Name == name {
			return &s.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestMenuServesStoredCatalog(t *testing.T) {
	repo := &stubRepo{products: []models.Product{{ID: uuid.New(), Name: "Quatro Queijos"}}}
	svc, err := NewService(repo, nil)
	require.NoError(t, err)

	view := svc.Menu(context.Background())
	assert.False(t, view.FromFallback)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Quatro Queijos", view.Items[0].Name)
}

func TestMenuFallsBackOnStorageFailure(t *testing.T) {
	repo := &stubRepo{listErr: errors.New("connection refused")}
	svc, err := NewService(repo, nil)
	require.NoError(t, err)

	view := svc.Menu(context.Background())
	assert.True(t, view.FromFallback)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Calabresa", view.Items[0].Name)
	assert.Equal(t, "Marguerita", view.Items[1].Name)
	assert.True(t, view.Items[0].PriceLarge.Equal(decimal.NewFromInt(75)))
	assert.True(t, view.Items[1].PriceMedium.Equal(decimal.NewFromInt(58)))
}

func TestMenuFallsBackOnEmptyCatalog(t *testing.T) {
	svc, err := NewService(&stubRepo{}, nil)
	require.NoError(t, err)

	view := svc.Menu(context.Background())
	assert.True(t, view.FromFallback)
	assert.Len(t, view.Items, 2)
}

func TestPriceForResolvesTier(t *testing.T) {
	repo := &stubRepo{products: []models.Product{{
		Name:        "Calabresa",
		PriceSmall:  decimal.NewFromInt(30),
		PriceMedium: decimal.NewFromInt(55),
		PriceLarge:  decimal.NewFromInt(75),
	}}}
	svc, err := NewService(repo, nil)
	require.NoError(t, err)

	price, err := svc.PriceFor(context.Background(), "Calabresa", enums.PizzaSizeMedium)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(55)))
}

func TestPriceForUnknownFlavor(t *testing.T) {
	svc, err := NewService(&stubRepo{}, nil)
	require.NoError(t, err)

	_, err = svc.PriceFor(context.Background(), "Portuguesa", enums.PizzaSizeLarge)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestPriceForFallbackWhenStorageDown(t *testing.T) {
	repo := &stubRepo{findErr: errors.New("connection refused")}
	svc, err := NewService(repo, nil)
	require.NoError(t, err)

	price, err := svc.PriceFor(context.Background(), "Marguerita", enums.PizzaSizeSmall)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(32)))
}

func TestPriceForInvalidSize(t *testing.T) {
	svc, err := NewService(&stubRepo{}, nil)
	require.NoError(t, err)

	_, err = svc.PriceFor(context.Background(), "Calabresa", enums.PizzaSize("Gigante"))
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateRejectsNonPositivePrices(t *testing.T) {
	svc, err := NewService(&stubRepo{}, nil)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateProductInput{
		Name:        "Portuguesa",
		Image:       "img/portuguesa.png",
		PriceSmall:  decimal.Zero,
		PriceMedium: decimal.NewFromInt(60),
		PriceLarge:  decimal.NewFromInt(80),
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
