package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	redisclient "github.com/edutorres-dev/BellaVitta/pkg/redis"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", redisclient.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeKV) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeKV) CartKey(customerID string) string {
	return "bv:cart:" + customerID
}

type fakePrices struct{}

func (fakePrices) PriceFor(_ context.Context, name string, size enums.PizzaSize) (decimal.Decimal, error) {
	prices := map[string]map[enums.PizzaSize]int64{
		"Calabresa":  {enums.PizzaSizeSmall: 30, enums.PizzaSizeMedium: 55, enums.PizzaSizeLarge: 75},
		"Marguerita": {enums.PizzaSizeSmall: 32, enums.PizzaSizeMedium: 58, enums.PizzaSizeLarge: 78},
	}
	tiers, ok := prices[name]
	if !ok {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeNotFound, "sabor não encontrado")
	}
	return decimal.NewFromInt(tiers[size]), nil
}

func newTestService(t *testing.T) (Service, *fakeKV) {
	t.Helper()
	kv := newFakeKV()
	store, err := NewStore(kv, time.Hour)
	require.NoError(t, err)
	svc, err := NewService(store, fakePrices{}, nil)
	require.NoError(t, err)
	return svc, kv
}

func TestAddItemPersistsAndGroups(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cust-1", "Calabresa", enums.PizzaSizeLarge)
	require.NoError(t, err)
	view, err := svc.AddItem(ctx, "cust-1", "Calabresa", enums.PizzaSizeLarge)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Qty)
	assert.Equal(t, "R$ 150.00", view.Total)
	assert.Equal(t, 2, view.Count)
}

func TestAddItemUnknownFlavorLeavesCartIntact(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cust-1", "Calabresa", enums.PizzaSizeSmall)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "cust-1", "Portuguesa", enums.PizzaSizeSmall)
	require.Error(t, err)

	view, err := svc.View(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
}

func TestCartsAreIsolatedPerCustomer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cust-1", "Calabresa", enums.PizzaSizeSmall)
	require.NoError(t, err)

	view, err := svc.View(ctx, "cust-2")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Count)
	assert.Equal(t, "R$ 0.00", view.Total)
}

func TestRemoveOneThroughService(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cust-1", "Marguerita", enums.PizzaSizeMedium)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "cust-1", "Marguerita", enums.PizzaSizeMedium)
	require.NoError(t, err)

	view, err := svc.RemoveOne(ctx, "cust-1", "Marguerita", decimal.NewFromInt(58))
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, "R$ 58.00", view.Total)
}

func TestClearEmptiesStore(t *testing.T) {
	svc, kv := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cust-1", "Calabresa", enums.PizzaSizeSmall)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "cust-1"))

	assert.Empty(t, kv.data)

	view, err := svc.View(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Count)
}

func TestStoreLoadRecoversFromCorruptedDocument(t *testing.T) {
	kv := newFakeKV()
	kv.data[kv.CartKey("cust-1")] = "{not json"
	store, err := NewStore(kv, time.Hour)
	require.NoError(t, err)

	cart, err := store.Load(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Count())
}
