package customers

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	"github.com/edutorres-dev/BellaVitta/pkg/pagination"
)

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Contact:      "5511987654321",
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Customer{
		ID:           uuid.New(),
		Name:         "Maria Silva",
		Email:        "maria@example.com",
		Contact:      "5511987654321",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	byEmail, err := repo.FindByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", byID.Name)
}

func TestRepositoryDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedCustomer(t, db, "Maria", "maria@example.com")
	_, err := repo.Create(ctx, &models.Customer{
		ID:           uuid.New(),
		Name:         "Outra Maria",
		Email:        "maria@example.com",
		Contact:      "5511987654321",
		PasswordHash: "hash",
	})
	assert.Error(t, err)
}

func TestRepositoryListAdminFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedCustomer(t, db, "Maria Silva", "maria@example.com")
	seedCustomer(t, db, "João Souza", "joao@example.com")

	byName, total, err := repo.ListAdmin(ctx, AdminListFilters{Name: "Maria"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byName, 1)
	assert.Equal(t, "Maria Silva", byName[0].Name)

	byEmail, total, err := repo.ListAdmin(ctx, AdminListFilters{Email: "example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, byEmail, 2)
}

func TestRepositoryListAdminPagination(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for i := 0; i < 11; i++ {
		seedCustomer(t, db, "Cliente", fmt.Sprintf("cliente%d@example.com", i))
	}

	page2, total, err := repo.ListAdmin(ctx, AdminListFilters{Page: pagination.Params{Page: 2, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.Len(t, page2, 1)
}

func TestRepositoryDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Maria", "maria@example.com")
	require.NoError(t, repo.Delete(ctx, customer.ID))

	_, err := repo.FindByID(ctx, customer.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
