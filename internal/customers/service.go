package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
	"github.com/edutorres-dev/BellaVitta/pkg/pagination"
)

// PublicProfile is the customer data safe to return over the API.
type PublicProfile struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"nome"`
	Email   string    `json:"email"`
	Contact string    `json:"contato"`
	IsAdmin bool      `json:"is_admin"`
}

// Service exposes the back-office customer operations.
type Service interface {
	AdminList(ctx context.Context, filters AdminListFilters) (pagination.Page[PublicProfile], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService builds the customers service.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// ToPublicProfile strips credentials from a customer row.
func ToPublicProfile(customer *models.Customer) PublicProfile {
	return PublicProfile{
		ID:      customer.ID,
		Name:    customer.Name,
		Email:   customer.Email,
		Contact: customer.Contact,
		IsAdmin: customer.IsAdmin,
	}
}

func (s *service) AdminList(ctx context.Context, filters AdminListFilters) (pagination.Page[PublicProfile], error) {
	customers, total, err := s.repo.ListAdmin(ctx, filters)
	if err != nil {
		return pagination.Page[PublicProfile]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listando clientes")
	}

	profiles := make([]PublicProfile, 0, len(customers))
	for i := range customers {
		profiles = append(profiles, ToPublicProfile(&customers[i]))
	}
	return pagination.NewPage(profiles, total, filters.Page), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cliente não encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consultando cliente")
	}
	return customer, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removendo cliente")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithCustomerID(ctx, id.String()), "customer.deleted")
	}
	return nil
}
