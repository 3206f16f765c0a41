package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
	"github.com/edutorres-dev/BellaVitta/pkg/metrics"
	"github.com/edutorres-dev/BellaVitta/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartCleaner interface {
	Clear(ctx context.Context, customerID string) error
}

type confirmationNotifier interface {
	FormatConfirmation(order *models.Order) string
	Link(contact, text string) string
}

// Service covers the customer checkout flow plus the back-office listing and
// status transitions.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	AdminList(ctx context.Context, filters AdminListFilters) (pagination.Page[models.Order], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*models.Order, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	carts   cartCleaner
	notify  confirmationNotifier
	metrics *metrics.OrderMetrics
	logg    *logger.Logger
}

// NewService builds the orders service.
func NewService(repo Repository, tx txRunner, carts cartCleaner, notify confirmationNotifier, orderMetrics *metrics.OrderMetrics, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart cleaner required")
	}
	if notify == nil {
		return nil, fmt.Errorf("confirmation notifier required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		carts:   carts,
		notify:  notify,
		metrics: orderMetrics,
		logg:    logg,
	}, nil
}

// Checkout runs the submission gate, persists the order in one transaction,
// and only then clears the cart. A failing gate writes nothing.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	valid, err := ValidateSubmission(input.Submission)
	if err != nil {
		s.countRejections(err)
		return nil, err
	}

	order := &models.Order{
		CustomerName:    input.CustomerName,
		CustomerContact: input.CustomerContact,
		Description:     valid.Description,
		OrderedAt:       time.Now(),
		Address:         valid.Address,
		PaymentMethod:   valid.PaymentMethod,
		Total:           valid.Total,
		Status:          enums.OrderStatusConfirmed,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		_, err := s.repo.WithTx(tx).Create(ctx, order)
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "registrando pedido")
	}

	// the order is durable; a cart cleanup failure only costs the customer a
	// stale cart, never a lost order
	if err := s.carts.Clear(ctx, input.CustomerID); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "checkout.cart_clear_failed")
	}

	s.metrics.IncCreated(string(order.PaymentMethod))

	if s.logg != nil {
		logCtx := s.logg.WithOrderID(ctx, order.ID.String())
		logCtx = s.logg.WithField(logCtx, "metodo_pagamento", string(order.PaymentMethod))
		s.logg.Info(logCtx, "order.created")
	}

	message := s.notify.FormatConfirmation(order)
	return &CheckoutResult{
		OrderID:      order.ID.String(),
		Status:       string(order.Status),
		Message:      message,
		WhatsAppLink: s.notify.Link(order.CustomerContact, message),
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pedido não encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consultando pedido")
	}
	return order, nil
}

func (s *service) AdminList(ctx context.Context, filters AdminListFilters) (pagination.Page[models.Order], error) {
	if filters.Status != "" {
		if _, err := enums.ParseOrderStatus(filters.Status); err != nil {
			return pagination.Page[models.Order]{}, pkgerrors.New(pkgerrors.CodeValidation, "status inválido").
				WithDetails(map[string]any{"status": filters.Status})
		}
	}

	orders, total, err := s.repo.ListAdmin(ctx, filters)
	if err != nil {
		return pagination.Page[models.Order]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listando pedidos")
	}
	return pagination.NewPage(orders, total, filters.Page), nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*models.Order, error) {
	status, err := enums.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status inválido").
			WithDetails(map[string]any{"status": rawStatus})
	}

	affected, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "atualizando status")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pedido não encontrado")
	}

	return s.Get(ctx, id)
}

func (s *service) countRejections(err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		return
	}
	if details, ok := typed.Details().(map[string]string); ok {
		for field := range details {
			s.metrics.IncRejected(field)
		}
	}
}
