package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/edutorres-dev/BellaVitta/api/middleware"
	authsvc "github.com/edutorres-dev/BellaVitta/internal/auth"
	"github.com/edutorres-dev/BellaVitta/internal/customers"
	ordersvc "github.com/edutorres-dev/BellaVitta/internal/orders"
	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/pagination"
)

type stubOrdersService struct {
	result   *ordersvc.CheckoutResult
	err      error
	gotInput ordersvc.CheckoutInput
}

func (s *stubOrdersService) Checkout(_ context.Context, input ordersvc.CheckoutInput) (*ordersvc.CheckoutResult, error) {
	s.gotInput = input
	return s.result, s.err
}

func (s *stubOrdersService) Get(context.Context, uuid.UUID) (*models.Order, error) {
	return nil, nil
}

func (s *stubOrdersService) AdminList(context.Context, ordersvc.AdminListFilters) (pagination.Page[models.Order], error) {
	return pagination.Page[models.Order]{}, nil
}

func (s *stubOrdersService) UpdateStatus(context.Context, uuid.UUID, string) (*models.Order, error) {
	return nil, nil
}

type stubAuthService struct {
	profile customers.PublicProfile
	err     error
}

func (s *stubAuthService) Register(context.Context, authsvc.RegisterInput) (*authsvc.Session, error) {
	return nil, nil
}

func (s *stubAuthService) Login(context.Context, authsvc.LoginInput) (*authsvc.Session, error) {
	return nil, nil
}

func (s *stubAuthService) Refresh(context.Context, string, string) (*authsvc.Session, error) {
	return nil, nil
}

func (s *stubAuthService) Logout(context.Context, string) error {
	return nil
}

func (s *stubAuthService) Profile(context.Context, uuid.UUID) (customers.PublicProfile, error) {
	return s.profile, s.err
}

func (s *stubAuthService) UpdateContact(context.Context, uuid.UUID, authsvc.UpdateContactInput) (customers.PublicProfile, error) {
	return s.profile, nil
}

func (s *stubAuthService) UpdatePassword(context.Context, uuid.UUID, authsvc.UpdatePasswordInput) error {
	return nil
}

func (s *stubAuthService) DeleteAccount(context.Context, uuid.UUID) error {
	return nil
}

const checkoutBody = `{
	"descricao_pedido": "2x Calabresa (Grande) – R$ 150.00",
	"valor_total": "R$ 150.00",
	"endereco": "Rua das Flores, 123, casa 2, 01001-000",
	"metodo_pagamento": "Pix"
}`

func TestCheckoutUsesStoredProfileContact(t *testing.T) {
	customerID := uuid.New()
	orders := &stubOrdersService{result: &ordersvc.CheckoutResult{OrderID: uuid.NewString(), Status: "confirmado"}}
	auth := &stubAuthService{profile: customers.PublicProfile{
		ID:      customerID,
		Name:    "Maria Silva",
		Contact: "5511987654321",
	}}
	handler := Checkout(orders, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithCustomerID(req.Context(), customerID.String()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if orders.gotInput.CustomerContact != "5511987654321" {
		t.Fatalf("expected stored contact, got %q", orders.gotInput.CustomerContact)
	}
	if orders.gotInput.CustomerName != "Maria Silva" {
		t.Fatalf("expected stored name, got %q", orders.gotInput.CustomerName)
	}

	var envelope struct {
		Data ordersvc.CheckoutResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != "confirmado" {
		t.Fatalf("unexpected status: %s", envelope.Data.Status)
	}
}

func TestCheckoutRejectsUnauthenticated(t *testing.T) {
	handler := Checkout(&stubOrdersService{}, &stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCheckoutBubblesGateRejection(t *testing.T) {
	orders := &stubOrdersService{err: pkgerrors.New(pkgerrors.CodeValidation, "pedido inválido").
		WithDetails(map[string]string{"endereco": "formato inválido"})}
	auth := &stubAuthService{profile: customers.PublicProfile{Name: "Maria", Contact: "5511987654321"}}
	handler := Checkout(orders, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithCustomerID(req.Context(), uuid.NewString()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
