package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edutorres-dev/BellaVitta/internal/customers"
	pkgauth "github.com/edutorres-dev/BellaVitta/pkg/auth"
	"github.com/edutorres-dev/BellaVitta/pkg/auth/session"
	"github.com/edutorres-dev/BellaVitta/pkg/config"
	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
	"github.com/edutorres-dev/BellaVitta/pkg/security"
)

// contactPattern requires an internationally dialable BR mobile:
// 55 + DDD + 9-digit number.
var contactPattern = regexp.MustCompile(`^55[1-9]{2}9\d{8}$`)

type customerStore interface {
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// Service covers registration, login, token refresh, and profile upkeep.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, input LoginInput) (*Session, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (*Session, error)
	Logout(ctx context.Context, accessID string) error
	Profile(ctx context.Context, customerID uuid.UUID) (customers.PublicProfile, error)
	UpdateContact(ctx context.Context, customerID uuid.UUID, input UpdateContactInput) (customers.PublicProfile, error)
	UpdatePassword(ctx context.Context, customerID uuid.UUID, input UpdatePasswordInput) error
	DeleteAccount(ctx context.Context, customerID uuid.UUID) error
}

type service struct {
	store       customerStore
	sessions    sessionManager
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
}

// NewService builds the auth service.
func NewService(store customerStore, sessions sessionManager, jwtCfg config.JWTConfig, passwordCfg config.PasswordConfig, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("customer store required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	return &service{
		store:       store,
		sessions:    sessions,
		jwtCfg:      jwtCfg,
		passwordCfg: passwordCfg,
		logg:        logg,
	}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	contact := strings.TrimSpace(input.Contact)

	details := map[string]string{}
	if !contactPattern.MatchString(contact) {
		details["contato"] = "Use o formato 55 + DDD + número. Ex: 5511987654321"
	}
	if err := security.ValidatePasswordRules(input.Password); err != nil {
		details["senha"] = err.Error()
	}
	if len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cadastro inválido").WithDetails(details)
	}

	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email já cadastrado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consultando cadastro")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "protegendo senha")
	}

	customer, err := s.store.Create(ctx, &models.Customer{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Contact:      contact,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "criando cadastro")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithCustomerID(ctx, customer.ID.String()), "auth.registered")
	}
	return s.openSession(ctx, customer)
}

func (s *service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	customer, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "credenciais inválidas")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consultando cadastro")
	}

	ok, err := security.VerifyPassword(input.Password, customer.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "credenciais inválidas")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithCustomerID(ctx, customer.ID.String()), "auth.logged_in")
	}
	return s.openSession(ctx, customer)
}

// Refresh rotates the refresh token bound to an access token's jti and mints
// a fresh pair. The access token may already be expired.
func (s *service) Refresh(ctx context.Context, accessToken, refreshToken string) (*Session, error) {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, accessToken)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "token inválido")
	}

	newAccessID, newRefreshToken, err := s.sessions.Rotate(ctx, claims.ID, refreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sessão expirada")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "renovando sessão")
	}

	customer, err := s.store.FindByID(ctx, claims.CustomerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "cadastro indisponível")
	}

	signed, err := s.mintToken(customer, newAccessID)
	if err != nil {
		return nil, err
	}
	return &Session{
		AccessToken:  signed,
		RefreshToken: newRefreshToken,
		Customer:     customers.ToPublicProfile(customer),
	}, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "encerrando sessão")
	}
	return nil
}

func (s *service) Profile(ctx context.Context, customerID uuid.UUID) (customers.PublicProfile, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return customers.PublicProfile{}, err
	}
	return customers.ToPublicProfile(customer), nil
}

func (s *service) UpdateContact(ctx context.Context, customerID uuid.UUID, input UpdateContactInput) (customers.PublicProfile, error) {
	contact := strings.TrimSpace(input.Contact)
	if !contactPattern.MatchString(contact) {
		return customers.PublicProfile{}, pkgerrors.New(pkgerrors.CodeValidation, "contato inválido").
			WithDetails(map[string]string{"contato": "Use o formato 55 + DDD + número. Ex: 5511987654321"})
	}

	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return customers.PublicProfile{}, err
	}

	customer.Contact = contact
	if err := s.store.Update(ctx, customer); err != nil {
		return customers.PublicProfile{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "atualizando contato")
	}
	return customers.ToPublicProfile(customer), nil
}

func (s *service) UpdatePassword(ctx context.Context, customerID uuid.UUID, input UpdatePasswordInput) error {
	if err := security.ValidatePasswordRules(input.New); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "senha inválida").
			WithDetails(map[string]string{"senha_nova": err.Error()})
	}

	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return err
	}

	ok, err := security.VerifyPassword(input.Current, customer.PasswordHash)
	if err != nil || !ok {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "senha atual incorreta")
	}

	hash, err := security.HashPassword(input.New, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "protegendo senha")
	}

	customer.PasswordHash = hash
	if err := s.store.Update(ctx, customer); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "atualizando senha")
	}
	return nil
}

func (s *service) DeleteAccount(ctx context.Context, customerID uuid.UUID) error {
	if _, err := s.findCustomer(ctx, customerID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, customerID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removendo cadastro")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithCustomerID(ctx, customerID.String()), "auth.account_deleted")
	}
	return nil
}

func (s *service) findCustomer(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := s.store.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cliente não encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consultando cliente")
	}
	return customer, nil
}

func (s *service) openSession(ctx context.Context, customer *models.Customer) (*Session, error) {
	accessID := session.NewAccessID()

	refreshToken, err := s.sessions.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "abrindo sessão")
	}

	signed, err := s.mintToken(customer, accessID)
	if err != nil {
		return nil, err
	}
	return &Session{
		AccessToken:  signed,
		RefreshToken: refreshToken,
		Customer:     customers.ToPublicProfile(customer),
	}, nil
}

func (s *service) mintToken(customer *models.Customer, accessID string) (string, error) {
	role := enums.ActorRoleCustomer
	if customer.IsAdmin {
		role = enums.ActorRoleAdmin
	}

	signed, err := pkgauth.MintAccessToken(s.jwtCfg, time.Now(), pkgauth.AccessTokenPayload{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Role:       role,
		JTI:        accessID,
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "emitindo token")
	}
	return signed, nil
}
