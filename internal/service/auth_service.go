package service

import (
	"context"
	"fmt"
	"time"

	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService for the operator surface.
type AuthServiceImpl struct {
	operatorRepo ports.OperatorRepository
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	log          zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	operatorRepo ports.OperatorRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		operatorRepo: operatorRepo,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		log:          log,
	}
}

// Register creates a new PROVIDER-role operator account. Admin accounts are
// provisioned out of band.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterOperatorRequest) (*domain.Operator, error) {
	if len(req.Username) < 3 {
		return nil, apperror.Validation("username must be at least 3 characters")
	}
	if len(req.Password) < 12 {
		return nil, apperror.Validation("password must be at least 12 characters")
	}

	existing, err := s.operatorRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	hash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	operator := &domain.Operator{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         domain.RoleProvider,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.operatorRepo.Create(ctx, operator); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create operator: %w", err))
	}

	s.log.Info().
		Str("operator_id", operator.ID.String()).
		Str("username", operator.Username).
		Msg("operator registered")

	return operator, nil
}

// Login authenticates an operator and issues a JWT.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	operator, err := s.operatorRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("get operator: %w", err))
	}
	if operator == nil {
		// Same rejection whether the username or the password is wrong.
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	ok, err := s.hashSvc.Verify(password, operator.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.tokenSvc.Generate(operator.ID, operator.Role)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().
		Str("operator_id", operator.ID.String()).
		Msg("operator logged in")

	return token, expiresAt, nil
}

var _ ports.AuthService = (*AuthServiceImpl)(nil)
