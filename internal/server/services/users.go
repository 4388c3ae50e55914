package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/reportvault/internal/common"
	"github.com/dmitrijs2005/reportvault/internal/server/auth"
	"github.com/dmitrijs2005/reportvault/internal/server/config"
	"github.com/dmitrijs2005/reportvault/internal/server/models"
	"github.com/dmitrijs2005/reportvault/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
	}
}

// Register persists a new account and issues a session token for it.
// Validation, password hashing and the duplicate-email check all
// happen inside the repository Create.
func (s *UserService) Register(ctx context.Context, user *models.User) (*models.PublicUser, string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.Create(ctx, user)
	if err != nil {
		var verr *common.ValidationError
		if errors.Is(err, common.ErrorDuplicateEmail) || errors.As(err, &verr) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user.Redacted(), token, nil
}

// Login checks the supplied credentials and issues a session token.
// A missing account and a wrong password both return
// ErrorInvalidCredentials so a caller cannot probe which emails exist.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.PublicUser, string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user.Redacted(), token, nil
}

// CurrentUser resolves the profile for the identity a token claims.
// The token is decoded, not verified: callers reach this only through
// the auth gate, which has already checked the signature.
func (s *UserService) CurrentUser(ctx context.Context, token string) (*models.PublicUser, error) {

	userID, err := auth.DecodeUserID(token)
	if err != nil {
		return nil, common.ErrorUnauthenticated
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, common.ErrorInternal
	}

	return user.Redacted(), nil
}
