package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vagali/vagali/internal/common"
	"github.com/vagali/vagali/internal/dbx"
	"github.com/vagali/vagali/internal/server/auth"
	"github.com/vagali/vagali/internal/server/config"
	"github.com/vagali/vagali/internal/server/models"
	"github.com/vagali/vagali/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// ProfileUpdate carries a partial profile change; nil fields stay untouched.
type ProfileUpdate struct {
	FullName       *string
	IsProfessional *bool
	Bio            *string
	City           *string
	MainService    *string
	Keywords       *string
}

func (s *UserService) Register(ctx context.Context, email, password, fullName string, isProfessional bool) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Email:          email,
		PasswordHash:   hash,
		FullName:       fullName,
		IsProfessional: isProfessional,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a signed token. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial change inside a transaction, so concurrent
// updates cannot interleave between the read and the write.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd *ProfileUpdate) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if upd.FullName != nil {
			user.FullName = *upd.FullName
		}
		if upd.IsProfessional != nil {
			user.IsProfessional = *upd.IsProfessional
		}
		if upd.Bio != nil {
			user.Bio = *upd.Bio
		}
		if upd.City != nil {
			user.City = *upd.City
		}
		if upd.MainService != nil {
			user.MainService = *upd.MainService
		}
		if upd.Keywords != nil {
			user.Keywords = *upd.Keywords
		}

		updated, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *UserService) ListProfessionals(ctx context.Context, search string) ([]models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.ListProfessionals(ctx, search)
}
