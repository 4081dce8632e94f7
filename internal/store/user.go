package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/upcheck-dev/upcheck/internal/models"
)

// publicUserColumns is the read shape for ordinary lookups; password-hash
// material is only reachable through FindByEmailWithPassword.
const publicUserColumns = "id, created_at, updated_at, deleted_at, email, full_name, avatar_url"

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).
		Select(publicUserColumns).
		Scopes(Active).
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).
		Select(publicUserColumns).
		Scopes(Active).
		First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByEmailWithPassword is the credential-bearing lookup used by login and
// password changes only.
func (s *UserStore) FindByEmailWithPassword(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).
		Scopes(Active).
		First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) FindByIDWithPassword(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).
		Scopes(Active).
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Scopes(Active).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}
