package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("user not found")
var ErrDuplicateEmail = errors.New("email already registered")

// Store is the persistence boundary for user records. Handlers only ever
// need these three operations.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) Create(ctx context.Context, u *User) error {
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *GormStore) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res := s.DB.WithContext(ctx).Model(&User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
