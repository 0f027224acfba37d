package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"LostAndFound/internal/model"
)

// UserRepository is the minimal access contract for admin accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with the assigned id.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail returns the user or (nil, nil) when no such email exists.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID returns the user or (nil, nil) when no such id exists.
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository creates the GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
