package repository

import (
	"context"

	"todoapi/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListAll retrieves every user ordered by id.
func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	result := r.db.WithContext(ctx).Order("user_id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
