package repo

import (
	"context"

	"github.com/unimarket/backend/internal/models"
)

// CreateUser does not check email uniqueness itself; callers look the
// email up first and accept the resulting check-then-create race.
func (r *GormRepo) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	if name == "" || email == "" {
		return nil, ErrValidation
	}
	user := models.User{Name: name, Email: email}
	if err := r.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CountUsers(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
