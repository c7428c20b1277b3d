package repo

import (
	"context"

	"github.com/unimarket/backend/internal/models"
)

// CreateActivity writes the row as given. The referenced user and
// product are not checked to exist.
func (r *GormRepo) CreateActivity(ctx context.Context, userID, productID int, action string) (*models.UserActivity, error) {
	activity := models.UserActivity{
		UserID:    userID,
		ProductID: productID,
		Action:    action,
	}
	if err := r.DB.WithContext(ctx).Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}
