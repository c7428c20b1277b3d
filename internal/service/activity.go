package service

import (
	"context"
	"strconv"

	"github.com/unimarket/backend/internal/events"
	"github.com/unimarket/backend/internal/models"
	"github.com/unimarket/backend/internal/repo"
	"github.com/unimarket/backend/pkg/logging"
)

const ActionView = "view"

type ActivityService struct {
	Repo   *repo.GormRepo
	Events *events.Producer
}

// Log appends one activity row. The event publish is best effort: the
// stored row is the source of truth and a broker failure is only logged.
func (s *ActivityService) Log(ctx context.Context, userID, productID int, action string) (*models.UserActivity, error) {
	activity, err := s.Repo.CreateActivity(ctx, userID, productID, action)
	if err != nil {
		return nil, err
	}

	event := map[string]interface{}{
		"type":       "activity_logged",
		"user_id":    activity.UserID,
		"product_id": activity.ProductID,
		"action":     activity.Action,
	}
	if err := s.Events.PublishEvent(ctx, strconv.Itoa(activity.UserID), event); err != nil {
		logging.FromContext(ctx).Error("activity event publish failed", "error", err)
	}

	return activity, nil
}
