package service

import (
	"context"

	"github.com/unimarket/backend/internal/models"
	"github.com/unimarket/backend/internal/repo"
	"github.com/unimarket/backend/pkg/logging"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Activity *ActivityService
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

// GetProduct fetches one product. A non-zero viewerID additionally
// records a "view" activity; a failure there never blocks the fetch.
func (s *CatalogService) GetProduct(ctx context.Context, id, viewerID int) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 {
		if _, err := s.Activity.Log(ctx, viewerID, product.ID, ActionView); err != nil {
			logging.FromContext(ctx).Error("view activity not recorded", "product_id", product.ID, "error", err)
		}
	}

	return product, nil
}
