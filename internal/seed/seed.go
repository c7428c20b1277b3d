package seed

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/unimarket/backend/internal/models"
	"github.com/unimarket/backend/internal/repo"
	"github.com/unimarket/backend/pkg/logging"
)

// DemoProducts is the built-in catalog used when no CSV source is
// configured. Duplicated entries are intentional, the demo storefront
// looks fuller with them.
var DemoProducts = []models.Product{
	{Name: "Organic Chemistry Textbook", Price: 20, Description: "Year 1 chem textbook, light notes", Image: "https://picsum.photos/300?random=1"},
	{Name: "IB Biology HL Textbook", Price: 18, Description: "Used but clean", Image: "https://picsum.photos/300?random=2"},
	{Name: "Casio FX-CG50 Calculator", Price: 45, Description: "Allowed in exams", Image: "https://picsum.photos/300?random=3"},
	{Name: "Imperial College Hoodie", Price: 25, Description: "Size M, worn twice", Image: "https://picsum.photos/300?random=4"},
	{Name: "Desk Lamp", Price: 12, Description: "LED, adjustable brightness", Image: "https://picsum.photos/300?random=5"},
	{Name: "Rice Cooker", Price: 32, Description: "Great for dorm cooking", Image: "https://picsum.photos/300?random=6"},
	{Name: "Sony Noise Cancelling Headphones", Price: 70, Description: "XM3 model", Image: "https://picsum.photos/300?random=7"},
	{Name: "Board Game – Catan", Price: 20, Description: "All pieces included", Image: "https://picsum.photos/300?random=8"},
	{Name: "Lab Coat", Price: 20, Description: "Year 1 chem textbook, light notes", Image: "https://picsum.photos/300?random=1"},
	{Name: "Sneakers", Price: 18, Description: "Used but clean", Image: "https://picsum.photos/300?random=2"},
	{Name: "Mountain bike", Price: 45, Description: "Allowed in exams", Image: "https://picsum.photos/300?random=3"},
	{Name: "Bedside table", Price: 25, Description: "Size M, worn twice", Image: "https://picsum.photos/300?random=4"},
	{Name: "Water bottle", Price: 12, Description: "LED, adjustable brightness", Image: "https://picsum.photos/300?random=5"},
	{Name: "Rice Cooker", Price: 32, Description: "Great for dorm cooking", Image: "https://picsum.photos/300?random=6"},
	{Name: "Sony Noise Cancelling Headphones", Price: 70, Description: "XM3 model", Image: "https://picsum.photos/300?random=7"},
	{Name: "Board Game – Catan", Price: 20, Description: "All pieces included", Image: "https://picsum.photos/300?random=8"},
}

// Products populates the product table when it is empty. With a path it
// reads a name,price,description CSV, otherwise it inserts DemoProducts.
// Calling it against a non-empty table is a no-op, so it is safe to run
// on every startup and after a reset.
func Products(ctx context.Context, r *repo.GormRepo, path string) error {
	l := logging.FromContext(ctx)

	count, err := r.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		l.Debug("seed skipped, products present", "count", count)
		return nil
	}

	products := DemoProducts
	if path != "" {
		products, err = loadCSV(path)
		if err != nil {
			return err
		}
	}

	if err := r.InsertProducts(ctx, products); err != nil {
		return err
	}
	l.Info("products seeded", "count", len(products))
	return nil
}

// loadCSV reads product rows from a name,price,description file. A bad
// price parses to 0 rather than failing the whole load.
func loadCSV(path string) ([]models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var products []models.Product
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(rec[0]), "name") {
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			price = 0
		}
		p := models.Product{
			Name:  strings.TrimSpace(rec[0]),
			Price: price,
		}
		if len(rec) > 2 {
			p.Description = strings.TrimSpace(rec[2])
		}
		products = append(products, p)
	}
	return products, nil
}
