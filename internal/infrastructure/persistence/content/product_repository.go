// Package content provides product repository
package content

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, owner_id, name, description, price, regular_price, currency,
	sku, show_sku, images, videos, attributes, reviews, show_reviews, created`

func (r *ProductRepository) FindByID(id string) (*content.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`

	product, err := r.scanProduct(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", id, err)
	}
	return product, nil
}

func (r *ProductRepository) FindByOwner(ownerID string) ([]*content.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE owner_id = ? ORDER BY created DESC`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	var products []*content.Product
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Store(product *content.Product) error {
	blobs, err := marshalProductBlobs(product)
	if err != nil {
		return err
	}

	query := `INSERT INTO products (` + productColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.Exec(query, product.ID, product.OwnerID, product.Name, product.Description,
		product.Price, product.RegularPrice, product.Currency, product.SKU, product.ShowSKU,
		blobs.images, blobs.videos, blobs.attributes, blobs.reviews, product.ShowReviews, product.Created)
	if err != nil {
		return fmt.Errorf("failed to store product %s: %w", product.ID, err)
	}
	return nil
}

func (r *ProductRepository) Update(product *content.Product) error {
	blobs, err := marshalProductBlobs(product)
	if err != nil {
		return err
	}

	query := `UPDATE products SET name = ?, description = ?, price = ?, regular_price = ?,
		currency = ?, sku = ?, show_sku = ?, images = ?, videos = ?, attributes = ?,
		reviews = ?, show_reviews = ? WHERE id = ?`
	_, err = r.db.Exec(query, product.Name, product.Description, product.Price, product.RegularPrice,
		product.Currency, product.SKU, product.ShowSKU, blobs.images, blobs.videos,
		blobs.attributes, blobs.reviews, product.ShowReviews, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	return nil
}

func (r *ProductRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

type productBlobs struct {
	images, videos, attributes, reviews string
}

func marshalProductBlobs(product *content.Product) (productBlobs, error) {
	blobs := productBlobs{}

	marshal := func(v any, fallback string) (string, error) {
		if v == nil {
			return fallback, nil
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal product %s payload: %w", product.ID, err)
		}
		return string(bytes), nil
	}

	var err error
	if blobs.images, err = marshal(product.Images, "[]"); err != nil {
		return blobs, err
	}
	if blobs.videos, err = marshal(product.Videos, "[]"); err != nil {
		return blobs, err
	}
	if blobs.attributes, err = marshal(product.Attributes, "[]"); err != nil {
		return blobs, err
	}
	if blobs.reviews, err = marshal(product.Reviews, "[]"); err != nil {
		return blobs, err
	}
	return blobs, nil
}

func (r *ProductRepository) scanProduct(row rowScanner) (*content.Product, error) {
	var product content.Product
	var imagesJSON, videosJSON, attributesJSON, reviewsJSON string

	err := row.Scan(&product.ID, &product.OwnerID, &product.Name, &product.Description,
		&product.Price, &product.RegularPrice, &product.Currency, &product.SKU, &product.ShowSKU,
		&imagesJSON, &videosJSON, &attributesJSON, &reviewsJSON, &product.ShowReviews, &product.Created)
	if err != nil {
		return nil, err
	}

	blobs := []struct {
		raw    string
		target any
	}{
		{imagesJSON, &product.Images},
		{videosJSON, &product.Videos},
		{attributesJSON, &product.Attributes},
		{reviewsJSON, &product.Reviews},
	}
	for _, blob := range blobs {
		if blob.raw == "" || blob.raw == "[]" {
			continue
		}
		if err := json.Unmarshal([]byte(blob.raw), blob.target); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product %s payload: %w", product.ID, err)
		}
	}

	return &product, nil
}
