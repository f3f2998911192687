// Package content provides order repository
package content

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, product_id, page_id, full_name, phone, city, address, attributes, status, created`

func (r *OrderRepository) FindByID(id string) (*content.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	order, err := r.scanOrder(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", id, err)
	}
	return order, nil
}

func (r *OrderRepository) FindByProduct(productID string) ([]*content.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE product_id = ? ORDER BY created DESC`
	return r.queryOrders(query, productID)
}

// FindByOwner returns all orders placed against the owner's products.
func (r *OrderRepository) FindByOwner(ownerID string) ([]*content.Order, error) {
	query := `SELECT o.id, o.product_id, o.page_id, o.full_name, o.phone, o.city, o.address,
		o.attributes, o.status, o.created
		FROM orders o JOIN products p ON o.product_id = p.id
		WHERE p.owner_id = ? ORDER BY o.created DESC`
	return r.queryOrders(query, ownerID)
}

func (r *OrderRepository) Store(order *content.Order) error {
	attributes := "{}"
	if order.Attributes != nil {
		bytes, err := json.Marshal(order.Attributes)
		if err != nil {
			return fmt.Errorf("failed to marshal attributes for order %s: %w", order.ID, err)
		}
		attributes = string(bytes)
	}

	pageID := ""
	if order.PageID != nil {
		pageID = *order.PageID
	}

	query := `INSERT INTO orders (` + orderColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, order.ID, order.ProductID, pageID, order.FullName,
		order.Phone, order.City, order.Address, attributes, order.Status, order.Created)
	if err != nil {
		return fmt.Errorf("failed to store order %s: %w", order.ID, err)
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, err)
	}
	return nil
}

func (r *OrderRepository) queryOrders(query string, arg any) ([]*content.Order, error) {
	rows, err := r.db.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*content.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) scanOrder(row rowScanner) (*content.Order, error) {
	var order content.Order
	var pageID, attributesJSON string

	err := row.Scan(&order.ID, &order.ProductID, &pageID, &order.FullName,
		&order.Phone, &order.City, &order.Address, &attributesJSON, &order.Status, &order.Created)
	if err != nil {
		return nil, err
	}

	if pageID != "" {
		order.PageID = &pageID
	}
	if attributesJSON != "" && attributesJSON != "{}" {
		if err := json.Unmarshal([]byte(attributesJSON), &order.Attributes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attributes for order %s: %w", order.ID, err)
		}
	}

	return &order, nil
}
