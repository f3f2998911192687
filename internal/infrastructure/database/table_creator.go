// Package database provides schema instantiation
package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
	"github.com/pagemint/pagemint-go/internal/infrastructure/security"
	"github.com/pagemint/pagemint-go/pkg/config"
)

// TableCreator handles the creation of the database schema.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		created TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price REAL NOT NULL DEFAULT 0,
		regular_price REAL,
		currency TEXT NOT NULL DEFAULT 'USD',
		sku TEXT,
		show_sku INTEGER NOT NULL DEFAULT 0,
		images TEXT NOT NULL DEFAULT '[]',
		videos TEXT NOT NULL DEFAULT '[]',
		attributes TEXT NOT NULL DEFAULT '[]',
		reviews TEXT NOT NULL DEFAULT '[]',
		show_reviews INTEGER NOT NULL DEFAULT 0,
		created TIMESTAMP NOT NULL,
		FOREIGN KEY (owner_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS landing_pages (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		name TEXT NOT NULL,
		mode TEXT NOT NULL DEFAULT 'visual',
		elements TEXT NOT NULL DEFAULT '[]',
		layout TEXT NOT NULL DEFAULT '{}',
		html_code TEXT NOT NULL DEFAULT '',
		created TIMESTAMP NOT NULL,
		changed TIMESTAMP NOT NULL,
		FOREIGN KEY (owner_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		page_id TEXT NOT NULL DEFAULT '',
		full_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		attributes TEXT NOT NULL DEFAULT '{}',
		status TEXT NOT NULL DEFAULT 'new',
		created TIMESTAMP NOT NULL,
		FOREIGN KEY (product_id) REFERENCES products(id)
	)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_products_owner ON products(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_landing_pages_owner ON landing_pages(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_product ON orders(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created)`,
}

// CreateSchema executes all necessary queries to build the database tables and indexes.
func (tc *TableCreator) CreateSchema(db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

// SeedInitialContent adds the admin account and a starter landing page so a
// fresh install opens onto a working builder. Seeding is idempotent.
func (tc *TableCreator) SeedInitialContent(db *sql.DB) error {
	if config.AdminEmail == "" || config.AdminPassword == "" {
		return nil
	}

	var adminID string
	err := db.QueryRow("SELECT id FROM users WHERE email = ?", config.AdminEmail).Scan(&adminID)
	if err == sql.ErrNoRows {
		adminID = security.GenerateULID()
		hash, hashErr := security.HashPassword(config.AdminPassword, config.BcryptCost)
		if hashErr != nil {
			return fmt.Errorf("failed to hash admin password: %w", hashErr)
		}
		_, err = db.Exec(`INSERT INTO users (id, email, name, password_hash, created) VALUES (?, ?, ?, ?, ?)`,
			adminID, config.AdminEmail, "Admin", hash, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to insert admin user: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	var pageExists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM landing_pages WHERE owner_id = ?)", adminID).Scan(&pageExists)
	if err != nil {
		return fmt.Errorf("failed to check for starter page: %w", err)
	}

	if !pageExists {
		elements, err := json.Marshal(starterElements())
		if err != nil {
			return fmt.Errorf("failed to marshal starter elements: %w", err)
		}
		now := time.Now().UTC()
		_, err = db.Exec(`INSERT INTO landing_pages (id, owner_id, name, mode, elements, layout, html_code, created, changed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			security.GenerateULID(), adminID, "My first page", "visual", string(elements), "{}", "", now, now)
		if err != nil {
			return fmt.Errorf("failed to insert starter page: %w", err)
		}
	}

	return nil
}

// starterElements builds the default page skeleton: a hero section with the
// product essentials and an order form.
func starterElements() []tree.PageElement {
	section := tree.NewDefaultElement(tree.KindSection)
	section.Children = []tree.PageElement{
		tree.NewDefaultElement(tree.KindProductTitle),
		tree.NewDefaultElement(tree.KindProductGallery),
		tree.NewDefaultElement(tree.KindProductPrice),
		tree.NewDefaultElement(tree.KindProductDescription),
		tree.NewDefaultElement(tree.KindOrderForm),
	}
	return []tree.PageElement{section}
}
