// Package user provides seller account repository
package user

import (
	"database/sql"
	"fmt"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id string) (*content.SellerUser, error) {
	query := `SELECT id, email, name, password_hash, created FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRow(query, id))
}

func (r *UserRepository) FindByEmail(email string) (*content.SellerUser, error) {
	query := `SELECT id, email, name, password_hash, created FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRow(query, email))
}

func (r *UserRepository) Store(user *content.SellerUser) error {
	query := `INSERT INTO users (id, email, name, password_hash, created) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, user.ID, user.Email, user.Name, user.PasswordHash, user.Created)
	if err != nil {
		return fmt.Errorf("failed to store user %s: %w", user.Email, err)
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*content.SellerUser, error) {
	var user content.SellerUser
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Created)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}
