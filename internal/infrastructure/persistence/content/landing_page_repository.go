// Package content provides landing page repository
package content

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
)

type LandingPageRepository struct {
	db *sql.DB
}

func NewLandingPageRepository(db *sql.DB) *LandingPageRepository {
	return &LandingPageRepository{db: db}
}

func (r *LandingPageRepository) FindByID(id string) (*content.LandingPage, error) {
	query := `SELECT id, owner_id, name, mode, elements, layout, html_code, created, changed
		FROM landing_pages WHERE id = ?`

	page, err := r.scanPage(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load landing page %s: %w", id, err)
	}
	return page, nil
}

func (r *LandingPageRepository) FindByOwner(ownerID string) ([]*content.LandingPage, error) {
	query := `SELECT id, owner_id, name, mode, elements, layout, html_code, created, changed
		FROM landing_pages WHERE owner_id = ? ORDER BY changed DESC`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query landing pages for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	var pages []*content.LandingPage
	for rows.Next() {
		page, err := r.scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan landing page row: %w", err)
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

func (r *LandingPageRepository) Store(page *content.LandingPage) error {
	elements, layout, err := marshalPageBlobs(page)
	if err != nil {
		return err
	}

	changed := page.Created
	if page.Changed != nil {
		changed = *page.Changed
	}

	query := `INSERT INTO landing_pages (id, owner_id, name, mode, elements, layout, html_code, created, changed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.Exec(query, page.ID, page.OwnerID, page.Name, string(page.Mode),
		elements, layout, page.HTMLCode, page.Created, changed)
	if err != nil {
		return fmt.Errorf("failed to store landing page %s: %w", page.ID, err)
	}
	return nil
}

func (r *LandingPageRepository) Update(page *content.LandingPage) error {
	elements, layout, err := marshalPageBlobs(page)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	page.Changed = &now

	query := `UPDATE landing_pages SET name = ?, mode = ?, elements = ?, layout = ?, html_code = ?, changed = ?
		WHERE id = ?`
	_, err = r.db.Exec(query, page.Name, string(page.Mode), elements, layout, page.HTMLCode, now, page.ID)
	if err != nil {
		return fmt.Errorf("failed to update landing page %s: %w", page.ID, err)
	}
	return nil
}

func (r *LandingPageRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM landing_pages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete landing page %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *LandingPageRepository) scanPage(row rowScanner) (*content.LandingPage, error) {
	var page content.LandingPage
	var mode, elementsJSON, layoutJSON string
	var changed time.Time

	err := row.Scan(&page.ID, &page.OwnerID, &page.Name, &mode,
		&elementsJSON, &layoutJSON, &page.HTMLCode, &page.Created, &changed)
	if err != nil {
		return nil, err
	}

	page.Mode = content.Mode(mode)
	if !changed.IsZero() {
		page.Changed = &changed
	}

	if elementsJSON != "" && elementsJSON != "[]" {
		if err := json.Unmarshal([]byte(elementsJSON), &page.Elements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal elements for page %s: %w", page.ID, err)
		}
	}
	if layoutJSON != "" && layoutJSON != "{}" {
		if err := json.Unmarshal([]byte(layoutJSON), &page.Layout); err != nil {
			return nil, fmt.Errorf("failed to unmarshal layout for page %s: %w", page.ID, err)
		}
	}

	return &page, nil
}

func marshalPageBlobs(page *content.LandingPage) (elements, layout string, err error) {
	elementsBytes, err := json.Marshal(page.Elements)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal elements for page %s: %w", page.ID, err)
	}
	if page.Elements == nil {
		elementsBytes = []byte("[]")
	}

	layoutBytes := []byte("{}")
	if page.Layout != nil {
		layoutBytes, err = json.Marshal(page.Layout)
		if err != nil {
			return "", "", fmt.Errorf("failed to marshal layout for page %s: %w", page.ID, err)
		}
	}

	return string(elementsBytes), string(layoutBytes), nil
}
