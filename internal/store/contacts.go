package store

import (
	"database/sql"
	"fmt"
	"strings"

	"flourshop/internal/models"
)

type Contacts struct {
	db *sql.DB
}

const contactColumns = "id, name, email, phone, message, status, created_at"

func scanContact(row interface{ Scan(...interface{}) error }) (*models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.Status, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	return &c, nil
}

// List returns inquiries newest first. A non-empty search term matches
// name, email, phone or message case-insensitively; a non-empty status
// narrows to that exact status. Both filters combine with AND.
func (s *Contacts) List(search, status string) ([]models.Contact, error) {
	query := "SELECT " + contactColumns + " FROM contacts"
	args := []interface{}{}
	where := ""

	if search != "" {
		where = " WHERE (LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(message) LIKE ?)"
		pattern := "%" + strings.ToLower(search) + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if status != "" {
		if where == "" {
			where = " WHERE status = ?"
		} else {
			where += " AND status = ?"
		}
		args = append(args, status)
	}

	rows, err := s.db.Query(query+where+" ORDER BY created_at DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

func (s *Contacts) GetByID(id int) (*models.Contact, error) {
	return scanContact(s.db.QueryRow(
		"SELECT "+contactColumns+" FROM contacts WHERE id = ?", id,
	))
}

func (s *Contacts) Create(c *models.Contact) (*models.Contact, error) {
	result, err := s.db.Exec(
		"INSERT INTO contacts (name, email, phone, message, status) VALUES (?, ?, ?, ?, ?)",
		c.Name, c.Email, c.Phone, c.Message, c.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("contact insert id: %w", err)
	}
	return s.GetByID(int(id))
}

func (s *Contacts) UpdateStatus(id int, status string) error {
	result, err := s.db.Exec("UPDATE contacts SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contact status rows: %w", err)
	}
	_ = rows // setting the same status affects zero rows; existence is checked by the service
	return nil
}

func (s *Contacts) Delete(id int) error {
	result, err := s.db.Exec("DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
