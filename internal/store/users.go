package store

import (
	"database/sql"
	"fmt"

	"flourshop/internal/models"
)

type Users struct {
	db *sql.DB
}

const userColumns = "id, username, password_hash, role, created_at, updated_at"

func (s *Users) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}

func (s *Users) GetByUsername(username string) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE username = ?", username,
	))
}

func (s *Users) GetByID(id int) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE id = ?", id,
	))
}

func (s *Users) Create(username, passwordHash, role string) (*models.User, error) {
	result, err := s.db.Exec(
		"INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)",
		username, passwordHash, role,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("user insert id: %w", err)
	}
	return s.GetByID(int(id))
}

func (s *Users) UpdatePassword(id int, passwordHash string) error {
	result, err := s.db.Exec("UPDATE users SET password_hash = ? WHERE id = ?", passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
