package store

import (
	"database/sql"
	"fmt"

	"flourshop/internal/models"
)

type Products struct {
	db *sql.DB
}

const productColumns = "id, name, name_urdu, description_en, description_urdu, price, category, unit, image, stock, created_at, updated_at"

func scanProduct(row interface{ Scan(...interface{}) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.NameUrdu, &p.DescriptionEn, &p.DescriptionUrdu,
		&p.Price, &p.Category, &p.Unit, &p.Image, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

func (s *Products) List() ([]models.Product, error) {
	rows, err := s.db.Query("SELECT " + productColumns + " FROM products ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (s *Products) GetByID(id int) (*models.Product, error) {
	return scanProduct(s.db.QueryRow(
		"SELECT "+productColumns+" FROM products WHERE id = ?", id,
	))
}

func (s *Products) Create(p *models.Product) (*models.Product, error) {
	result, err := s.db.Exec(
		`INSERT INTO products (name, name_urdu, description_en, description_urdu, price, category, unit, image, stock)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.NameUrdu, p.DescriptionEn, p.DescriptionUrdu, p.Price, p.Category, p.Unit, p.Image, p.Stock,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("product insert id: %w", err)
	}
	return s.GetByID(int(id))
}

func (s *Products) Update(p *models.Product) error {
	result, err := s.db.Exec(
		`UPDATE products
		 SET name = ?, name_urdu = ?, description_en = ?, description_urdu = ?,
		     price = ?, category = ?, unit = ?, image = ?, stock = ?
		 WHERE id = ?`,
		p.Name, p.NameUrdu, p.DescriptionEn, p.DescriptionUrdu,
		p.Price, p.Category, p.Unit, p.Image, p.Stock, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product rows: %w", err)
	}
	_ = rows // an identical update reports zero affected rows; existence is checked by the service
	return nil
}

func (s *Products) Delete(id int) error {
	result, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Products) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
