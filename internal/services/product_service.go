package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"flourshop/internal/models"
	"flourshop/internal/store"

	"github.com/rs/zerolog"
)

var ErrProductNotFound = errors.New("Product not found")

type ProductService struct {
	store     store.ProductStore
	uploadDir string
	logger    zerolog.Logger
}

func NewProductService(st store.ProductStore, uploadDir string, logger zerolog.Logger) *ProductService {
	return &ProductService{store: st, uploadDir: uploadDir, logger: logger}
}

func (s *ProductService) List() ([]models.Product, error) {
	return s.store.List()
}

func (s *ProductService) Get(id int) (*models.Product, error) {
	product, err := s.store.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *ProductService) Create(in *models.ProductInput) (*models.Product, error) {
	product := &models.Product{Unit: models.UnitKg}
	applyProductInput(product, in)

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	created, err := s.store.Create(product)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}
	s.logger.Info().Int("product_id", created.ID).Str("name", created.Name).Msg("Product created")
	return created, nil
}

// Update merges only the supplied fields into the stored record, then
// revalidates the result.
func (s *ProductService) Update(id int, in *models.ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	applyProductInput(product, in)
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.store.Update(product); err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("Error updating product")
		return nil, err
	}
	return s.Get(id)
}

// Delete checks existence first: removing an absent id is an error, not
// a silent success. A locally stored product image is removed best
// effort; a leftover file never fails the delete.
func (s *ProductService) Delete(id int) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}

	if product.Image != "" {
		name := strings.TrimPrefix(product.Image, "/uploads/")
		if !strings.Contains(name, "/") {
			if err := os.Remove(filepath.Join(s.uploadDir, name)); err != nil && !os.IsNotExist(err) {
				s.logger.Warn().Err(err).Str("image", name).Msg("Failed to delete product image")
			}
		}
	}

	if err := s.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		s.logger.Error().Err(err).Int("product_id", id).Msg("Error deleting product")
		return err
	}
	s.logger.Info().Int("product_id", id).Msg("Product deleted")
	return nil
}

func applyProductInput(p *models.Product, in *models.ProductInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.NameUrdu != nil {
		p.NameUrdu = *in.NameUrdu
	}
	if in.DescriptionEn != nil {
		p.DescriptionEn = *in.DescriptionEn
	}
	if in.DescriptionUrdu != nil {
		p.DescriptionUrdu = *in.DescriptionUrdu
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
}

func validateProduct(p *models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ValidationError("Product name is required")
	}
	if strings.TrimSpace(p.NameUrdu) == "" {
		return ValidationError("Urdu name is required")
	}
	if strings.TrimSpace(p.Price) == "" {
		return ValidationError("Price is required")
	}
	if p.Category != models.CategoryWheat && p.Category != models.CategoryFlour {
		return ValidationError("Category must be wheat or flour")
	}
	if p.Unit != models.UnitKg && p.Unit != models.UnitMaan && p.Unit != models.UnitLb {
		return ValidationError("Unit must be kg, maan or lb")
	}
	if p.Stock < 0 {
		return ValidationError("Stock cannot be negative")
	}
	return nil
}
