package db

import (
	"fmt"

	"flourshop/internal/config"
	"flourshop/internal/models"
	"flourshop/internal/services"
	"flourshop/internal/store"

	"github.com/rs/zerolog"
)

// Seed is the explicit bootstrap step: it creates the administrative
// credential, materializes default settings, and loads sample products
// into an empty catalog. Every part is idempotent; reads never trigger
// any of this as a side effect.
func Seed(stores store.Stores, cfg config.Config, logger zerolog.Logger) error {
	if cfg.AdminPassword == "" {
		logger.Warn().Msg("ADMIN_PASSWORD not set, skipping admin user seed")
	} else {
		userService := services.NewUserService(stores.Users, logger)
		if err := userService.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	if err := seedSettings(stores.Settings, logger); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	if err := seedProducts(stores.Products, logger); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func seedSettings(settings store.SettingStore, logger zerolog.Logger) error {
	stored, err := settings.All()
	if err != nil {
		return err
	}

	created := 0
	for key, value := range services.DefaultSettings() {
		if _, ok := stored[key]; ok {
			continue
		}
		if _, err := settings.Upsert(key, value); err != nil {
			return err
		}
		created++
	}
	if created > 0 {
		logger.Info().Int("count", created).Msg("Default settings created")
	}
	return nil
}

func seedProducts(products store.ProductStore, logger zerolog.Logger) error {
	count, err := products.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []models.Product{
		{
			Name:            "Premium Wheat",
			NameUrdu:        "پریمیم گندم",
			DescriptionEn:   "High-quality premium wheat with excellent baking properties",
			DescriptionUrdu: "اعلیٰ معیار کی پریمیم گندم، بہترین بیکنگ خصوصیات کے ساتھ",
			Price:           "4500",
			Category:        models.CategoryWheat,
			Unit:            models.UnitMaan,
			Stock:           100,
		},
		{
			Name:            "Fine Flour",
			NameUrdu:        "بہترین آٹا",
			DescriptionEn:   "Finely ground flour perfect for chapati and naan",
			DescriptionUrdu: "باریک پسا ہوا آٹا، چپاتی اور نان کے لیے بہترین",
			Price:           "120",
			Category:        models.CategoryFlour,
			Unit:            models.UnitKg,
			Stock:           500,
		},
	}
	for i := range samples {
		if _, err := products.Create(&samples[i]); err != nil {
			return err
		}
	}
	logger.Info().Int("count", len(samples)).Msg("Sample products created")
	return nil
}
