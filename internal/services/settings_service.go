package services

import (
	"fmt"
	"strconv"

	"flourshop/internal/store"

	"github.com/rs/zerolog"
)

// ErrNoSettings is returned for an empty update payload.
var ErrNoSettings = ValidationError("No settings provided")

// settingKeyToInternal maps the camelCase wire keys to the snake_case
// persisted keys. The mapping is exact and total over the recognized
// key set; unrecognized keys pass through under their given name so
// forward-compatible keys are never silently dropped.
var settingKeyToInternal = map[string]string{
	"shopName":             "shop_name",
	"shopNameUrdu":         "shop_name_urdu",
	"whatsappNumber":       "whatsapp_number",
	"phoneNumber":          "phone_number",
	"email":                "email",
	"addressEn":            "address_en",
	"addressUrdu":          "address_urdu",
	"workingHours":         "working_hours",
	"enableWhatsAppButton": "enable_whatsapp_button",
	"enableOnlineOrders":   "enable_online_orders",
	"maintenanceMode":      "maintenance_mode",
}

var settingKeyToExternal = func() map[string]string {
	m := make(map[string]string, len(settingKeyToInternal))
	for external, internal := range settingKeyToInternal {
		m[internal] = external
	}
	return m
}()

// boolSettingKeys are persisted as the literal strings "true"/"false"
// but exposed as real booleans. Keyed by internal name.
var boolSettingKeys = map[string]bool{
	"enable_whatsapp_button": true,
	"enable_online_orders":   true,
	"maintenance_mode":       true,
}

// defaultSettings is the immutable fallback for every recognized key.
var defaultSettings = map[string]string{
	"shop_name":              "Bashir Flour Shop",
	"shop_name_urdu":         "بشیر آٹے کی دکان",
	"whatsapp_number":        "+923001234567",
	"phone_number":           "+92421234567",
	"email":                  "info@bashirflour.com",
	"address_en":             "123 Main Street, Lahore, Pakistan",
	"address_urdu":           "123 مرکزی سڑک، لاہور، پاکستان",
	"working_hours":          "9:00 AM - 10:00 PM (Monday - Sunday)",
	"enable_whatsapp_button": "true",
	"enable_online_orders":   "false",
	"maintenance_mode":       "false",
}

// DefaultSettings returns a copy of the fallback values keyed by
// internal name, for the explicit bootstrap seeding step.
func DefaultSettings() map[string]string {
	out := make(map[string]string, len(defaultSettings))
	for key, value := range defaultSettings {
		out[key] = value
	}
	return out
}

type SettingsService struct {
	store  store.SettingStore
	logger zerolog.Logger
}

func NewSettingsService(st store.SettingStore, logger zerolog.Logger) *SettingsService {
	return &SettingsService{store: st, logger: logger}
}

// GetAll returns the full recognized key set in external form, typed:
// booleans real, everything else strings. Missing keys are synthesized
// from defaults at read time; the store is never written here. On store
// failure the caller gets an empty map alongside the error so the page
// can degrade instead of losing all configuration handling.
func (s *SettingsService) GetAll() (map[string]interface{}, error) {
	stored, err := s.store.All()
	if err != nil {
		s.logger.Error().Err(err).Msg("Error fetching settings")
		return map[string]interface{}{}, fmt.Errorf("fetch settings: %w", err)
	}
	return externalView(reconcileDefaults(stored)), nil
}

// reconcileDefaults fills every recognized key missing from storage
// with its documented default. Pure: never mutates its input, never
// touches the store.
func reconcileDefaults(stored map[string]string) map[string]string {
	full := make(map[string]string, len(defaultSettings)+len(stored))
	for key, value := range stored {
		full[key] = value
	}
	for key, fallback := range defaultSettings {
		if _, ok := full[key]; !ok {
			full[key] = fallback
		}
	}
	return full
}

// externalView renames keys to their camelCase form and converts
// boolean-typed values from their stored string representation.
func externalView(internal map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(internal))
	for key, value := range internal {
		external, ok := settingKeyToExternal[key]
		if !ok {
			external = key
		}
		if boolSettingKeys[key] {
			out[external] = value == "true"
		} else {
			out[external] = value
		}
	}
	return out
}

// Update upserts each entry independently and returns what was actually
// persisted, in external form. The first store failure aborts the loop
// and surfaces the error; keys already written stay committed (fail
// fast, no rollback).
func (s *SettingsService) Update(updates map[string]interface{}) (map[string]interface{}, error) {
	if len(updates) == 0 {
		return nil, ErrNoSettings
	}

	written := make(map[string]interface{}, len(updates))
	for external, value := range updates {
		internal, ok := settingKeyToInternal[external]
		if !ok {
			internal = external
		}

		stored, err := s.store.Upsert(internal, stringifySetting(value))
		if err != nil {
			s.logger.Error().Err(err).Str("key", internal).Msg("Error updating setting")
			return nil, fmt.Errorf("update setting %q: %w", internal, err)
		}

		if boolSettingKeys[internal] {
			written[external] = stored == "true"
		} else {
			written[external] = stored
		}
	}

	s.logger.Info().Int("count", len(written)).Msg("Settings updated")
	return written, nil
}

func stringifySetting(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64: // JSON numbers decode as float64
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
