package models

import "time"

type Product struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	NameUrdu        string    `json:"nameUrdu"`
	DescriptionEn   string    `json:"descriptionEn"`
	DescriptionUrdu string    `json:"descriptionUrdu"`
	Price           string    `json:"price"`
	Category        string    `json:"category"`
	Unit            string    `json:"unit"`
	Image           string    `json:"image"`
	Stock           int       `json:"stock"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

const (
	CategoryWheat = "wheat"
	CategoryFlour = "flour"
)

const (
	UnitKg   = "kg"
	UnitMaan = "maan" // regional unit, 40 kg
	UnitLb   = "lb"
)

// ProductInput carries create/update fields. Pointers distinguish
// "not supplied" from zero values so updates can merge partially.
type ProductInput struct {
	Name            *string `json:"name"`
	NameUrdu        *string `json:"nameUrdu"`
	DescriptionEn   *string `json:"descriptionEn"`
	DescriptionUrdu *string `json:"descriptionUrdu"`
	Price           *string `json:"price"`
	Category        *string `json:"category"`
	Unit            *string `json:"unit"`
	Image           *string `json:"image"`
	Stock           *int    `json:"stock"`
}
