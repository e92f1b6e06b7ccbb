package model

import "time"

// Superhero is a record of the superhero catalogue.
// Slug is unique across the store and is the public lookup key.
// PortraitPath is the object storage key of the hero's portrait, empty when none was uploaded.
type Superhero struct {
	ID              string
	Slug            string
	Name            string
	RealName        string
	Publisher       string
	FirstAppearance string
	Description     string
	PortraitPath    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
