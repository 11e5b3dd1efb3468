package model

import (
	"encoding/json"
	"time"
)

// Amenity is an optional room feature charged in credits.
type Amenity struct {
	AmenityID   string    `json:"amenity_id" gorm:"primaryKey;size:36"`
	AmenityName string    `json:"amenityName" gorm:"uniqueIndex;size:64;not null"`
	Description string    `json:"description,omitempty" gorm:"size:256"`
	CreditCost  int       `json:"creditCost" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// amenityWire accepts the current backend keys and the older
// name/creditsScore pair some deployments still return.
type amenityWire struct {
	AmenityID    string `json:"amenity_id"`
	AmenityName  string `json:"amenityName"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreditCost   *int   `json:"creditCost"`
	CreditsScore *int   `json:"creditsScore"`
	IsActive     *bool  `json:"is_active"`
}

// UnmarshalJSON decodes both amenity payload formats. A missing active flag
// means active.
func (a *Amenity) UnmarshalJSON(data []byte) error {
	var w amenityWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*a = Amenity{
		AmenityID:   w.AmenityID,
		AmenityName: w.AmenityName,
		Description: w.Description,
		IsActive:    true,
	}
	if a.AmenityName == "" {
		a.AmenityName = w.Name
	}
	switch {
	case w.CreditCost != nil:
		a.CreditCost = *w.CreditCost
	case w.CreditsScore != nil:
		a.CreditCost = *w.CreditsScore
	}
	if w.IsActive != nil {
		a.IsActive = *w.IsActive
	}
	return nil
}

// AmenityInput is the payload for creating or updating an amenity.
type AmenityInput struct {
	AmenityID   string `json:"amenity_id,omitempty"`
	AmenityName string `json:"amenityName"`
	Description string `json:"description,omitempty"`
	CreditCost  int    `json:"creditCost"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
