package entities

import "time"

type CropInstance struct {
	ID            string `json:"id"`
	OwnerID       string `json:"owner_id"`
	AreaID        string `json:"area_id"`
	LibraryCropID string `json:"library_crop_id,omitempty"`
	Name          string `json:"name"`
	// YYYY-MM-DD, local calendar day
	StartDate              string    `json:"start_date"`
	DaysToMaturity         int       `json:"days_to_maturity"`
	Overrides              Overrides `json:"overrides"`
	AppliedTemplateVersion int       `json:"applied_template_version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LibraryCrop is a catalog entry crops can be created from. Names is keyed
// by language code ("en", "th", ...).
type LibraryCrop struct {
	ID                    string            `json:"id"`
	CropID                string            `json:"crop_id"`
	Names                 map[string]string `json:"names"`
	Category              string            `json:"category"` // vegetable|fruit|herb|grain
	DaysToMaturity        int               `json:"days_to_maturity"`
	DefaultCareTemplateID string            `json:"default_care_template_id,omitempty"`
	Version               int               `json:"version"`
}
