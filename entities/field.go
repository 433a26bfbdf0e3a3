package entities

import "time"

type Field struct {
	ID       string  `json:"id"`
	OwnerID  string  `json:"owner_id"`
	Name     string  `json:"name"`
	Size     float64 `json:"size"`
	SizeUnit string  `json:"size_unit"` // rai|ha|m2

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Area struct {
	ID      string  `json:"id"`
	FieldID string  `json:"field_id"`
	OwnerID string  `json:"owner_id"`
	Name    string  `json:"name"`
	TypeID  string  `json:"type_id"` // bed|row|greenhouse|container
	Size    float64 `json:"size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
