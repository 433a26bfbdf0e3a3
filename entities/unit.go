package entities

// Unit categories.
const (
	UnitVolume = "volume"
	UnitWeight = "weight"
	UnitCount  = "count"
)

// Unit converts to its category's base unit (liter for volume, kilogram for
// weight) by multiplying with ConversionFactorToBase.
type Unit struct {
	ID                     string  `json:"id"`
	Symbol                 string  `json:"symbol"`
	Type                   string  `json:"type"` // volume|weight|count
	ConversionFactorToBase float64 `json:"conversion_factor_to_base"`
}

type StatusCode struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"` // sort weight, higher = more urgent
}

type ReasonCode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
