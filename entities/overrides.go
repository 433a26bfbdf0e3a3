package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Override keys recognized by the scheduler.
const (
	OverrideIntervalDays        = "intervalDays"
	OverrideRecommendedQuantity = "recommendedQuantity"
	OverrideDaysToMaturity      = "daysToMaturity"
)

// Overrides is the per-crop adjustment bag. The three recognized keys are
// typed; everything else lands in Extra untouched. Numeric keys accept JSON
// numbers or numeric strings; any other value stays null.
type Overrides struct {
	IntervalDays        *int
	RecommendedQuantity *float64
	DaysToMaturity      *int
	Extra               map[string]string
}

func (o Overrides) IsZero() bool {
	return o.IntervalDays == nil && o.RecommendedQuantity == nil &&
		o.DaysToMaturity == nil && len(o.Extra) == 0
}

func (o Overrides) MarshalJSON() ([]byte, error) {
	m := map[string]any{}
	if o.IntervalDays != nil {
		m[OverrideIntervalDays] = *o.IntervalDays
	}
	if o.RecommendedQuantity != nil {
		m[OverrideRecommendedQuantity] = *o.RecommendedQuantity
	}
	if o.DaysToMaturity != nil {
		m[OverrideDaysToMaturity] = *o.DaysToMaturity
	}
	for k, v := range o.Extra {
		m[k] = v
	}
	return json.Marshal(m)
}

func (o *Overrides) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		// legacy rows stored junk here; treat as no overrides
		*o = Overrides{}
		return nil
	}
	*o = FromOverrideMap(m)
	return nil
}

// FromOverrideMap applies the coercion rules to a raw key/value bag.
func FromOverrideMap(m map[string]any) Overrides {
	var o Overrides
	for k, v := range m {
		switch k {
		case OverrideIntervalDays:
			if f, ok := toNumber(v); ok {
				n := int(f)
				o.IntervalDays = &n
			}
		case OverrideRecommendedQuantity:
			if f, ok := toNumber(v); ok {
				o.RecommendedQuantity = &f
			}
		case OverrideDaysToMaturity:
			if f, ok := toNumber(v); ok {
				n := int(f)
				o.DaysToMaturity = &n
			}
		default:
			if o.Extra == nil {
				o.Extra = map[string]string{}
			}
			switch t := v.(type) {
			case string:
				o.Extra[k] = t
			case float64:
				o.Extra[k] = strconv.FormatFloat(t, 'f', -1, 64)
			case bool:
				o.Extra[k] = strconv.FormatBool(t)
			case nil:
				// drop nulls
			default:
				if b, err := json.Marshal(t); err == nil {
					o.Extra[k] = string(b)
				}
			}
		}
	}
	return o
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
