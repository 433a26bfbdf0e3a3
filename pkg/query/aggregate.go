package query

import (
	"math"

	"cropdiary/entities"
	"cropdiary/pkg/enrich"
	"cropdiary/pkg/record"
)

type Totals struct {
	TotalWaterL       float64 `json:"total_water_l"`
	TotalFertilizerKg float64 `json:"total_fertilizer_kg"`
	TotalHarvestKg    float64 `json:"total_harvest_kg"`
	TotalLogs         int     `json:"total_logs"`
}

// Aggregate sums the filtered logs into the three diary buckets. A bucket
// accepts a log only when both the task type and the unit category match
// (volume for water, weight for fertilizer/harvest); mismatches are dropped
// silently. Quantities convert via the unit's base factor (default 1) and
// totals round to one decimal at the end.
func (q *Engine) Aggregate(f Filters) Totals {
	ix := enrich.BuildIndexes(q.r)
	var t Totals
	for _, el := range q.filteredLogs(ix, f) {
		t.TotalLogs++
		if el.Quantity == nil {
			continue
		}
		unit, hasUnit := ix.Units[el.UnitID]
		factor := 1.0
		if hasUnit && unit.ConversionFactorToBase != 0 {
			factor = unit.ConversionFactorToBase
		}
		qty := *el.Quantity * factor

		switch el.TaskTypeID {
		case record.TaskWatering:
			if hasUnit && unit.Type == entities.UnitVolume {
				t.TotalWaterL += qty
			}
		case record.TaskFertilizing:
			if hasUnit && unit.Type == entities.UnitWeight {
				t.TotalFertilizerKg += qty
			}
		case record.TaskHarvesting:
			if hasUnit && unit.Type == entities.UnitWeight {
				t.TotalHarvestKg += qty
			}
		}
	}
	t.TotalWaterL = round1(t.TotalWaterL)
	t.TotalFertilizerKg = round1(t.TotalFertilizerKg)
	t.TotalHarvestKg = round1(t.TotalHarvestKg)
	return t
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
