package record

import "cropdiary/entities"

// Well-known ids referenced by the aggregation buckets and seed templates.
const (
	TaskWatering    = "watering"
	TaskFertilizing = "fertilizing"
	TaskHarvesting  = "harvesting"
	TaskPestCheck   = "pest-check"

	UnitLiter      = "l"
	UnitMilliliter = "ml"
	UnitKilogram   = "kg"
	UnitGram       = "g"
	UnitPiece      = "pcs"
)

// Seed fills reference collections that are still empty. Safe to call on
// every boot.
func (r *Repository) Seed() {
	if len(r.Units()) == 0 {
		r.SaveUnits([]entities.Unit{
			{ID: UnitLiter, Symbol: "L", Type: entities.UnitVolume, ConversionFactorToBase: 1},
			{ID: UnitMilliliter, Symbol: "ml", Type: entities.UnitVolume, ConversionFactorToBase: 0.001},
			{ID: UnitKilogram, Symbol: "kg", Type: entities.UnitWeight, ConversionFactorToBase: 1},
			{ID: UnitGram, Symbol: "g", Type: entities.UnitWeight, ConversionFactorToBase: 0.001},
			{ID: UnitPiece, Symbol: "pcs", Type: entities.UnitCount, ConversionFactorToBase: 1},
		})
	}
	if len(r.Statuses()) == 0 {
		r.SaveStatuses([]entities.StatusCode{
			{ID: entities.StatusOverdue, Name: "Overdue", Priority: 60},
			{ID: entities.StatusDue, Name: "Due", Priority: 50},
			{ID: entities.StatusPlanned, Name: "Planned", Priority: 40},
			{ID: entities.StatusSnoozed, Name: "Snoozed", Priority: 30},
			{ID: entities.StatusSkipped, Name: "Skipped", Priority: 20},
			{ID: entities.StatusCompleted, Name: "Completed", Priority: 10},
		})
	}
	if len(r.Reasons()) == 0 {
		r.SaveReasons([]entities.ReasonCode{
			{ID: "weather", Name: "Bad weather"},
			{ID: "no-time", Name: "No time"},
			{ID: "not-needed", Name: "Not needed"},
			{ID: "other", Name: "Other"},
		})
	}
	if len(r.TaskTypes()) == 0 {
		r.SaveTaskTypes([]entities.TaskType{
			{ID: TaskWatering, Names: map[string]string{"en": "Watering", "th": "รดน้ำ"}, DefaultUnitID: UnitLiter, Icon: "droplet"},
			{ID: TaskFertilizing, Names: map[string]string{"en": "Fertilizing", "th": "ใส่ปุ๋ย"}, DefaultUnitID: UnitKilogram, Icon: "leaf"},
			{ID: TaskHarvesting, Names: map[string]string{"en": "Harvesting", "th": "เก็บเกี่ยว"}, DefaultUnitID: UnitKilogram, Icon: "basket"},
			{ID: TaskPestCheck, Names: map[string]string{"en": "Pest check", "th": "ตรวจศัตรูพืช"}, Icon: "bug"},
		})
	}
	if len(r.Templates()) == 0 {
		qty := func(v float64) *float64 { return &v }
		r.SaveTemplates([]entities.TaskTemplate{
			{ID: "tpl-watering", TaskTypeID: TaskWatering, DefaultUnitID: UnitLiter, DefaultIntervalDays: 2, RequiresQuantity: true, RecommendedQuantity: qty(5)},
			{ID: "tpl-fertilizing", TaskTypeID: TaskFertilizing, DefaultUnitID: UnitKilogram, DefaultIntervalDays: 14, RequiresQuantity: true, RecommendedQuantity: qty(0.5)},
			{ID: "tpl-harvesting", TaskTypeID: TaskHarvesting, DefaultUnitID: UnitKilogram, DefaultIntervalDays: 60, RequiresQuantity: false},
			{ID: "tpl-pest-check", TaskTypeID: TaskPestCheck, DefaultIntervalDays: 7, RequiresQuantity: false},
		})
	}
}
