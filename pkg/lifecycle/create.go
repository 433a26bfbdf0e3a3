package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cropdiary/entities"
	"cropdiary/pkg/record"
)

type NewFieldInput struct {
	OwnerID  string  `json:"-"`
	Name     string  `json:"name"`
	Size     float64 `json:"size"`
	SizeUnit string  `json:"size_unit"`
}

func (e *Engine) CreateField(in NewFieldInput) (*entities.Field, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("field name: %w", record.ErrInvalidInput)
	}
	now := e.now()
	f := entities.Field{
		ID: uuid.NewString(), OwnerID: in.OwnerID, Name: strings.TrimSpace(in.Name),
		Size: in.Size, SizeUnit: in.SizeUnit, CreatedAt: now, UpdatedAt: now,
	}
	if !e.r.SaveFields(append(e.r.Fields(), f)) {
		return nil, record.ErrStorage
	}
	return &f, nil
}

type NewAreaInput struct {
	OwnerID string  `json:"-"`
	FieldID string  `json:"-"`
	Name    string  `json:"name"`
	TypeID  string  `json:"type_id"`
	Size    float64 `json:"size"`
}

func (e *Engine) CreateArea(in NewAreaInput) (*entities.Area, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("area name: %w", record.ErrInvalidInput)
	}
	if indexOfField(e.r.Fields(), in.FieldID) < 0 {
		return nil, fmt.Errorf("field %s: %w", in.FieldID, record.ErrNotFound)
	}
	now := e.now()
	a := entities.Area{
		ID: uuid.NewString(), FieldID: in.FieldID, OwnerID: in.OwnerID,
		Name: strings.TrimSpace(in.Name), TypeID: in.TypeID, Size: in.Size,
		CreatedAt: now, UpdatedAt: now,
	}
	if !e.r.SaveAreas(append(e.r.Areas(), a)) {
		return nil, record.ErrStorage
	}
	return &a, nil
}

type NewCropInput struct {
	OwnerID        string         `json:"-"`
	AreaID         string         `json:"-"`
	LibraryCropID  string         `json:"library_crop_id"`
	Name           string         `json:"name"`
	StartDate      string         `json:"start_date"`
	DaysToMaturity int            `json:"days_to_maturity"`
	Overrides      map[string]any `json:"overrides"`
}

// CreateCrop registers a crop instance and, when its library crop carries a
// default care template, seeds the first occurrence at
// startDate + interval days with status derived against today.
func (e *Engine) CreateCrop(in NewCropInput) (*entities.CropInstance, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("crop name: %w", record.ErrInvalidInput)
	}
	start, err := time.Parse(DayFormat, strings.TrimSpace(in.StartDate))
	if err != nil {
		return nil, fmt.Errorf("start date %q: %w", in.StartDate, record.ErrInvalidInput)
	}
	if indexOfArea(e.r.Areas(), in.AreaID) < 0 {
		return nil, fmt.Errorf("area %s: %w", in.AreaID, record.ErrNotFound)
	}

	ov := entities.FromOverrideMap(in.Overrides)
	now := e.now()
	crop := entities.CropInstance{
		ID: uuid.NewString(), OwnerID: in.OwnerID, AreaID: in.AreaID,
		LibraryCropID: in.LibraryCropID, Name: strings.TrimSpace(in.Name),
		StartDate: start.Format(DayFormat), DaysToMaturity: in.DaysToMaturity,
		Overrides: ov, CreatedAt: now, UpdatedAt: now,
	}

	var seed *entities.TaskOccurrence
	if lc, ok := e.libraryCrop(in.LibraryCropID); ok {
		crop.AppliedTemplateVersion = lc.Version
		if crop.DaysToMaturity == 0 {
			crop.DaysToMaturity = lc.DaysToMaturity
		}
		if ov.DaysToMaturity != nil {
			crop.DaysToMaturity = *ov.DaysToMaturity
		}
		if tpl, ok := e.template(lc.DefaultCareTemplateID); ok {
			interval := tpl.DefaultIntervalDays
			if ov.IntervalDays != nil {
				interval = *ov.IntervalDays
			}
			due := start.AddDate(0, 0, interval).Format(DayFormat)
			seed = &entities.TaskOccurrence{
				ID: uuid.NewString(), OwnerID: in.OwnerID, CropInstanceID: crop.ID,
				TemplateID: tpl.ID, DueDate: due, ScheduledDate: due,
				StatusID: DeriveStatus(due, e.today()), CreatedAt: now, UpdatedAt: now,
			}
		}
	}

	if !e.r.SaveCrops(append(e.r.Crops(), crop)) {
		return nil, record.ErrStorage
	}
	if seed != nil {
		if !e.r.SaveOccurrences(append(e.r.Occurrences(), *seed)) {
			return nil, record.ErrStorage
		}
	}
	return &crop, nil
}

func (e *Engine) libraryCrop(id string) (entities.LibraryCrop, bool) {
	if id == "" {
		return entities.LibraryCrop{}, false
	}
	for _, lc := range e.r.LibraryCrops() {
		if lc.ID == id || lc.CropID == id {
			return lc, true
		}
	}
	return entities.LibraryCrop{}, false
}

func (e *Engine) template(id string) (entities.TaskTemplate, bool) {
	if id == "" {
		return entities.TaskTemplate{}, false
	}
	for _, t := range e.r.Templates() {
		if t.ID == id {
			return t, true
		}
	}
	return entities.TaskTemplate{}, false
}

func indexOfField(fields []entities.Field, id string) int {
	for i := range fields {
		if fields[i].ID == id {
			return i
		}
	}
	return -1
}
