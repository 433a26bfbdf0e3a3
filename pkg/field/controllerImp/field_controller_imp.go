package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropdiary/entities"
	"cropdiary/pkg/cascade"
	"cropdiary/pkg/field/controller"
	"cropdiary/pkg/lifecycle"
	"cropdiary/pkg/record"
)

type FieldCtrl struct {
	r   *record.Repository
	lc  *lifecycle.Engine
	cas *cascade.Engine
}

func New(r *record.Repository, lc *lifecycle.Engine, cas *cascade.Engine) controller.FieldController {
	return &FieldCtrl{r: r, lc: lc, cas: cas}
}

func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, record.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, record.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, record.ErrStorage):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (h *FieldCtrl) CreateField(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var in lifecycle.NewFieldInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in.OwnerID = uid
	f, err := h.lc.CreateField(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) ListFields(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out := []entities.Field{}
	for _, f := range h.r.Fields() {
		if f.OwnerID == uid {
			out = append(out, f)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) DeleteField(c echo.Context) error {
	ok, err := h.cas.DeleteField(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": ok})
}

func (h *FieldCtrl) CreateArea(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var in lifecycle.NewAreaInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in.OwnerID = uid
	in.FieldID = c.Param("id")
	a, err := h.lc.CreateArea(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *FieldCtrl) ListAreas(c echo.Context) error {
	fid := c.Param("id")
	out := []entities.Area{}
	for _, a := range h.r.Areas() {
		if a.FieldID == fid {
			out = append(out, a)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) DeleteArea(c echo.Context) error {
	ok, err := h.cas.DeleteArea(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": ok})
}
