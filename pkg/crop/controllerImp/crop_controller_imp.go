package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropdiary/entities"
	"cropdiary/pkg/crop/controller"
	"cropdiary/pkg/lifecycle"
	"cropdiary/pkg/record"
)

type CropCtrl struct {
	r  *record.Repository
	lc *lifecycle.Engine
}

func New(r *record.Repository, lc *lifecycle.Engine) controller.CropController {
	return &CropCtrl{r: r, lc: lc}
}

func (h *CropCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var in lifecycle.NewCropInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in.OwnerID = uid
	in.AreaID = c.Param("id")
	crop, err := h.lc.CreateCrop(in)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, crop)
	case errors.Is(err, record.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, record.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
}

func (h *CropCtrl) List(c echo.Context) error {
	aid := c.Param("id")
	out := []entities.CropInstance{}
	for _, cr := range h.r.Crops() {
		if cr.AreaID == aid {
			out = append(out, cr)
		}
	}
	return c.JSON(http.StatusOK, out)
}
