package controllerImp

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cropdiary/entities"
	"cropdiary/pkg/cascade"
	"cropdiary/pkg/record"
)

// Photo endpoints hold metadata only; the binary lives wherever StorageRef
// points.
type httpCtrl struct {
	r   *record.Repository
	cas *cascade.Engine
}

func New(r *record.Repository, cas *cascade.Engine) *httpCtrl {
	return &httpCtrl{r: r, cas: cas}
}

func (h *httpCtrl) Register(e *echo.Echo) {
	e.POST("/photos", h.create)
	e.GET("/photos", h.list)
	e.DELETE("/photos/:id", h.remove)
}

func (h *httpCtrl) create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var in entities.Photo
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if strings.TrimSpace(in.StorageRef) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "storage_ref is required"})
	}
	in.ID = uuid.NewString()
	in.OwnerID = uid
	in.CreatedAt = time.Now()
	if !h.r.SavePhotos(append(h.r.Photos(), in)) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "write failed"})
	}
	return c.JSON(http.StatusCreated, in)
}

func (h *httpCtrl) list(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out := []entities.Photo{}
	for _, p := range h.r.Photos() {
		if p.OwnerID == uid {
			out = append(out, p)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) remove(c echo.Context) error {
	ok, err := h.cas.DeletePhoto(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": ok})
}
