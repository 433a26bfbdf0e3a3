package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cropdiary/pkg/exporter"
	"cropdiary/pkg/logbook/controller"
	"cropdiary/pkg/query"
)

type LogbookCtrl struct{ q *query.Engine }

func New(q *query.Engine) controller.LogbookController { return &LogbookCtrl{q: q} }

func filtersFrom(c echo.Context) query.Filters {
	uid, _ := c.Get("uid").(string)
	return query.Filters{
		OwnerID:        uid,
		FieldID:        c.QueryParam("field_id"),
		AreaID:         c.QueryParam("area_id"),
		CropInstanceID: c.QueryParam("crop_instance_id"),
		TaskTypeID:     c.QueryParam("task_type_id"),
		StatusID:       c.QueryParam("status_id"),
		StartDate:      c.QueryParam("from"),
		EndDate:        c.QueryParam("to"),
	}
}

func (h *LogbookCtrl) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	return c.JSON(http.StatusOK, h.q.ListLogs(filtersFrom(c), page, size))
}

func (h *LogbookCtrl) Aggregate(c echo.Context) error {
	return c.JSON(http.StatusOK, h.q.Aggregate(filtersFrom(c)))
}

func (h *LogbookCtrl) Export(c echo.Context) error {
	f := filtersFrom(c)
	if c.QueryParam("mode") == "summary" {
		return c.JSON(http.StatusOK, h.q.Summarize(f))
	}
	includePhotos := c.QueryParam("photos") == "1" || c.QueryParam("photos") == "true"
	return c.JSON(http.StatusOK, h.q.Export(f, includePhotos))
}

func (h *LogbookCtrl) ExportXlsx(c echo.Context) error {
	payload := h.q.Export(filtersFrom(c), false)
	wb, err := exporter.LogbookXlsx(payload.Logs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="logbook.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return wb.Write(c.Response())
}
