package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropdiary/pkg/lifecycle"
	"cropdiary/pkg/query"
	"cropdiary/pkg/record"
	"cropdiary/pkg/task/controller"
)

type TaskCtrl struct {
	lc *lifecycle.Engine
	q  *query.Engine
}

func New(lc *lifecycle.Engine, q *query.Engine) controller.TaskController {
	return &TaskCtrl{lc: lc, q: q}
}

func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, record.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, record.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
}

func (h *TaskCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, h.q.ListTasks(uid))
}

func (h *TaskCtrl) Stats(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, h.q.TaskStats(uid))
}

func (h *TaskCtrl) Complete(c echo.Context) error {
	var in lifecycle.CompleteInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	logID, err := h.lc.Complete(c.Param("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"log_id": logID})
}

func (h *TaskCtrl) Skip(c echo.Context) error {
	var body struct {
		ReasonID string `json:"reason_id"`
		Notes    string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	logID, err := h.lc.Skip(c.Param("id"), body.ReasonID, body.Notes)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"log_id": logID})
}

func (h *TaskCtrl) Snooze(c echo.Context) error {
	var body struct {
		Until string `json:"until"` // YYYY-MM-DD
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	logID, err := h.lc.Snooze(c.Param("id"), body.Until)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"log_id": logID})
}

func (h *TaskCtrl) BulkComplete(c echo.Context) error {
	var body struct {
		TaskTypeID string `json:"task_type_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	n, err := h.lc.BulkComplete(c.Param("id"), body.TaskTypeID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"completed_count": n})
}
