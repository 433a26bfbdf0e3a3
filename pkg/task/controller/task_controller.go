package controller

import "github.com/labstack/echo/v4"

type TaskController interface {
	List(c echo.Context) error
	Stats(c echo.Context) error
	Complete(c echo.Context) error
	Skip(c echo.Context) error
	Snooze(c echo.Context) error
	BulkComplete(c echo.Context) error
}
