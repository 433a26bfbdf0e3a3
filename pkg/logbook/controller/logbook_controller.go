package controller

import "github.com/labstack/echo/v4"

type LogbookController interface {
	List(c echo.Context) error
	Aggregate(c echo.Context) error
	Export(c echo.Context) error
	ExportXlsx(c echo.Context) error
}
