package controller

import "github.com/labstack/echo/v4"

type FieldController interface {
	CreateField(c echo.Context) error
	ListFields(c echo.Context) error
	DeleteField(c echo.Context) error
	CreateArea(c echo.Context) error
	ListAreas(c echo.Context) error
	DeleteArea(c echo.Context) error
}
