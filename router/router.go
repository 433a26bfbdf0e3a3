package router

import (
	"github.com/labstack/echo/v4"

	"cropdiary/pkg/middleware"
)

func New(
	e *echo.Echo,
	fieldCtrl interface {
		CreateField(echo.Context) error
		ListFields(echo.Context) error
		DeleteField(echo.Context) error
		CreateArea(echo.Context) error
		ListAreas(echo.Context) error
		DeleteArea(echo.Context) error
	},
	cropCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	taskCtrl interface {
		List(echo.Context) error
		Stats(echo.Context) error
		Complete(echo.Context) error
		Skip(echo.Context) error
		Snooze(echo.Context) error
		BulkComplete(echo.Context) error
	},
	logCtrl interface {
		List(echo.Context) error
		Aggregate(echo.Context) error
		Export(echo.Context) error
		ExportXlsx(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/fields", fieldCtrl.CreateField)
	api.GET("/fields", fieldCtrl.ListFields)
	api.DELETE("/fields/:id", fieldCtrl.DeleteField)

	g := e.Group("/fields")
	g.POST("/:id/areas", fieldCtrl.CreateArea)
	g.GET("/:id/areas", fieldCtrl.ListAreas)
	api.DELETE("/areas/:id", fieldCtrl.DeleteArea)

	api.POST("/areas/:id/crops", cropCtrl.Create)
	api.GET("/areas/:id/crops", cropCtrl.List)
	api.POST("/areas/:id/tasks/bulk-complete", taskCtrl.BulkComplete)

	api.GET("/tasks", taskCtrl.List)
	api.GET("/tasks/stats", taskCtrl.Stats)
	api.PATCH("/tasks/:id/complete", taskCtrl.Complete)
	api.PATCH("/tasks/:id/skip", taskCtrl.Skip)
	api.PATCH("/tasks/:id/snooze", taskCtrl.Snooze)

	api.GET("/logbook", logCtrl.List)
	api.GET("/logbook/summary", logCtrl.Aggregate)
	api.GET("/logbook/export", logCtrl.Export)
	api.GET("/logbook/export.xlsx", logCtrl.ExportXlsx)

	return e
}
