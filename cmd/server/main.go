package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"cropdiary/config"
	"cropdiary/database"
	"cropdiary/router"

	"cropdiary/pkg/cascade"
	"cropdiary/pkg/lifecycle"
	"cropdiary/pkg/library"
	"cropdiary/pkg/query"
	"cropdiary/pkg/record"
	"cropdiary/pkg/store"

	authCtrlImp "cropdiary/pkg/auth/controllerImp"
	cropCtrlImp "cropdiary/pkg/crop/controllerImp"
	fieldCtrlImp "cropdiary/pkg/field/controllerImp"
	healthCtrlImp "cropdiary/pkg/health/controllerImp"
	libCtrlImp "cropdiary/pkg/library/controllerImp"
	logCtrlImp "cropdiary/pkg/logbook/controllerImp"
	photoCtrlImp "cropdiary/pkg/photo/controllerImp"
	taskCtrlImp "cropdiary/pkg/task/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Printf("[tz] keep system local time: %v", err)
	}

	// 2) Store: sqlite kv table, or memory when DB_PATH is ":memory:"-ish
	var st store.RecordStore
	var db *gorm.DB
	if cfg.DBPath == "" {
		st = store.NewMemory()
	} else {
		db = database.OpenSQLite(cfg.DBPath)
		st = store.NewSQLite(db)
	}

	// 3) Collections: heal, migrate, seed reference data
	repo := record.New(st, cfg.Namespace)
	repo.Init()
	repo.Seed()

	// 4) Engines
	lc := lifecycle.New(repo)
	q := query.New(repo)
	cas := cascade.New(repo)
	lib := library.New(repo)

	// 5) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	photoCtrlImp.New(repo, cas).Register(e)
	libCtrlImp.New(lib, cfg.AllowedDomains).Register(e)

	// 6) Controllers
	fCtrl := fieldCtrlImp.New(repo, lc, cas)
	cCtrl := cropCtrlImp.New(repo, lc)
	tCtrl := taskCtrlImp.New(lc, q)
	lgCtrl := logCtrlImp.New(q)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, fCtrl, cCtrl, tCtrl, lgCtrl, authCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
