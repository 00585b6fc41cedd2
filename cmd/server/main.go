package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmassist/config"
	"farmassist/database"
	"farmassist/router"

	adminCtrlImp "farmassist/pkg/admin/controllerImp"
	authCtrlImp "farmassist/pkg/auth/controllerImp"
	healthCtrlImp "farmassist/pkg/health/controllerImp"

	metaCtrlImp "farmassist/pkg/metadata/controllerImp"
	metaRepoImp "farmassist/pkg/metadata/repositoryImp"

	productCtrlImp "farmassist/pkg/product/controllerImp"
	productRepoImp "farmassist/pkg/product/repositoryImp"

	selCtrlImp "farmassist/pkg/selection/controllerImp"
	selRepoImp "farmassist/pkg/selection/repositoryImp"

	tlCtrlImp "farmassist/pkg/timeline/controllerImp"
	tlRepoImp "farmassist/pkg/timeline/repositoryImp"
	tlSvc "farmassist/pkg/timeline/service"

	"farmassist/pkg/template"
	tplCtrlImp "farmassist/pkg/template/controllerImp"
	tplRepoImp "farmassist/pkg/template/repositoryImp"

	"farmassist/pkg/ai"
	"farmassist/pkg/resolution"

	issueCtrlImp "farmassist/pkg/issue/controllerImp"
	issueRepoImp "farmassist/pkg/issue/repositoryImp"
	issueSvcImp "farmassist/pkg/issue/serviceImp"

	noteCtrlImp "farmassist/pkg/note/controllerImp"
	noteRepoImp "farmassist/pkg/note/repositoryImp"

	kbCtrlImp "farmassist/pkg/kb/controllerImp"
	kbRepoImp "farmassist/pkg/kb/repositoryImp"
	kbSvcImp "farmassist/pkg/kb/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Templates + resolution engine (template reads go through the cache)
	tplRepo := tplRepoImp.New(db)
	tplCache := template.NewCache(tplRepo)
	engine := resolution.NewEngine(tplCache)

	// 5) Generative-text client; mock keeps dev setups offline
	var llm ai.Client
	if cfg.AIEndpoint != "" {
		llm = ai.NewHuggingFace(cfg.AIEndpoint, cfg.AIAPIKey, time.Duration(cfg.AITimeoutSec)*time.Second)
	} else {
		llm = ai.NewMock()
	}

	// 6) KB
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbSvcImp.New(kbRepo)
	kbCtrl := kbCtrlImp.New(kbSvc, cfg.KBDomains, cfg.KBMaxBytes)

	// 7) Repos / services / controllers
	metaRepo := metaRepoImp.New(db)
	selRepo := selRepoImp.New(db)
	issueRepo := issueRepoImp.New(db)
	noteRepo := noteRepoImp.New(db)
	productRepo := productRepoImp.New(db)
	tlRepo := tlRepoImp.New(db)

	issueSvc := issueSvcImp.NewIssueService(issueRepo, selRepo, engine, llm, kbSvc)
	timelineSvc := tlSvc.New(tlRepo)

	ctrl := router.Controllers{
		Auth:      authCtrlImp.NewAuthController(db, cfg.JWTSecret),
		Metadata:  metaCtrlImp.New(metaRepo),
		Product:   productCtrlImp.New(productRepo),
		Selection: selCtrlImp.New(selRepo, metaRepo),
		Timeline:  tlCtrlImp.New(timelineSvc),
		Issue:     issueCtrlImp.New(issueSvc),
		Note:      noteCtrlImp.New(noteRepo),
		Template:  tplCtrlImp.New(tplRepo, tplCache),
		KB:        kbCtrl,
		Admin:     adminCtrlImp.New(db, issueRepo),
		Health:    healthCtrlImp.NewHealthCtrl(db),
	}

	// 8) Router
	r := router.New(e, ctrl, cfg.JWTSecret, cfg.AdminToken)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
