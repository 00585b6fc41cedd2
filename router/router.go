package router

import (
	"github.com/labstack/echo/v4"

	"farmassist/pkg/middleware"
)

type Controllers struct {
	Auth interface {
		Register(echo.Context) error
		Login(echo.Context) error
	}
	Metadata interface {
		States(echo.Context) error
		Seasons(echo.Context) error
		Crops(echo.Context) error
	}
	Product interface {
		List(echo.Context) error
		Create(echo.Context) error
	}
	Selection interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	}
	Timeline interface{ Get(echo.Context) error }
	Issue    interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		GenerateSolution(echo.Context) error
	}
	Note interface {
		Upsert(echo.Context) error
		List(echo.Context) error
	}
	Template interface {
		List(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	}
	KB interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Docs(echo.Context) error
		Search(echo.Context) error
	}
	Admin interface {
		ListStates(echo.Context) error
		CreateState(echo.Context) error
		DeleteState(echo.Context) error
		ListCrops(echo.Context) error
		CreateCrop(echo.Context) error
		DeleteCrop(echo.Context) error
		ListTimelineTasks(echo.Context) error
		CreateTimelineTask(echo.Context) error
		DeleteTimelineTask(echo.Context) error
		ListProducts(echo.Context) error
		CreateProduct(echo.Context) error
		DeleteProduct(echo.Context) error
		ExportIssues(echo.Context) error
	}
	Health interface{ Health(echo.Context) error }
}

func New(e *echo.Echo, ctrl Controllers, jwtSecret, adminToken string) *echo.Echo {
	e.GET("/health", ctrl.Health.Health)

	api := e.Group("/api")

	api.POST("/auth/register", ctrl.Auth.Register)
	api.POST("/auth/login", ctrl.Auth.Login)

	api.GET("/metadata/states", ctrl.Metadata.States)
	api.GET("/metadata/seasons", ctrl.Metadata.Seasons)
	api.GET("/metadata/crops", ctrl.Metadata.Crops)

	api.GET("/products", ctrl.Product.List)
	api.POST("/products", ctrl.Product.Create)

	api.GET("/timeline/:cropName", ctrl.Timeline.Get)

	userAuth := middleware.UserAuth(jwtSecret)
	api.GET("/selections", ctrl.Selection.List, userAuth)
	api.POST("/selections", ctrl.Selection.Create, userAuth)
	api.GET("/selections/:id", ctrl.Selection.Get)

	api.POST("/issues", ctrl.Issue.Create)
	api.GET("/issues", ctrl.Issue.List)
	api.GET("/issues/:id", ctrl.Issue.Get)
	api.POST("/ai-solution", ctrl.Issue.GenerateSolution)

	api.POST("/notes", ctrl.Note.Upsert)
	api.GET("/notes/:selectionId", ctrl.Note.List)

	adminOnly := middleware.AdminOnly(jwtSecret, adminToken)
	api.GET("/issue-templates", ctrl.Template.List)
	api.POST("/issue-templates", ctrl.Template.Create, adminOnly)
	api.PUT("/issue-templates/:id", ctrl.Template.Update, adminOnly)
	api.DELETE("/issue-templates/:id", ctrl.Template.Delete, adminOnly)

	api.POST("/kb/ingest", ctrl.KB.IngestText, adminOnly)
	api.POST("/kb/ingest/url", ctrl.KB.IngestURL, adminOnly)
	api.GET("/kb/docs", ctrl.KB.Docs)
	api.GET("/kb/search", ctrl.KB.Search)

	admin := api.Group("/admin", adminOnly)
	admin.GET("/states", ctrl.Admin.ListStates)
	admin.POST("/states", ctrl.Admin.CreateState)
	admin.DELETE("/states/:id", ctrl.Admin.DeleteState)
	admin.GET("/crops", ctrl.Admin.ListCrops)
	admin.POST("/crops", ctrl.Admin.CreateCrop)
	admin.DELETE("/crops/:id", ctrl.Admin.DeleteCrop)
	admin.GET("/timeline-tasks", ctrl.Admin.ListTimelineTasks)
	admin.POST("/timeline-tasks", ctrl.Admin.CreateTimelineTask)
	admin.DELETE("/timeline-tasks/:id", ctrl.Admin.DeleteTimelineTask)
	admin.GET("/products", ctrl.Admin.ListProducts)
	admin.POST("/products", ctrl.Admin.CreateProduct)
	admin.DELETE("/products/:id", ctrl.Admin.DeleteProduct)
	admin.GET("/issues/export", ctrl.Admin.ExportIssues)

	return e
}
