package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"farmassist/entities"
	issuerepo "farmassist/pkg/issue/repository"
)

// AdminCtrl manages reference data. Route registration happens in the
// router behind the admin middleware.
type AdminCtrl struct {
	db     *gorm.DB
	issues issuerepo.IssueRepository
}

func New(db *gorm.DB, issues issuerepo.IssueRepository) *AdminCtrl {
	return &AdminCtrl{db: db, issues: issues}
}

func (h *AdminCtrl) list(c echo.Context, order string, dest any) error {
	if err := h.db.Order(order).Find(dest).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, dest)
}

func (h *AdminCtrl) create(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if err := h.db.Create(dest).Error; err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, dest)
}

func (h *AdminCtrl) delete(c echo.Context, model any) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.db.Delete(model, id).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminCtrl) ListStates(c echo.Context) error {
	return h.list(c, "name ASC", &[]entities.State{})
}
func (h *AdminCtrl) CreateState(c echo.Context) error { return h.create(c, &entities.State{}) }
func (h *AdminCtrl) DeleteState(c echo.Context) error { return h.delete(c, &entities.State{}) }

func (h *AdminCtrl) ListCrops(c echo.Context) error {
	return h.list(c, "name ASC", &[]entities.Crop{})
}
func (h *AdminCtrl) CreateCrop(c echo.Context) error { return h.create(c, &entities.Crop{}) }
func (h *AdminCtrl) DeleteCrop(c echo.Context) error { return h.delete(c, &entities.Crop{}) }

func (h *AdminCtrl) ListTimelineTasks(c echo.Context) error {
	return h.list(c, "crop_id ASC, week ASC", &[]entities.TimelineTask{})
}
func (h *AdminCtrl) CreateTimelineTask(c echo.Context) error {
	return h.create(c, &entities.TimelineTask{})
}
func (h *AdminCtrl) DeleteTimelineTask(c echo.Context) error {
	return h.delete(c, &entities.TimelineTask{})
}

func (h *AdminCtrl) ListProducts(c echo.Context) error {
	return h.list(c, "name ASC", &[]entities.Product{})
}
func (h *AdminCtrl) CreateProduct(c echo.Context) error { return h.create(c, &entities.Product{}) }
func (h *AdminCtrl) DeleteProduct(c echo.Context) error { return h.delete(c, &entities.Product{}) }

// ExportIssues writes every issue report to a spreadsheet for offline review.
func (h *AdminCtrl) ExportIssues(c echo.Context) error {
	issues, err := h.issues.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Issues"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"IssueID", "Selection", "Week", "IssueType", "Details", "Note", "Source", "Action", "DelayWeeks", "AISolution", "ReportedAt"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}
	for row, is := range issues {
		vals := []any{
			is.IssueID, is.SelectionID, is.Week, is.IssueType, is.Details,
			is.RecommendedAdjustments.Note, is.RecommendedAdjustments.Source,
			is.RecommendedAdjustments.Action, is.RecommendedAdjustments.DelayWeeks,
			is.AISolution, is.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="issues-%s.xlsx"`, time.Now().Format("2006-01-02")))
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
