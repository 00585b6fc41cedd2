package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"farmassist/entities"
	"farmassist/pkg/template"
	"farmassist/pkg/template/repository"
)

type TemplateCtrl struct {
	repo  repository.TemplateRepository
	cache *template.Cache
}

func New(repo repository.TemplateRepository, cache *template.Cache) *TemplateCtrl {
	return &TemplateCtrl{repo: repo, cache: cache}
}

type weeklyReq struct {
	Week     int    `json:"week"`
	Solution string `json:"solution"`
}

type templateReq struct {
	IssueType       string      `json:"issueType"`
	Description     string      `json:"description"`
	Solution        string      `json:"solution"`
	WeeklySolutions []weeklyReq `json:"weeklySolutions"`
}

func (h *TemplateCtrl) List(c echo.Context) error {
	ts, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch issue templates"})
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *TemplateCtrl) Create(c echo.Context) error {
	var req templateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if strings.TrimSpace(req.IssueType) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "issueType is required"})
	}
	t := &entities.IssueTemplate{
		IssueType:       strings.TrimSpace(req.IssueType),
		Description:     req.Description,
		Solution:        req.Solution,
		WeeklySolutions: toWeekly(req.WeeklySolutions),
	}
	if err := h.repo.Create(t); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "failed to create issue template"})
	}
	h.cache.Invalidate()
	return c.JSON(http.StatusCreated, t)
}

func (h *TemplateCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req templateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	t, err := h.repo.Update(uint(id), req.Description, req.Solution, toWeekly(req.WeeklySolutions))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "failed to update issue template"})
	}
	h.cache.Invalidate()
	return c.JSON(http.StatusOK, t)
}

func (h *TemplateCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "failed to delete issue template"})
	}
	h.cache.Invalidate()
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func toWeekly(in []weeklyReq) []entities.WeeklySolution {
	out := make([]entities.WeeklySolution, 0, len(in))
	for _, w := range in {
		out = append(out, entities.WeeklySolution{Week: w.Week, Solution: w.Solution})
	}
	return out
}
