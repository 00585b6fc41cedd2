package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/issue/service"
)

type IssueCtrl struct{ svc service.IssueService }

func New(svc service.IssueService) *IssueCtrl { return &IssueCtrl{svc: svc} }

type issueReq struct {
	Selection uint   `json:"selection"`
	Week      int    `json:"week"`
	IssueType string `json:"issueType"`
	Details   string `json:"details"`
}

type solutionReq struct {
	IssueID   uint   `json:"issueId"`
	IssueType string `json:"issueType"`
	Details   string `json:"details"`
	Week      int    `json:"week"`
	Selection uint   `json:"selectionId"`
	CropName  string `json:"cropName"`
	Season    string `json:"season"`
	State     string `json:"state"`
	Location  string `json:"location"`
}

func (h *IssueCtrl) Create(c echo.Context) error {
	var req issueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Selection == 0 || req.Week <= 0 || req.IssueType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "selection, week and issueType are required"})
	}
	issue, adjustments, err := h.svc.Create(req.Selection, req.Week, req.IssueType, req.Details)
	if err != nil {
		if errors.Is(err, service.ErrSelectionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Selection not found"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Failed to submit issue"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"issue": issue, "adjustments": adjustments})
}

func (h *IssueCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	issue, err := h.svc.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Issue not found"})
	}
	return c.JSON(http.StatusOK, issue)
}

func (h *IssueCtrl) List(c echo.Context) error {
	sel := c.QueryParam("selection")
	if sel == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Selection id required"})
	}
	id, err := strconv.Atoi(sel)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Selection id required"})
	}
	out, err := h.svc.ListBySelection(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch issues"})
	}
	return c.JSON(http.StatusOK, out)
}

// GenerateSolution never reports upstream trouble to the caller; the service
// substitutes the rule-based text. A 500 here means the service itself broke
// (e.g. it could not persist the result).
func (h *IssueCtrl) GenerateSolution(c echo.Context) error {
	var req solutionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	text, err := h.svc.GenerateSolution(service.SolutionInput{
		IssueID:   req.IssueID,
		IssueType: req.IssueType,
		Details:   req.Details,
		Week:      req.Week,
		CropName:  req.CropName,
		Season:    req.Season,
		State:     req.State,
		Location:  req.Location,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":    "Failed to generate AI solution",
			"fallback": "AI solution generation failed. Please refer to the recommended solution above or consult with local agricultural experts.",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"aiSolution": text})
}
