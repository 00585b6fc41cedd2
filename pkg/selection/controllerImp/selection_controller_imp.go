package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmassist/entities"
	metarepo "farmassist/pkg/metadata/repository"
	"farmassist/pkg/selection/repository"
)

type SelectionCtrl struct {
	repo repository.SelectionRepository
	meta metarepo.MetadataRepository
}

func New(repo repository.SelectionRepository, meta metarepo.MetadataRepository) *SelectionCtrl {
	return &SelectionCtrl{repo: repo, meta: meta}
}

type createReq struct {
	State      string  `json:"state"`
	Crop       string  `json:"crop"`
	Season     string  `json:"season"`
	SowingDate string  `json:"sowingDate"`
	Area       float64 `json:"area"`
}

var validSeasons = map[string]bool{"Kharif": true, "Rabi": true, "Zaid": true}

func (h *SelectionCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.State == "" || req.Crop == "" || req.Season == "" || req.SowingDate == "" || req.Area == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields. Please provide state, crop, season, sowingDate, and area."})
	}
	if !validSeasons[req.Season] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid season"})
	}
	if req.Area <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Area must be a positive number"})
	}
	sd, err := time.Parse("2006-01-02", req.SowingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid sowing date"})
	}
	if _, err := h.meta.FindStateByName(req.State); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid state selected"})
	}

	s := &entities.Selection{
		UserID:     uid,
		State:      req.State,
		Crop:       req.Crop,
		Season:     req.Season,
		SowingDate: sd,
		AreaAcres:  req.Area,
		Status:     "active",
	}
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save selection. Please try again."})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SelectionCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load selections"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SelectionCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, s)
}
