package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	repo "farmassist/pkg/metadata/repository"
)

var seasons = []string{"Kharif", "Rabi", "Zaid"}

type MetadataCtrl struct{ repo repo.MetadataRepository }

func New(repo repo.MetadataRepository) *MetadataCtrl { return &MetadataCtrl{repo} }

func (h *MetadataCtrl) States(c echo.Context) error {
	out, err := h.repo.ListStates()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load states"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MetadataCtrl) Seasons(c echo.Context) error {
	return c.JSON(http.StatusOK, seasons)
}

func (h *MetadataCtrl) Crops(c echo.Context) error {
	state := c.QueryParam("state")
	season := c.QueryParam("season")
	if state != "" {
		if _, err := h.repo.FindStateByName(state); err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("State '%s' not found", state)})
		}
	}
	out, err := h.repo.ListCrops(state, season)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load crops"})
	}
	return c.JSON(http.StatusOK, out)
}
