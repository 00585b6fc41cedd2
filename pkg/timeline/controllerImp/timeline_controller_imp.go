package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/timeline/service"
)

type TimelineCtrl struct{ svc service.Service }

func New(svc service.Service) *TimelineCtrl { return &TimelineCtrl{svc: svc} }

func (h *TimelineCtrl) Get(c echo.Context) error {
	cropName := c.Param("cropName")
	season := c.QueryParam("season")

	var sowing *time.Time
	if v := c.QueryParam("sowingDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			sowing = &t
		}
	}

	out, err := h.svc.ForCrop(cropName, season, sowing)
	if err != nil {
		if errors.Is(err, service.ErrCropNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Crop not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load timeline"})
	}
	return c.JSON(http.StatusOK, out)
}
