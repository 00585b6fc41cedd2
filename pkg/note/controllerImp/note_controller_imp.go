package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	repo "farmassist/pkg/note/repository"
)

type NoteCtrl struct{ repo repo.NoteRepository }

func New(repo repo.NoteRepository) *NoteCtrl { return &NoteCtrl{repo} }

type noteReq struct {
	Selection uint   `json:"selection"`
	Week      int    `json:"week"`
	Note      string `json:"note"`
}

func (h *NoteCtrl) Upsert(c echo.Context) error {
	var req noteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Selection == 0 || req.Week <= 0 || req.Note == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Failed to save note"})
	}
	n, err := h.repo.Upsert(req.Selection, req.Week, req.Note)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Failed to save note"})
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *NoteCtrl) List(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("selectionId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid selection id"})
	}
	out, err := h.repo.ListBySelection(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch notes"})
	}
	return c.JSON(http.StatusOK, out)
}
