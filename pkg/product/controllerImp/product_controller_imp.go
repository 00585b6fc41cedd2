package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmassist/entities"
	repo "farmassist/pkg/product/repository"
)

type ProductCtrl struct{ repo repo.ProductRepository }

func New(repo repo.ProductRepository) *ProductCtrl { return &ProductCtrl{repo} }

func (h *ProductCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load products"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) Create(c echo.Context) error {
	var p entities.Product
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if p.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if p.Type == "" {
		p.Type = "other"
	}
	if err := h.repo.Create(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Failed to create product"})
	}
	return c.JSON(http.StatusCreated, p)
}
