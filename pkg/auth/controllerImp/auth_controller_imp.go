package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"farmassist/entities"
)

type AuthCtrl struct {
	db     *gorm.DB
	secret string
}

func NewAuthController(db *gorm.DB, secret string) *AuthCtrl {
	return &AuthCtrl{db: db, secret: secret}
}

type credReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userOut struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *AuthCtrl) sign(u *entities.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":      u.UserID,
		"email":   u.Email,
		"isAdmin": u.IsAdmin,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(h.secret))
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var req credReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password required"})
	}

	var existing entities.User
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "Email already in use"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Registration failed"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Registration failed"})
	}
	u := entities.User{Name: req.Name, Email: req.Email, PasswordHash: string(hash)}
	if err := h.db.Create(&u).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Registration failed"})
	}
	token, err := h.sign(&u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Registration failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"user":  userOut{ID: u.UserID, Name: u.Name, Email: u.Email},
		"token": token,
	})
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req credReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password required"})
	}

	var u entities.User
	if err := h.db.Where("email = ?", req.Email).First(&u).Error; err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}
	token, err := h.sign(&u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Login failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user":  userOut{ID: u.UserID, Name: u.Name, Email: u.Email},
		"token": token,
	})
}
