package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/codeLord61/Exchangify/pkg/storage"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles signup, signin and logout.
type AuthHandler struct {
	userRepository repositories.UserRepository
	store          *storage.Store
	jwtSecret      string
}

func NewAuthHandler(userRepo repositories.UserRepository, store *storage.Store, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		store:          store,
		jwtSecret:      jwtSecret,
	}
}

func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
}

func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.POST("/auth/logout", h.Logout)
}

// Signup registers a user account and signs it in. Accepts multipart form
// data so an optional profile image can ride along.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email already in use. Please try another one.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return httpError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return httpError(err)
	}

	profileImage := ""
	if file, err := c.FormFile("profile_image"); err == nil {
		profileImage, err = h.store.Save(file, storage.SubdirProfiles)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	country := req.Country
	if country == "" {
		country = "United States"
	}

	user := &models.User{
		Email:        req.Email,
		Password:     string(hash),
		Role:         models.RoleUser,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Mobile:       req.Mobile,
		Gender:       req.Gender,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ProfileImage: profileImage,
	}
	if err := h.userRepository.Create(user); err != nil {
		return httpError(err)
	}

	if err := h.userRepository.SetOnline(user.ID, true); err != nil {
		return httpError(err)
	}

	token, err := h.issueToken(user)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": user})
}

// SignIn checks email, password and the requested role.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SigninRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid email or password")
	}
	if user.Role != req.Role {
		return echo.NewHTTPError(http.StatusBadRequest, "This account is not registered as a "+req.Role)
	}

	if err := h.userRepository.SetOnline(user.ID, true); err != nil {
		return httpError(err)
	}

	token, err := h.issueToken(user)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)
	if err := h.userRepository.SetOnline(principal.UserID, false); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *AuthHandler) issueToken(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
