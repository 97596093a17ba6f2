package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/surajmeruva0786/DigiGov10/internal/auth"
	"github.com/surajmeruva0786/DigiGov10/internal/i18n"
	"github.com/surajmeruva0786/DigiGov10/internal/model"
)

type AuthHandler struct {
	svc         *auth.Service
	messages    *i18n.Localizer
	defaultLang string
}

func NewAuthHandler(svc *auth.Service, messages *i18n.Localizer, defaultLang string) *AuthHandler {
	return &AuthHandler{svc: svc, messages: messages, defaultLang: defaultLang}
}

type registerUserRequest struct {
	Aadhaar  string `json:"aadhaar" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	lang := requestLang(c, h.defaultLang)
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.messages.T(lang, "fill_all_fields")})
		return
	}
	if len(req.Aadhaar) != 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.messages.T(lang, "invalid_aadhaar")})
		return
	}
	if len(req.Phone) != 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.messages.T(lang, "invalid_phone")})
		return
	}
	session, token, err := h.svc.RegisterUser(c.Request.Context(), model.User{
		Aadhaar:  req.Aadhaar,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.messages.T(lang, "save_failed")})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"session": session,
		"message": h.messages.T(lang, "register_ok"),
	})
}

type loginUserRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) LoginUser(c *gin.Context) {
	lang := requestLang(c, h.defaultLang)
	var req loginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.messages.T(lang, "fill_all_fields")})
		return
	}
	if len(req.Phone) != 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.messages.T(lang, "invalid_phone")})
		return
	}
	session, token, err := h.svc.LoginUser(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"session": session,
		"message": h.messages.T(lang, "login_ok"),
	})
}

type registerOfficialRequest struct {
	Name       string `json:"name" binding:"required"`
	EmployeeID string `json:"employeeId" binding:"required"`
	Department string `json:"department" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (h *AuthHandler) RegisterOfficial(c *gin.Context) {
	lang := requestLang(c, h.defaultLang)
	var req registerOfficialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.messages.T(lang, "fill_all_fields")})
		return
	}
	session, token, err := h.svc.RegisterOfficial(c.Request.Context(), model.Official{
		Name:       req.Name,
		EmployeeID: req.EmployeeID,
		Department: req.Department,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.messages.T(lang, "save_failed")})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"session": session,
		"message": h.messages.T(lang, "register_ok"),
	})
}

type loginOfficialRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (h *AuthHandler) LoginOfficial(c *gin.Context) {
	lang := requestLang(c, h.defaultLang)
	var req loginOfficialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.messages.T(lang, "fill_all_fields")})
		return
	}
	session, token, err := h.svc.LoginOfficial(c.Request.Context(), req.EmployeeID, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"session": session,
		"message": h.messages.T(lang, "login_ok"),
	})
}

// Logout ends the session. Tokens are stateless: the server keeps no session
// record to clear, so this only confirms the discard to the client.
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := requestLang(c, h.defaultLang)
	c.JSON(http.StatusOK, gin.H{"message": h.messages.T(lang, "logout_ok")})
}
