package handlers

import (
	"net/http"
	"time"

	"eldercare-backend/internal/models"
	"eldercare-backend/internal/session"
	"eldercare-backend/internal/store"
	"eldercare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	dir      store.UserDirectory
	sessions *session.Manager
}

// Register creates an account in the directory. The password from the form is
// discarded: the directory is a mock and login never checks credentials.
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	now := time.Now()
	user := models.User{
		ID:        utils.NewID(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      input.Role,
		Birthdate: input.Birthdate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user.Role == models.RoleElderly {
		user.MedicalInfo = &models.MedicalInfo{}
	}

	if err := h.dir.CreateUser(user); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Email already registered", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Registration successful, please log in", user)
}

// Login matches the directory by email and establishes the session. Any
// password is accepted; a missing account is the only failure.
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", nil)
		return
	}

	if !h.sessions.Login(input.Email, input.Password) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid email or password", nil)
		return
	}

	user, _ := h.sessions.Current()

	// Remember the device token so push notifications can reach this login.
	if input.FCMToken != "" && input.FCMToken != user.FCMToken {
		user.FCMToken = input.FCMToken
		h.dir.SaveUser(user)
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout clears the persisted session. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout()
	utils.APIResponse(c, http.StatusOK, true, "Logged out", nil)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		utils.APIResponse(c, http.StatusUnauthorized, false, "No session", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Profile", user)
}

// UpdateProfile merges a partial update into the session user.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		utils.APIResponse(c, http.StatusUnauthorized, false, "No session", nil)
		return
	}

	var input models.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	if current, active := h.sessions.Current(); active && current.ID == user.ID {
		h.sessions.UpdateUser(input)
		updated, _ := h.sessions.Current()
		utils.APIResponse(c, http.StatusOK, true, "Profile updated", updated)
		return
	}

	// Token-authenticated request without a restored session: update the
	// directory record directly.
	input.Apply(&user)
	user.UpdatedAt = time.Now()
	if err := h.dir.SaveUser(user); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Storage error", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Profile updated", user)
}
