package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_service/internal/repository"
	"todo_service/internal/service"
)

const (
	msgUserNotFound    = "User not found"
	msgUserCreated     = "User created successfully"
	msgUserDeleted     = "User deleted successfully"
	msgLoggedIn        = "Logged in successfully"
	msgDetailsUpdated  = "User details updated successfully"
	msgPasswordUpdated = "Password updated successfully"

	msgEmailTaken    = "Email already taken"
	msgUsernameTaken = "Username already taken"
	// One static text for both unknown email and wrong password.
	msgInvalidCredentials = "Invalid email or password"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type accountDetailsRequest struct {
	ID   string `json:"id" binding:"required"`
	Data struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
	} `json:"data"`
}

type passwordRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Minimal projection returned on login.
type userProjection struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	ID       string `json:"id"`
}

// conflictMessage maps a storage uniqueness rejection to its response text,
// or "" when the error is not a conflict.
func conflictMessage(err error) string {
	switch {
	case errors.Is(err, repository.ErrEmailTaken):
		return msgEmailTaken
	case errors.Is(err, repository.ErrUsernameTaken):
		return msgUsernameTaken
	default:
		return ""
	}
}

// @Summary      Register account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "user, message, token"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /user/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
		return
	}

	u, token, err := h.services.Accounts.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if msg := conflictMessage(err); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "user_register_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    u,
		"message": msgUserCreated,
		"token":   token,
	})
}

// @Summary      Log in
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "message, token, user"
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /user/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
		return
	}

	u, token, err := h.services.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgInvalidCredentials})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "user_login_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgLoggedIn,
		"token":   token,
		"user":    userProjection{Username: u.Username, Email: u.Email, ID: u.ID},
	})
}

// @Summary      Delete account
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/delete/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.services.Accounts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "user_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgUserDeleted})
}

// @Summary      Update account details
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      accountDetailsRequest  true  "id plus fields to change"
// @Success      200   {object}  map[string]interface{}  "message, user"
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /user/update/account-details [post]
func (h *Handler) updateAccountDetails(c *gin.Context) {
	var req accountDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
		return
	}

	u, err := h.services.Accounts.UpdateDetails(c.Request.Context(), req.ID, service.AccountDetails{
		Username: req.Data.Username,
		Email:    req.Data.Email,
	})
	if err != nil {
		h.respondUpdateError(c, err, "user_update_details_failed", req.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgDetailsUpdated, "user": u})
}

// @Summary      Update password
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      passwordRequest  true  "id plus new password"
// @Success      200   {object}  map[string]interface{}  "message, user"
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /user/update/password [post]
func (h *Handler) updatePassword(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
		return
	}

	u, err := h.services.Accounts.UpdatePassword(c.Request.Context(), req.ID, req.Password)
	if err != nil {
		h.respondUpdateError(c, err, "user_update_password_failed", req.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgPasswordUpdated, "user": u})
}

// Shared 404/400/500 mapping for the account update endpoints.
func (h *Handler) respondUpdateError(c *gin.Context, err error, logKey, id string) {
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
		return
	}
	if msg := conflictMessage(err); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}
	if errors.Is(err, service.ErrInvalidEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), logKey, err, "id", id)
}
