package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/sais189/travelex/internal/middleware"
	"github.com/sais189/travelex/internal/models"
	"github.com/sais189/travelex/internal/repository"
)

// AuthController logs admins in.
type AuthController struct {
	users *repository.UserRepository
	auth  *middleware.Auth
}

func NewAuthController(users *repository.UserRepository, auth *middleware.Auth) *AuthController {
	return &AuthController{users: users, auth: auth}
}

// LoginUser handles POST /auth/login.
func (ac *AuthController) LoginUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.users.GetByEmail(c.Request.Context(), normalizeEmail(body.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found or invalid credentials"})
		} else {
			logrus.WithError(err).Error("LoginUser: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found or invalid credentials"})
		return
	}

	token, err := ac.auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"ID":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// BootstrapAdmin creates the admin account from the environment when it
// does not exist yet. An existing account is left untouched.
func BootstrapAdmin(ctx context.Context, users *repository.UserRepository, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	user := models.User{Email: email, Password: hashed, Role: models.RoleAdmin}
	if err := users.Create(ctx, &user); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return err
	}
	logrus.WithField("email", email).Info("Bootstrap admin account created")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
