package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"photoalbum/models"
	"photoalbum/repository"
	"photoalbum/utils"
)

// UserController handles registration and credential login. Sessions
// are JWTs carried in a Bearer cookie (browsers) or returned in the
// body (API clients).
type UserController struct {
	users     *repository.UserRepository
	jwtSecret string
	validate  *validator.Validate
}

func NewUserController(users *repository.UserRepository, jwtSecret string) *UserController {
	return &UserController{
		users:     users,
		jwtSecret: jwtSecret,
		validate:  validator.New(),
	}
}

func (uc *UserController) Register(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := c.ShouldBind(&user); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := uc.validate.Struct(user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	exists, err := uc.users.Exists(ctx, user.Username, user.Email)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing user"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hashed, err := utils.HashPass(user.Password)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	user.Password = hashed
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := uc.users.Insert(ctx, &user); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"email":    user.Email,
	})
}

func (uc *UserController) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var login models.UserLogin
	if err := c.ShouldBind(&login); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := uc.validate.Struct(login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both username and password are required"})
		return
	}

	user, err := uc.users.FindByUsername(ctx, login.Username)
	if err != nil {
		if !errors.Is(err, models.ErrNoRecords) {
			log.Println(err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if err := utils.ComparePass(login.Password, user.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := utils.SignedToken(uc.jwtSecret, user.Email, user.Username)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "Bearer",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(utils.TokenExpiry),
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.JSON(http.StatusOK, gin.H{
		"status": "Login successful",
		"token":  token,
	})
}

func (uc *UserController) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "Bearer",
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-1 * time.Second),
		MaxAge:   -1,
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.JSON(http.StatusOK, gin.H{"status": "Logout successful"})
}
