package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/services"
	"github.com/energeist/dockerized-climbunity/utils"
)

const accessTokenCookie = "access_token"

// SignupHandler handles new climber registration.
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewUserService(db)
	return func(c *gin.Context) {
		var input services.RegisterRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := svc.Register(input)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status": "success",
			"user": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
			},
		})
	}
}

// LoginHandler authenticates a climber and issues tokens. The access token
// is also set as a cookie so server-rendered pages can gate their
// management affordances.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewUserService(db)
	return func(c *gin.Context) {
		var input struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := svc.Authenticate(input.Username, input.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := utils.CreateToken(user.ID, user.IsAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error generating access token"})
			return
		}

		refreshToken, hashedToken, err := utils.GenerateRefreshToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error generating refresh token"})
			return
		}

		expiresAt := time.Now().Add(7 * 24 * time.Hour)
		if err := utils.SaveRefreshToken(db, user.ID, hashedToken, expiresAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save refresh token"})
			return
		}

		c.SetCookie("refresh_token", refreshToken, int(time.Until(expiresAt).Seconds()), "/", "", false, true)
		c.SetCookie(accessTokenCookie, token, int((24 * time.Hour).Seconds()), "/", "", false, true)

		next := c.Query("next")
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"token":  token,
			"next":   next,
			"user": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
			},
		})
	}
}

func RefreshTokenHandler(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewUserService(db)
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie("refresh_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token required"})
			return
		}

		rt, err := utils.ValidateRefreshToken(db, refreshToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
			return
		}

		user, err := svc.GetUser(rt.UserID)
		if err != nil {
			respondError(c, err)
			return
		}

		accessToken, err := utils.CreateToken(user.ID, user.IsAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error generating access token"})
			return
		}

		c.SetCookie(accessTokenCookie, accessToken, int((24 * time.Hour).Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{
			"status":       "success",
			"access_token": accessToken,
		})
	}
}

func LogoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if refreshToken, err := c.Cookie("refresh_token"); err == nil {
			if err := utils.DeleteRefreshToken(db, refreshToken); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not logout"})
				return
			}
		}

		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		c.SetCookie(accessTokenCookie, "", -1, "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "logged out",
		})
	}
}
