package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"talentbridge-backend/internal/database"
	"talentbridge-backend/internal/model"
	"talentbridge-backend/internal/utilities"
)

// LocalAuthHandler holds DB reference for handler methods.
type LocalAuthHandler struct {
	DB *database.DBinstanceStruct
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler with the provided database connection.
func NewLocalAuthHandler(db *database.DBinstanceStruct) *LocalAuthHandler {
	return &LocalAuthHandler{
		DB: db,
	}
}

type registerInfo struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=employer candidate"`

	EmployerProfile  *model.EditableEmployerInfo  `json:"employer_profile"`
	CandidateProfile *model.EditableCandidateInfo `json:"candidate_profile"`
}

type loginInfo struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse holds the response data for user login or registration
type AuthResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
}

// RegisterHandler handles local registration by receiving email, username, password and role.
// The user and its role profile are created inside one transaction, so a user never exists
// without the matching profile.
// @Summary Register a new employer or candidate account
// @Description Email must not already exist and password must be 8 characters or longer
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "role can be only 'employer' or 'candidate'"
// @Success 201 {object} AuthResponse "Created user with access token"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (lh *LocalAuthHandler) RegisterHandler(c *gin.Context) {
	var info registerInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email, username, password, and role (only 'employer' or 'candidate') must be provided",
		})
		return
	}

	if len(info.Password) < 8 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Password should longer or equal to 8 characters",
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	user := model.User{
		Email:    info.Email,
		Username: info.Username,
		Password: hashedPassword,
		Role:     info.Role,
	}

	txErr := lh.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		switch info.Role {
		case model.RoleEmployer:
			profile := model.EmployerProfile{UserID: user.ID}
			if info.EmployerProfile != nil {
				profile.EditableEmployerInfo = *info.EmployerProfile
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
			user.EmployerProfile = &profile
		case model.RoleCandidate:
			profile := model.CandidateProfile{UserID: user.ID}
			if info.CandidateProfile != nil {
				profile.EditableCandidateInfo = *info.CandidateProfile
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
			user.CandidateProfile = &profile
		}
		return nil
	})
	if txErr != nil {
		// The unique index on users.email is the duplicate authority, two
		// concurrent registrations both reach Create and one loses here.
		var pgErr *pgconn.PgError
		if errors.As(txErr, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: "Email already exist",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create user: %s", txErr.Error()),
		})
		return
	}

	accessToken, err := GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// LoginHandler handles local login by receiving email and password
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Login credentials"
// @Success 200 {object} AuthResponse "User with access token"
// @Failure 400 {object} utilities.ErrorResponse "Email or password is not provided"
// @Failure 401 {object} utilities.ErrorResponse "Email or password is incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email or password is not provided",
		})
		return
	}

	var user model.User
	err := lh.DB.Preload("EmployerProfile").Preload("CandidateProfile").
		Where("email = ?", info.Email).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Email or password is incorrect",
		})
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Email or password is incorrect",
		})
		return
	}

	accessToken, err := GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		User:        user,
		AccessToken: accessToken,
	})
}
