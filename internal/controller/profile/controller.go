// Package profile provides HTTP handlers for account and profile endpoints.
package profile

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"talentbridge-backend/internal/database"
	"talentbridge-backend/internal/model"
	"talentbridge-backend/internal/utilities"
)

// ProfileController handles profile related endpoints
type ProfileController struct {
	DB *database.DBinstanceStruct
}

// NewProfileController creates a new instance of ProfileController
func NewProfileController(db *database.DBinstanceStruct) *ProfileController {
	return &ProfileController{
		DB: db,
	}
}

// GetMe returns the calling user with their role profile.
// @Summary Get caller's account and profile
// @Tags Profile
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.User "Return caller's user record"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /profile/me [get]
func (pc *ProfileController) GetMe(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// EditEmployerProfile updates the caller's employer profile with the non-empty
// fields of the request body.
// @Summary Edit caller's employer profile
// @Description Only employer users have access to this endpoint. Empty fields keep their current value.
// @Tags Profile
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Profile body model.EditableEmployerInfo true "Fields to update"
// @Success 200 {object} model.EmployerProfile "Successfully updated profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profile/employer [patch]
func (pc *ProfileController) EditEmployerProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	edited := model.EditableEmployerInfo{}
	if err := c.ShouldBindJSON(&edited); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	profile := model.EmployerProfile{}
	if err := pc.DB.Where("user_id = ?", user.ID.String()).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Profile row may be missing for accounts created before profiles
			// became mandatory, create it on first edit.
			profile = model.EmployerProfile{UserID: user.ID}
		} else {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to retrieve profile: %s", err.Error()),
			})
			return
		}
	}

	utilities.MergeNonEmpty(&profile.EditableEmployerInfo, &edited)

	if err := pc.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update profile: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// EditCandidateProfile updates the caller's candidate profile with the
// non-empty fields of the request body.
// @Summary Edit caller's candidate profile
// @Description Only candidate users have access to this endpoint. Empty fields keep their current value.
// @Tags Profile
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Profile body model.EditableCandidateInfo true "Fields to update"
// @Success 200 {object} model.CandidateProfile "Successfully updated profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as candidate"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profile/candidate [patch]
func (pc *ProfileController) EditCandidateProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	edited := model.EditableCandidateInfo{}
	if err := c.ShouldBindJSON(&edited); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	profile := model.CandidateProfile{}
	if err := pc.DB.Where("user_id = ?", user.ID.String()).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = model.CandidateProfile{UserID: user.ID}
		} else {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to retrieve profile: %s", err.Error()),
			})
			return
		}
	}

	utilities.MergeNonEmpty(&profile.EditableCandidateInfo, &edited)

	if err := pc.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update profile: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}
