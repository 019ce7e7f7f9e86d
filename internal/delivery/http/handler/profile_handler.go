package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/movemate/movemate-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetOverview returns the profile center page data
// @Summary Profile overview
// @Description Profile, preference record and earned badges
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} profile.Overview
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetOverview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	overview, err := h.profileUseCase.GetOverview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// Update modifies username and avatar
// @Summary Update profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdatePersonalInfo modifies body metrics and training settings
// @Summary Update personal info
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdatePersonalInfoRequest true "Fields to update"
// @Success 200 {object} domain.UserPreferences
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/personal-info [put]
func (h *ProfileHandler) UpdatePersonalInfo(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req profile.UpdatePersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	prefs, err := h.profileUseCase.UpdatePersonalInfo(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdateLanguageRequest represents a language switch
type UpdateLanguageRequest struct {
	Language string `json:"language" binding:"required,oneof=zh en"`
}

// UpdateLanguage switches the interface language
// @Summary Update language
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateLanguageRequest true "Language code"
// @Success 200 {object} domain.UserPreferences
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/language [put]
func (h *ProfileHandler) UpdateLanguage(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req UpdateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	prefs, err := h.profileUseCase.UpdateLanguage(c.Request.Context(), userID, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}
