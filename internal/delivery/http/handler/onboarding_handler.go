package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/movemate/movemate-backend/internal/usecase/onboarding"
)

type OnboardingHandler struct {
	onboardingUseCase *onboarding.OnboardingUseCase
}

func NewOnboardingHandler(onboardingUseCase *onboarding.OnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUseCase: onboardingUseCase,
	}
}

// Submit saves the questionnaire and triggers sample-data generation
// @Summary Complete onboarding
// @Description Save sport preferences, body metrics and training goal
// @Tags onboarding
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body onboarding.SubmitRequest true "Questionnaire"
// @Success 200 {object} domain.UserPreferences
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /onboarding [post]
func (h *OnboardingHandler) Submit(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req onboarding.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	prefs, err := h.onboardingUseCase.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// Status reports whether the user finished onboarding
// @Summary Onboarding status
// @Tags onboarding
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} ErrorResponse
// @Router /onboarding/status [get]
func (h *OnboardingHandler) Status(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	completed, err := h.onboardingUseCase.HasCompleted(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed": completed})
}
