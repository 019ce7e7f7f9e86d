package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/usecase/community"
)

type CommunityHandler struct {
	communityUseCase *community.CommunityUseCase
}

func NewCommunityHandler(communityUseCase *community.CommunityUseCase) *CommunityHandler {
	return &CommunityHandler{
		communityUseCase: communityUseCase,
	}
}

// List returns the newest communities
// @Summary List communities
// @Tags community
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Community
// @Failure 401 {object} ErrorResponse
// @Router /communities [get]
func (h *CommunityHandler) List(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	communities, err := h.communityUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, communities)
}

// Create opens a new community
// @Summary Create community
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body community.CreateCommunityRequest true "Community data"
// @Success 200 {object} domain.Community
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /communities [post]
func (h *CommunityHandler) Create(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req community.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.communityUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

// Detail returns a community with its posts and member preview
// @Summary Community detail
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} community.Detail
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /communities/{id} [get]
func (h *CommunityHandler) Detail(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid community id"})
		return
	}

	detail, err := h.communityUseCase.GetDetail(c.Request.Context(), communityID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Join adds the user to a community
// @Summary Join community
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /communities/{id}/join [post]
func (h *CommunityHandler) Join(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid community id"})
		return
	}

	if err := h.communityUseCase.Join(c.Request.Context(), communityID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "joined community"})
}

// CreatePostRequest represents a community post
type CreatePostRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// CreatePost publishes a post to a community
// @Summary Create post
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Community ID"
// @Param request body CreatePostRequest true "Post content"
// @Success 200 {object} domain.CommunityPost
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /communities/{id}/posts [post]
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid community id"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.communityUseCase.CreatePost(c.Request.Context(), communityID, userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// SkillExchangeRequest represents a coaching-swap offer
type SkillExchangeRequest struct {
	SkillOffer  string `json:"skill_offer" binding:"required,max=200"`
	SkillWanted string `json:"skill_wanted" binding:"required,max=200"`
}

// ListSkillExchanges returns the newest coaching-swap offers
// @Summary List skill exchanges
// @Tags community
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.SkillExchange
// @Failure 401 {object} ErrorResponse
// @Router /skill-exchanges [get]
func (h *CommunityHandler) ListSkillExchanges(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	exchanges, err := h.communityUseCase.ListSkillExchanges(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, exchanges)
}

// CreateSkillExchange posts a coaching-swap offer
// @Summary Create skill exchange
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SkillExchangeRequest true "Offer"
// @Success 200 {object} domain.SkillExchange
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /skill-exchanges [post]
func (h *CommunityHandler) CreateSkillExchange(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req SkillExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	exchange, err := h.communityUseCase.CreateSkillExchange(c.Request.Context(), userID, req.SkillOffer, req.SkillWanted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, exchange)
}
