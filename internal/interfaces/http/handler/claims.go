package handler

import (
	"errors"

	"github.com/claimgate/backend/internal/application/claims"
	"github.com/claimgate/backend/internal/domain/claim"
	"github.com/claimgate/backend/internal/interfaces/http/dto"
	"github.com/claimgate/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ClaimsHandler handles claim-related API endpoints
type ClaimsHandler struct {
	BaseHandler
	admission   *claims.AdmissionService
	eligibility *claims.EligibilityService
}

// NewClaimsHandler creates a new ClaimsHandler
func NewClaimsHandler(admission *claims.AdmissionService, eligibility *claims.EligibilityService) *ClaimsHandler {
	return &ClaimsHandler{
		admission:   admission,
		eligibility: eligibility,
	}
}

// ClaimCandidate represents one claim in a submission
// @Description A single (address, item) claim candidate
type ClaimCandidate struct {
	Address string `json:"address" binding:"required,hexid" example:"0x36cd6b3b9329c04df55d55d41c257a5fdd387acd"`
	ItemID  string `json:"item_id" binding:"required,hexid" example:"0x14e15ad24d034f0883e38bcf95a723244a9a22e17d47eb34aa2b91220be0adc4"`
}

// SubmitClaimsRequest represents a claim submission
// @Description Request body for submitting a batch of claims
type SubmitClaimsRequest struct {
	Claims []ClaimCandidate `json:"claims" binding:"required,min=1,max=100,dive"`
}

// Submit godoc
// @Summary      Submit claims for validation and enqueueing
// @Description  Validates each (address, item) candidate against the eligibility store and enqueues admitted claims for fulfillment. Valid candidates succeed even when others in the same batch are rejected; per-candidate rejections are reported in the result.
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        request body SubmitClaimsRequest true "Claim candidates"
// @Success      200 {object} dto.Response{data=claims.SubmitResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      429 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /claims [post]
func (h *ClaimsHandler) Submit(c *gin.Context) {
	var req SubmitClaimsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return
	}

	candidates := make([]claim.Candidate, len(req.Claims))
	for i, cand := range req.Claims {
		candidates[i] = claim.Candidate{
			Address: cand.Address,
			ItemID:  cand.ItemID,
		}
	}

	result, err := h.admission.Submit(c.Request.Context(), candidates)
	if err != nil {
		// A publish failure still reports how far the batch got.
		var pubErr *claim.PublishError
		if errors.As(err, &pubErr) && result != nil {
			c.JSON(dto.GetHTTPStatus(dto.ErrCodePublishFailed),
				dto.NewRejectedResponse(result, dto.ErrCodePublishFailed, pubErr.Error()))
			return
		}
		h.HandleClaimError(c, err)
		return
	}

	if !result.Admitted() {
		first := result.Rejections[0]
		code := dto.ReasonToErrorCode(first.Reason)
		c.JSON(dto.GetHTTPStatus(code),
			dto.NewRejectedResponse(result, code, "no claims admitted"))
		return
	}

	h.Success(c, result)
}

// RedeemableRequest represents the redeemable query parameters
type RedeemableRequest struct {
	Address string `form:"address" binding:"required,hexid"`
}

// Redeemable godoc
// @Summary      List redeemable items for an address
// @Description  Returns every claimable entitlement for the address, including already-fulfilled pairs marked redeemable=false.
// @Tags         claims
// @Produce      json
// @Param        address query string true "Claimant address"
// @Success      200 {object} dto.Response{data=[]claim.RedeemableItem}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /claims/redeemable [get]
func (h *ClaimsHandler) Redeemable(c *gin.Context) {
	var req RedeemableRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return
	}

	items, err := h.eligibility.Redeemable(c.Request.Context(), req.Address)
	if err != nil {
		h.HandleClaimError(c, err)
		return
	}

	h.Success(c, items)
}

// Claimable godoc
// @Summary      List the claimable catalog
// @Description  Returns all items currently open for claiming.
// @Tags         claims
// @Produce      json
// @Success      200 {object} dto.Response{data=[]claim.ClaimableItem}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /claims/claimable [get]
func (h *ClaimsHandler) Claimable(c *gin.Context) {
	items, err := h.eligibility.ClaimableItems(c.Request.Context())
	if err != nil {
		h.HandleClaimError(c, err)
		return
	}

	h.Success(c, items)
}
