package v1

import (
	"net/http"

	"go-izcloud-backend/internal/delivery/http/response"
	"go-izcloud-backend/internal/domain"
	"go-izcloud-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type GDPRHandler struct {
	gdprUC domain.GDPRUsecase
}

// NewGDPRHandler registers the data-rights routes (public, no auth required)
func NewGDPRHandler(public *gin.RouterGroup, gdprUC domain.GDPRUsecase, rateLimit gin.HandlerFunc) {
	handler := &GDPRHandler{
		gdprUC: gdprUC,
	}

	public.POST("/gdpr-request", rateLimit, handler.SubmitGDPRRequest)
}

// SubmitGDPRRequest godoc
// @Summary      Submit GDPR Data-Rights Request
// @Description  Exercise a GDPR right (access, rectification, deletion, ...) over personal data. Public endpoint, rate limited per client IP, stricter than the contact form.
// @Tags         gdpr
// @Accept       json
// @Produce      json
// @Param        request  body      domain.GDPRRequest  true  "GDPR Request Data"
// @Success      200      {object}  response.SuccessResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      429      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /gdpr-request [post]
func (h *GDPRHandler) SubmitGDPRRequest(c *gin.Context) {
	var req domain.GDPRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.gdprUC.SubmitGDPRRequest(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "GDPR request sent successfully")
}
