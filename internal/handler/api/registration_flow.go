package api

import (
	"errors"
	"net/http"

	"guestlink/internal/domain/link"
	"guestlink/internal/domain/wizard"
	reqdto "guestlink/internal/handler/dto/request"
	resdto "guestlink/internal/handler/dto/response"
	"guestlink/internal/handler/httperr"
	"guestlink/internal/handler/middleware"
	"guestlink/internal/pkg/config"
	"guestlink/internal/pkg/cookie"
	"guestlink/internal/pkg/errs"
	"guestlink/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingFlowContext = errors.New("flow id missing from context")

type RegistrationFlowHandler struct {
	flows     usecase.RegistrationFlows
	cookieCfg config.CookieConfig
	flowTTL   config.FlowConfig
}

func NewRegistrationFlowHandler(flows usecase.RegistrationFlows, cfg config.Config) *RegistrationFlowHandler {
	return &RegistrationFlowHandler{
		flows:     flows,
		cookieCfg: cfg.Cookie,
		flowTTL:   cfg.Flow,
	}
}

// @Summary Start registration flow
// @Description Validate a registration link token and start a guest registration flow
// @Tags registration-flow
// @Produce json
// @Param token path string true "Registration link token"
// @Success 201 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /registration-links/{token}/flows [post]
func (h *RegistrationFlowHandler) Start(c *gin.Context) {
	view, err := h.flows.Start(c.Request.Context(), c.Param("token"))
	if err != nil {
		var ineligible *usecase.IneligibleError
		if errors.As(err, &ineligible) {
			httperr.AbortWithError(c, statusForReason(ineligible.Reason), err, ineligible.Message,
				httperr.ReasonDetail{Reason: ineligible.Reason.String()})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetFlowCookie(c, h.cookieCfg, view.ID.String(), h.flowTTL.TTL)
	c.Header(middleware.FlowIDHeader, view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromFlowView(view))
}

// @Summary Get registration flow
// @Description Get the current state of the guest's registration flow
// @Tags registration-flow
// @Produce json
// @Param X-Flow-ID header string false "Flow ID when the flow cookie is not available"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Router /registration-flow [get]
func (h *RegistrationFlowHandler) Get(c *gin.Context) {
	h.withFlow(c, func(flowID uuid.UUID) (*usecase.FlowView, error) {
		return h.flows.Get(c.Request.Context(), flowID)
	})
}

// @Summary Next step
// @Description Move to the next step. Reaching the last step submits the registration once.
// @Tags registration-flow
// @Produce json
// @Param X-Flow-ID header string false "Flow ID when the flow cookie is not available"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Router /registration-flow/next [post]
func (h *RegistrationFlowHandler) Next(c *gin.Context) {
	h.withFlow(c, func(flowID uuid.UUID) (*usecase.FlowView, error) {
		return h.flows.Next(c.Request.Context(), flowID)
	})
}

// @Summary Previous step
// @Tags registration-flow
// @Produce json
// @Param X-Flow-ID header string false "Flow ID when the flow cookie is not available"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Router /registration-flow/back [post]
func (h *RegistrationFlowHandler) Back(c *gin.Context) {
	h.withFlow(c, func(flowID uuid.UUID) (*usecase.FlowView, error) {
		return h.flows.Back(c.Request.Context(), flowID)
	})
}

// @Summary Go to step
// @Description Jump to a step by ID. Unknown step IDs leave the flow unchanged.
// @Tags registration-flow
// @Produce json
// @Param step path string true "Step ID"
// @Param X-Flow-ID header string false "Flow ID when the flow cookie is not available"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Router /registration-flow/steps/{step} [post]
func (h *RegistrationFlowHandler) GoTo(c *gin.Context) {
	step := wizard.StepID(c.Param("step"))
	h.withFlow(c, func(flowID uuid.UUID) (*usecase.FlowView, error) {
		return h.flows.GoTo(c.Request.Context(), flowID, step)
	})
}

// @Summary Update primary guest
// @Tags registration-flow
// @Accept json
// @Produce json
// @Param X-Flow-ID header string false "Flow ID when the flow cookie is not available"
// @Param request body reqdto.GuestRequest true "Primary guest"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /registration-flow/guest [put]
func (h *RegistrationFlowHandler) UpdateGuest(c *gin.Context) {
	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	guest, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	h.withFlow(c, func(flowID uuid.UUID) (*usecase.FlowView, error) {
		return h.flows.UpdateGuest(c.Request.Context(), flowID, guest)
	})
}

// @Summary Replace companions
// @Tags registration-flow
// @Accept json
// @Produce json
// @Param X-Flow-ID header string false "Flow ID when the flow cookie is not available"
// @Param request body reqdto.CompanionsRequest true "Companions"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /registration-flow/companions [put]
func (h *RegistrationFlowHandler) UpdateCompanions(c *gin.Context) {
	var req reqdto.CompanionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	companions, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	h.withFlow(c, func(flowID uuid.UUID) (*usecase.FlowView, error) {
		return h.flows.UpdateCompanions(c.Request.Context(), flowID, companions)
	})
}

func (h *RegistrationFlowHandler) withFlow(c *gin.Context, fn func(flowID uuid.UUID) (*usecase.FlowView, error)) {
	flowID, ok := middleware.GetFlowID(c)
	if !ok {
		// RequireFlow must run first
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingFlowContext, "Internal server error", nil)
		return
	}

	view, err := fn(flowID)
	if err != nil {
		if errs.Is(err, usecase.ErrFlowNotFound) {
			cookie.ClearFlowCookie(c, h.cookieCfg)
			httperr.AbortWithError(c, http.StatusNotFound, err, "Registration flow not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(view))
}

func statusForReason(reason link.Reason) int {
	switch reason {
	case link.ReasonInvalidToken:
		return http.StatusBadRequest
	case link.ReasonInsufficientRole:
		return http.StatusForbidden
	case link.ReasonExpired:
		return http.StatusGone
	case link.ReasonCompleted:
		return http.StatusConflict
	case link.ReasonMissingData:
		return http.StatusUnprocessableEntity
	case link.ReasonValidationFailed, link.ReasonFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
