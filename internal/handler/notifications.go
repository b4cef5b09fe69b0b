package handler

import (
	"net/http"

	"pharmastock/internal/dto"
	"pharmastock/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct{ svc service.NotificationService }

func NewNotificationsHandler(svc service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{svc: svc}
}

// Summary godoc
// @Summary      Stock notifications
// @Description  Drugs whose total amount is below threshold, and lots expiring within days (or already expired).
// @Tags         notifications
// @Produce      json
// @Param        threshold query    int false "low stock threshold"
// @Param        days      query    int false "expiry window in days"
// @Success      200       {object} dto.Envelope{data=dto.NotificationResponse}
// @Failure      400       {object} apierror.ValidationError
// @Router       /notifications [get]
func (h *NotificationsHandler) Summary(c *gin.Context) {
	var q dto.NotificationQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("notifications", resp))
}

// SendDigest godoc
// @Summary      Email the notification digest
// @Description  Mails the current notifications with the PDF stock report attached.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body body     dto.SendDigestRequest true "recipient"
// @Success      202  {object} dto.Envelope
// @Failure      400  {object} apierror.ValidationError
// @Failure      500  {object} apierror.APIError
// @Router       /notifications/email [post]
func (h *NotificationsHandler) SendDigest(c *gin.Context) {
	var req dto.SendDigestRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SendDigest(c.Request.Context(), req.To); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.OK("digest sent", nil))
}
