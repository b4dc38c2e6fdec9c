package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucnotification "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/notification"
)

type NotificationHandler struct {
	inbox *ucnotification.Inbox
}

func NewNotificationHandler(inbox *ucnotification.Inbox) *NotificationHandler {
	return &NotificationHandler{inbox: inbox}
}

// List: ?unread=true filtra as não lidas.
func (h *NotificationHandler) List(c *gin.Context) {
	ns, err := h.inbox.List(c.Request.Context(), middleware.Session(c), c.Query("unread") == "true")
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, ns)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.inbox.MarkRead(c.Request.Context(), middleware.Session(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.inbox.MarkAllRead(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"updated": n})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.inbox.Delete(c.Request.Context(), middleware.Session(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
