package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucclient "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/client"
)

type ClientHandler struct {
	list   *ucclient.ListClients
	create *ucclient.CreateClient
	update *ucclient.UpdateClient
	remove *ucclient.DeleteClient
}

func NewClientHandler(
	list *ucclient.ListClients,
	create *ucclient.CreateClient,
	update *ucclient.UpdateClient,
	remove *ucclient.DeleteClient,
) *ClientHandler {
	return &ClientHandler{
		list:   list,
		create: create,
		update: update,
		remove: remove,
	}
}

type ClientRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func (r ClientRequest) input() ucclient.Input {
	return ucclient.Input{Name: r.Name, Phone: r.Phone, Email: r.Email}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), middleware.Session(c), c.Query("query"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), middleware.Session(c), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), middleware.Session(c), id, req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.Session(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
