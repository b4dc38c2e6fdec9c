package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	ucappointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// USE CASES
// ======================================================

type AppointmentLister interface {
	Execute(ctx context.Context, sess session.Session, in ucappointment.ListInput) ([]dto.AppointmentListDTO, error)
}

type AppointmentCreator interface {
	Execute(ctx context.Context, sess session.Session, in ucappointment.CreateAppointmentInput) (*models.Appointment, error)
}

type AppointmentBooker interface {
	Execute(ctx context.Context, sess session.Session, in ucappointment.BookByNameInput) (*models.Appointment, error)
}

type AppointmentUpdater interface {
	Execute(ctx context.Context, sess session.Session, id uint, in ucappointment.UpdateAppointmentInput) (*models.Appointment, error)
}

type AppointmentDeleter interface {
	Execute(ctx context.Context, sess session.Session, id uint) error
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list   AppointmentLister
	create AppointmentCreator
	book   AppointmentBooker
	update AppointmentUpdater
	remove AppointmentDeleter
}

func NewAppointmentHandler(
	list AppointmentLister,
	create AppointmentCreator,
	book AppointmentBooker,
	update AppointmentUpdater,
	remove AppointmentDeleter,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:   list,
		create: create,
		book:   book,
		update: update,
		remove: remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ClientID       uint   `json:"client_id"`
	NewClientName  string `json:"new_client_name"`
	NewClientPhone string `json:"new_client_phone"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

type BookAppointmentRequest struct {
	ProfessionalName string `json:"professional_name" binding:"required"`
	ClientName       string `json:"client_name" binding:"required"`
	ClientPhone      string `json:"client_phone"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time" binding:"required"`
	Status           string `json:"status"`
	Notes            string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Notes  *string `json:"notes"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	in, ok := listInput(c)
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), middleware.Session(c), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, out)
}

func listInput(c *gin.Context) (ucappointment.ListInput, bool) {
	professionalID, ok := queryID(c, "professional_id")
	if !ok {
		return ucappointment.ListInput{}, false
	}
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return ucappointment.ListInput{}, false
	}

	return ucappointment.ListInput{
		ProfessionalID: professionalID,
		ClientID:       clientID,
		Status:         c.Query("status"),
		From:           c.Query("from"),
		To:             c.Query("to"),
	}, true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.Session(c), ucappointment.CreateAppointmentInput{
		ProfessionalID: req.ProfessionalID,
		ClientID:       req.ClientID,
		NewClientName:  req.NewClientName,
		NewClientPhone: req.NewClientPhone,
		Date:           req.Date,
		Time:           req.Time,
		Status:         req.Status,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAppointmentListDTO(*ap))
}

// Book recebe nomes em vez de ids (formulário do calendário).
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), middleware.Session(c), ucappointment.BookByNameInput{
		ProfessionalName: req.ProfessionalName,
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		Date:             req.Date,
		Time:             req.Time,
		Status:           req.Status,
		Notes:            req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAppointmentListDTO(*ap))
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.Session(c), id, ucappointment.UpdateAppointmentInput{
		Status: req.Status,
		Date:   req.Date,
		Time:   req.Time,
		Notes:  req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentListDTO(*ap))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
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
