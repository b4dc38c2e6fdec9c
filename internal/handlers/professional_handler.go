package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucappointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/availability"
	ucprofessional "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/professional"
)

// Tamanho máximo aceito para a foto antes da conversão.
const maxPhotoBytes = 5 << 20

type ProfessionalUseCases struct {
	List        *ucprofessional.ListProfessionals
	Get         *ucprofessional.GetProfessional
	Create      *ucprofessional.CreateProfessional
	Update      *ucprofessional.UpdateProfessional
	Delete      *ucprofessional.DeleteProfessional
	Photo       *ucprofessional.UploadPhoto
	GetSchedule *availability.GetWeeklySchedule
	SetSchedule *availability.SetWeeklySchedule
	Slots       *ucappointment.GetSlots
}

type ProfessionalHandler struct {
	uc ProfessionalUseCases
}

func NewProfessionalHandler(uc ProfessionalUseCases) *ProfessionalHandler {
	return &ProfessionalHandler{uc: uc}
}

// --------- Requests ---------

type ProfessionalRequest struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func (r ProfessionalRequest) input() ucprofessional.Input {
	return ucprofessional.Input{
		Name:      r.Name,
		Specialty: r.Specialty,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

type AvailabilityRequest struct {
	Schedule domain.WeeklySchedule `json:"schedule" binding:"required"`
}

// --------- CRUD ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	out, err := h.uc.List.Execute(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ProfessionalHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.uc.Get.Execute(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req ProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.uc.Create.Execute(c.Request.Context(), middleware.Session(c), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.uc.Update.Execute(c.Request.Context(), middleware.Session(c), id, req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), middleware.Session(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --------- Disponibilidade ---------

func (h *ProfessionalHandler) GetAvailability(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	view, err := h.uc.GetSchedule.Execute(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *ProfessionalHandler) SetAvailability(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req AvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.uc.SetSchedule.Execute(c.Request.Context(), middleware.Session(c), id, req.Schedule)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, view)
}

// Slots: GET /professionals/:id/slots?date=YYYY-MM-DD
func (h *ProfessionalHandler) Slots(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	slots, err := h.uc.Slots.Execute(c.Request.Context(), middleware.Session(c), id, c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, slots)
}

// --------- Foto ---------

// UploadPhoto recebe multipart com o campo "photo".
func (h *ProfessionalHandler) UploadPhoto(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)
	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.FromError(c, httperr.ErrBusiness("invalid_image"))
		return
	}
	defer file.Close()

	p, err := h.uc.Photo.Execute(c.Request.Context(), middleware.Session(c), id, file)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}
