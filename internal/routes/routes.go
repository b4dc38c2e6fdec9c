package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authtoken "github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
	"github.com/BruksfildServices01/clinic-scheduler/internal/storage"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/auth"
	ucAvailability "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/availability"
	ucClient "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/client"
	ucNotification "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/notification"
	ucOrganization "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/organization"
	ucProfessional "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/professional"
	ucReport "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/report"
)

// Infra são as peças de processo criadas no main e compartilhadas pelas rotas.
type Infra struct {
	Hub       *realtime.Hub
	Publisher realtime.Publisher
	Notifier  ucAppointment.Notifier
	Store     storage.ObjectStore
	Location  *time.Location
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)
	professionalRepo := infraRepo.NewProfessionalGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)
	accountRepo := infraRepo.NewAccountGormRepository(db)

	signer := authtoken.NewSigner(cfg.JWTSecret, cfg.AccessTokenTTL)
	issuer := ucAuth.NewIssuer(accountRepo, signer, cfg.RefreshTokenTTL)
	loc := infra.Location

	// ======================================================
	// 🧠 USE CASES APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		infra.Publisher,
		infra.Notifier,
		loc,
	)

	bookAppointmentUC := ucAppointment.NewBookAppointmentByName(
		appointmentRepo,
		createAppointmentUC,
		infra.Notifier,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(handlers.AuthUseCases{
		SignUp:     ucAuth.NewSignUp(accountRepo, issuer),
		SignIn:     ucAuth.NewSignIn(accountRepo, issuer),
		Refresh:    ucAuth.NewRefresh(issuer),
		SignOut:    ucAuth.NewSignOut(issuer),
		GetSession: ucAuth.NewGetSession(accountRepo),
	}, cfg.CookieSecure)

	organizationHandler := handlers.NewOrganizationHandler(
		ucOrganization.NewSettings(accountRepo),
	)

	professionalHandler := handlers.NewProfessionalHandler(handlers.ProfessionalUseCases{
		List:        ucProfessional.NewListProfessionals(professionalRepo),
		Get:         ucProfessional.NewGetProfessional(professionalRepo),
		Create:      ucProfessional.NewCreateProfessional(professionalRepo),
		Update:      ucProfessional.NewUpdateProfessional(professionalRepo),
		Delete:      ucProfessional.NewDeleteProfessional(professionalRepo),
		Photo:       ucProfessional.NewUploadPhoto(professionalRepo, infra.Store),
		GetSchedule: ucAvailability.NewGetWeeklySchedule(appointmentRepo),
		SetSchedule: ucAvailability.NewSetWeeklySchedule(appointmentRepo),
		Slots:       ucAppointment.NewGetSlots(appointmentRepo, loc),
	})

	clientHandler := handlers.NewClientHandler(
		ucClient.NewListClients(clientRepo),
		ucClient.NewCreateClient(clientRepo),
		ucClient.NewUpdateClient(clientRepo),
		ucClient.NewDeleteClient(clientRepo),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewListAppointments(appointmentRepo, loc),
		createAppointmentUC,
		bookAppointmentUC,
		ucAppointment.NewUpdateAppointment(appointmentRepo, infra.Publisher, loc),
		ucAppointment.NewDeleteAppointment(appointmentRepo, infra.Publisher),
	)

	notificationHandler := handlers.NewNotificationHandler(
		ucNotification.NewInbox(notificationRepo, infra.Publisher),
	)

	reportHandler := handlers.NewReportHandler(
		ucReport.NewGetSummary(appointmentRepo, loc),
		ucReport.NewGetDashboard(appointmentRepo, loc),
		ucReport.NewExportAppointments(appointmentRepo, loc),
	)

	realtimeHandler := handlers.NewRealtimeHandler(infra.Hub, cfg.CORSOrigins)

	authRequired := middleware.AuthMiddleware(signer, accountRepo)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/signin", authHandler.SignIn)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/signout", authHandler.SignOut)
			auth.GET("/session", authRequired, authHandler.Session)
		}

		api.GET("/realtime", authRequired, realtimeHandler.Subscribe)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		me := api.Group("/me")
		me.Use(authRequired)
		{
			me.GET("/organization", organizationHandler.Get)
			me.PATCH("/organization", organizationHandler.Update)

			// ------------------------------
			// PROFESSIONALS
			// ------------------------------
			me.GET("/professionals", professionalHandler.List)
			me.POST("/professionals", professionalHandler.Create)
			me.GET("/professionals/:id", professionalHandler.Get)
			me.PATCH("/professionals/:id", professionalHandler.Update)
			me.DELETE("/professionals/:id", professionalHandler.Delete)
			me.GET("/professionals/:id/availability", professionalHandler.GetAvailability)
			me.PUT("/professionals/:id/availability", professionalHandler.SetAvailability)
			me.GET("/professionals/:id/slots", professionalHandler.Slots)
			me.PUT("/professionals/:id/photo", professionalHandler.UploadPhoto)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			me.GET("/clients", clientHandler.List)
			me.POST("/clients", clientHandler.Create)
			me.PATCH("/clients/:id", clientHandler.Update)
			me.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			me.GET("/appointments", appointmentHandler.List)
			me.POST("/appointments", appointmentHandler.Create)
			me.POST("/appointments/book", appointmentHandler.Book)
			me.PATCH("/appointments/:id", appointmentHandler.Update)
			me.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			me.GET("/notifications", notificationHandler.List)
			me.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
			me.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			me.DELETE("/notifications/:id", notificationHandler.Delete)

			// ------------------------------
			// REPORTS
			// ------------------------------
			me.GET("/reports/summary", reportHandler.Summary)
			me.GET("/dashboard", reportHandler.Dashboard)
			me.GET("/exports/appointments", reportHandler.ExportAppointments)
		}
	}
}
