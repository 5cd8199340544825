package routes

import (
	"net/http"
	"time"

	"mediconnect/handlers"
	"mediconnect/middleware"
	"mediconnect/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
	}
}

// RegisterDoctorRoutes registers doctor discovery endpoints. Discovery is
// public so patients can browse before signing in.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.ListDoctorsHandler)
		api.GET("/:id", hb.GetDoctorHandler)
		api.GET("/:id/slots", hb.GetDoctorSlotsHandler)
	}
}

// RegisterAppointmentRoutes registers the booking and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRole(string(models.RolePatient), string(models.RoleAdmin)), hb.BookAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)

		doctorOnly := middleware.RequireRole(string(models.RoleDoctor), string(models.RoleAdmin))
		api.PATCH("/:id/accept", doctorOnly, hb.AcceptAppointmentHandler)
		api.PATCH("/:id/reject", doctorOnly, hb.RejectAppointmentHandler)
		api.PATCH("/:id/start", doctorOnly, hb.StartAppointmentHandler)
		api.PATCH("/:id/complete", doctorOnly, hb.CompleteAppointmentHandler)
		api.PATCH("/:id/cancel", hb.CancelAppointmentHandler)

		// Prescriptions hang off their appointment.
		api.POST("/:id/prescription", doctorOnly, hb.IssuePrescriptionHandler)
		api.GET("/:id/prescription", hb.GetPrescriptionForAppointmentHandler)
	}
}

// RegisterPrescriptionRoutes registers prescription listing endpoints.
func RegisterPrescriptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/prescriptions")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListPrescriptionsHandler)
	}
}

// RegisterAssistantRoutes registers the guided booking assistant endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(string(models.RolePatient)))
		api.POST("/message", hb.AssistantMessageHandler)
	}
}

// RegisterAdminRoutes registers account administration endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(string(models.RoleAdmin)))
		api.GET("/users", hb.AdminListUsersHandler)
		api.GET("/users/:id", hb.AdminGetUserHandler)
		api.PUT("/users/:id", hb.AdminUpdateUserHandler)
		api.DELETE("/users/:id", hb.AdminDeleteUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MediConnect"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPrescriptionRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
