package handlers

import (
	assistantSvc "mediconnect/services/assistant"
	prescriptionSvc "mediconnect/services/prescription"
	"mediconnect/services/scheduling"
	userSvc "mediconnect/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth and profile endpoints.
	RegisterHandler      gin.HandlerFunc
	LoginHandler         gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Doctor discovery endpoints.
	ListDoctorsHandler    gin.HandlerFunc
	GetDoctorHandler      gin.HandlerFunc
	GetDoctorSlotsHandler gin.HandlerFunc

	// Appointment endpoints.
	BookAppointmentHandler     gin.HandlerFunc
	ListAppointmentsHandler    gin.HandlerFunc
	GetAppointmentHandler      gin.HandlerFunc
	AcceptAppointmentHandler   gin.HandlerFunc
	RejectAppointmentHandler   gin.HandlerFunc
	CancelAppointmentHandler   gin.HandlerFunc
	StartAppointmentHandler    gin.HandlerFunc
	CompleteAppointmentHandler gin.HandlerFunc

	// Prescription endpoints.
	IssuePrescriptionHandler             gin.HandlerFunc
	GetPrescriptionForAppointmentHandler gin.HandlerFunc
	ListPrescriptionsHandler             gin.HandlerFunc

	// Assistant endpoint.
	AssistantMessageHandler gin.HandlerFunc

	// Admin endpoints.
	AdminListUsersHandler  gin.HandlerFunc
	AdminGetUserHandler    gin.HandlerFunc
	AdminUpdateUserHandler gin.HandlerFunc
	AdminDeleteUserHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler to its backing service.
func NewHandlerBundle(
	engine scheduling.SchedulingEngine,
	users userSvc.UserService,
	prescriptions prescriptionSvc.PrescriptionService,
	assistant assistantSvc.AssistantService,
) *HandlerBundle {
	return &HandlerBundle{
		RegisterHandler:      RegisterHandler(users),
		LoginHandler:         LoginHandler(users),
		GetProfileHandler:    GetProfileHandler(users),
		UpdateProfileHandler: UpdateProfileHandler(users),

		ListDoctorsHandler:    ListDoctorsHandler(users, engine),
		GetDoctorHandler:      GetDoctorHandler(users),
		GetDoctorSlotsHandler: GetDoctorSlotsHandler(users, engine),

		BookAppointmentHandler:     BookAppointmentHandler(engine),
		ListAppointmentsHandler:    ListAppointmentsHandler(engine),
		GetAppointmentHandler:      GetAppointmentHandler(engine),
		AcceptAppointmentHandler:   AcceptAppointmentHandler(engine),
		RejectAppointmentHandler:   RejectAppointmentHandler(engine),
		CancelAppointmentHandler:   CancelAppointmentHandler(engine),
		StartAppointmentHandler:    StartAppointmentHandler(engine),
		CompleteAppointmentHandler: CompleteAppointmentHandler(engine),

		IssuePrescriptionHandler:             IssuePrescriptionHandler(prescriptions),
		GetPrescriptionForAppointmentHandler: GetPrescriptionForAppointmentHandler(prescriptions),
		ListPrescriptionsHandler:             ListPrescriptionsHandler(prescriptions),

		AssistantMessageHandler: AssistantMessageHandler(assistant),

		AdminListUsersHandler:  AdminListUsersHandler(users),
		AdminGetUserHandler:    AdminGetUserHandler(users),
		AdminUpdateUserHandler: AdminUpdateUserHandler(users),
		AdminDeleteUserHandler: AdminDeleteUserHandler(users),
	}
}
