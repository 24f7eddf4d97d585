package http

import (
	"net/http"

	"clinic-appointment-service/internal/delivery/http/handler"
	"clinic-appointment-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                 *mux.Router
	authHandler            *handler.AuthHandler
	appointmentHandler     *handler.AppointmentHandler
	patientHandler         *handler.PatientHandler
	appointmentTypeHandler *handler.AppointmentTypeHandler
	auditLogHandler        *handler.AuditLogHandler
	authMiddleware         *middleware.AuthMiddleware
	corsMiddleware         *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	appointmentTypeHandler *handler.AppointmentTypeHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                 mux.NewRouter(),
		authHandler:            authHandler,
		appointmentHandler:     appointmentHandler,
		patientHandler:         patientHandler,
		appointmentTypeHandler: appointmentTypeHandler,
		auditLogHandler:        auditLogHandler,
		authMiddleware:         authMiddleware,
		corsMiddleware:         corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetMe).Methods(http.MethodGet)

	// Staff routes (any authenticated staff member)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	// Appointment calendar
	staff.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	staff.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/day/{date}", r.appointmentHandler.GetDaySchedule).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/day", r.appointmentHandler.GetDaySchedule).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/week/{date}", r.appointmentHandler.GetWeekSchedule).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/week", r.appointmentHandler.GetWeekSchedule).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	staff.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Patient roster
	staff.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	staff.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	staff.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	staff.HandleFunc("/patients/{id}/history", r.patientHandler.GetPatientHistory).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}/profile-note", r.patientHandler.UpsertProfileNote).Methods(http.MethodPut)

	// Appointment type catalog (read for staff)
	staff.HandleFunc("/appointment-types", r.appointmentTypeHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/appointment-types/{id}", r.appointmentTypeHandler.GetByID).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Staff account creation (admin only, no self-service signup)
	api.Handle("/auth/register",
		r.authMiddleware.Authenticate(middleware.RequireAdmin(http.HandlerFunc(r.authHandler.Register)))).
		Methods(http.MethodPost)

	// Appointment type management (admin)
	admin.HandleFunc("/appointment-types", r.appointmentTypeHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/appointment-types/{id}", r.appointmentTypeHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/appointment-types/{id}", r.appointmentTypeHandler.Delete).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
