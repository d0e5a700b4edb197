package http

import (
	"net/http"

	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	"go-doctor-directory/internal/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	directoryHandler   *handler.DirectoryHandler
	doctorHandler      *handler.DoctorHandler
	filterHandler      *handler.FilterHandler
	appointmentHandler *handler.AppointmentHandler
	corsMiddleware     *middleware.CORSMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
}

func NewRouter(
	directoryHandler *handler.DirectoryHandler,
	doctorHandler *handler.DoctorHandler,
	filterHandler *handler.FilterHandler,
	appointmentHandler *handler.AppointmentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		directoryHandler:   directoryHandler,
		doctorHandler:      doctorHandler,
		filterHandler:      filterHandler,
		appointmentHandler: appointmentHandler,
		corsMiddleware:     corsMiddleware,
		metricsMiddleware:  metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint
	r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory lifecycle
	api.HandleFunc("/directory/status", r.directoryHandler.GetStatus).Methods(http.MethodGet)
	api.HandleFunc("/directory/refresh", r.directoryHandler.Refresh).Methods(http.MethodPost, http.MethodOptions)

	// Doctors; suggestions must be registered before {id}
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.GetSuggestions).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/appointments", r.appointmentHandler.ConfirmAppointment).Methods(http.MethodPost, http.MethodOptions)

	// Appointments
	api.HandleFunc("/appointments/slots", r.appointmentHandler.GetTimeSlots).Methods(http.MethodGet)

	// Filters
	api.HandleFunc("/specialties", r.filterHandler.GetSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/filters/events", r.filterHandler.ApplyEvent).Methods(http.MethodPost, http.MethodOptions)

	// Add middlewares
	r.router.Use(r.metricsMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
