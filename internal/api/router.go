package api

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	cancelBookingHandler "github.com/KrishRally/Sportitup/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/KrishRally/Sportitup/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/KrishRally/Sportitup/internal/api/handlers/get_availability"
	getBookingHandler "github.com/KrishRally/Sportitup/internal/api/handlers/get_booking"
	getStatsHandler "github.com/KrishRally/Sportitup/internal/api/handlers/get_stats"
	getUserBookingsHandler "github.com/KrishRally/Sportitup/internal/api/handlers/get_user_bookings"
	listOwnerBookingsHandler "github.com/KrishRally/Sportitup/internal/api/handlers/list_owner_bookings"
	listVenuesHandler "github.com/KrishRally/Sportitup/internal/api/handlers/list_venues"
	ownerSessionHandler "github.com/KrishRally/Sportitup/internal/api/handlers/owner_session"
	resetDemoHandler "github.com/KrishRally/Sportitup/internal/api/handlers/reset_demo"
	toggleAvailabilityHandler "github.com/KrishRally/Sportitup/internal/api/handlers/toggle_availability"
	updateBookingHandler "github.com/KrishRally/Sportitup/internal/api/handlers/update_booking"
	userSessionHandler "github.com/KrishRally/Sportitup/internal/api/handlers/user_session"
	verifyOTPHandler "github.com/KrishRally/Sportitup/internal/api/handlers/verify_otp"
	"github.com/KrishRally/Sportitup/internal/api/middleware"
	"github.com/KrishRally/Sportitup/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Services зависимости обработчиков
type Services struct {
	Owners          ownerSessionHandler.OwnerService
	Sessions        SessionService
	Users           userSessionHandler.UserService
	Venues          listVenuesHandler.VenueService
	Bookings        BookingService
	Availability    toggleAvailabilityHandler.AvailabilityService
	GetAvailability getAvailabilityHandler.GetAvailabilityUseCase
	CreateBooking   createBookingHandler.CreateBookingUseCase
	GetStats        getStatsHandler.GetStatsUseCase
	VerifyOTP       verifyOTPHandler.VerifyOTPUseCase

	// Resetter nil - маршрут /admin/reset не регистрируется
	Resetter resetDemoHandler.Resetter
}

// SessionService проверка и отзыв сессий
type SessionService interface {
	middleware.SessionAuthenticator
	userSessionHandler.SessionRevoker
}

// BookingService операции владельца и пользователя с бронированиями
type BookingService interface {
	listOwnerBookingsHandler.BookingService
	getBookingHandler.BookingService
	updateBookingHandler.BookingService
	cancelBookingHandler.BookingService
	getUserBookingsHandler.BookingService
}

// Options параметры HTTP слоя
type Options struct {
	CookieSecure bool
	CORSOrigins  []string

	// Metrics nil - без метрик
	Metrics     *metrics.Metrics
	MetricsPath string
	ServiceName string
}

// NewRouter собирает маршруты /api/v1
func NewRouter(svc Services, opts Options, logger Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Recovery(logger))

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics, opts.ServiceName))
		if opts.MetricsPath != "" {
			r.Handle(opts.MetricsPath, opts.Metrics.Handler()).Methods(http.MethodGet)
		}
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	ownerSession := ownerSessionHandler.NewHandler(svc.Owners, opts.CookieSecure, logger)
	userSession := userSessionHandler.NewHandler(svc.Users, svc.Sessions, opts.CookieSecure, logger)
	verifyOTP := verifyOTPHandler.NewHandler(svc.VerifyOTP, opts.CookieSecure, logger)
	listVenues := listVenuesHandler.NewHandler(svc.Venues)
	getAvailability := getAvailabilityHandler.NewHandler(svc.GetAvailability, logger)
	toggleAvailability := toggleAvailabilityHandler.NewHandler(svc.Availability, logger)
	createBooking := createBookingHandler.NewHandler(svc.CreateBooking, logger)
	listOwnerBookings := listOwnerBookingsHandler.NewHandler(svc.Bookings, logger)
	getBooking := getBookingHandler.NewHandler(svc.Bookings, logger)
	updateBooking := updateBookingHandler.NewHandler(svc.Bookings, logger)
	cancelBooking := cancelBookingHandler.NewHandler(svc.Bookings, logger)
	getUserBookings := getUserBookingsHandler.NewHandler(svc.Bookings, logger)
	getStats := getStatsHandler.NewHandler(svc.GetStats, logger)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Вход владельца
	api.HandleFunc("/owner/session", ownerSession.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/owner/session", ownerSession.HandleLogout).Methods(http.MethodDelete)

	// Пользователь витрины
	api.HandleFunc("/auth/verify-otp", verifyOTP.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", userSession.HandleLogout).Methods(http.MethodPost)

	optionalUser := middleware.UserSession(svc.Sessions, false, logger)
	requiredUser := middleware.UserSession(svc.Sessions, true, logger)

	api.Handle("/auth/session", optionalUser(http.HandlerFunc(userSession.HandleGet))).Methods(http.MethodGet)

	// Витрина
	api.HandleFunc("/public/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/public/availability", getAvailability.HandlePublic).Methods(http.MethodGet)
	api.Handle("/public/bookings", optionalUser(http.HandlerFunc(createBooking.HandlePublic))).Methods(http.MethodPost)
	api.Handle("/public/bookings", requiredUser(http.HandlerFunc(getUserBookings.Handle))).Methods(http.MethodGet)

	// Кабинет владельца
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.OwnerAuth(svc.Sessions, logger))

	admin.HandleFunc("/availability", getAvailability.HandleOwner).Methods(http.MethodGet)
	admin.HandleFunc("/availability", toggleAvailability.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings", listOwnerBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", createBooking.HandleAdmin).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{id}", cancelBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	if svc.Resetter != nil {
		resetDemo := resetDemoHandler.NewHandler(svc.Resetter, logger)
		admin.HandleFunc("/reset", resetDemo.Handle).Methods(http.MethodPost)
	}

	if len(opts.CORSOrigins) == 0 {
		return r
	}

	// CORS оборачивает весь роутер: preflight OPTIONS не совпадает с маршрутами mux
	return cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})(r)
}
