package http

import (
	"context"
	stderrors "errors"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/config"
	"github.com/tourism-directory/internal/delivery/http/handler"
	"github.com/tourism-directory/internal/delivery/http/middleware"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
)

// Handlers - все HTTP обработчики API
type Handlers struct {
	Health           *handler.HealthHandler
	Business         *handler.BusinessHandler
	Category         *handler.CategoryHandler
	User             *handler.UserHandler
	Claim            *handler.ClaimHandler
	Itinerary        *handler.ItineraryHandler
	TransportBooking *handler.TransportBookingHandler
	Seed             *handler.SeedHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Tourism Directory",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber приложение (используется в тестах через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")
	if s.config.RateLimit.RPS > 0 {
		api.Use(middleware.RateLimit(middleware.NewIPRateLimiter(s.config.RateLimit.RPS, s.config.RateLimit.Burst)))
	}

	h := s.handlers

	api.Get("/health", h.Health.Check)

	// Businesses
	api.Get("/businesses", h.Business.Search)
	api.Post("/businesses", h.Business.Create)
	api.Get("/businesses/owner/:ownerId", h.Business.ListByOwner)
	api.Get("/businesses/:id", h.Business.Get)
	api.Put("/businesses/:id", h.Business.Update)

	api.Get("/categories", h.Category.List)
	api.Post("/categories", h.Category.Create)

	api.Post("/users", h.User.Create)
	api.Get("/users/:id", h.User.Get)

	// Claims
	api.Post("/claim-requests", h.Claim.Create)
	api.Get("/claim-requests", h.Claim.List)
	api.Get("/claim-requests/user/:userId", h.Claim.ListByUser)
	api.Put("/claim-requests/:id", h.Claim.Resolve)

	// Itineraries
	api.Get("/itineraries", h.Itinerary.ListPublic)
	api.Post("/itineraries", h.Itinerary.Create)
	api.Get("/itineraries/user/:userId", h.Itinerary.ListByUser)
	api.Get("/itineraries/:id", h.Itinerary.Get)
	api.Get("/itineraries/:id/details", h.Itinerary.Details)
	api.Put("/itineraries/:id", h.Itinerary.Update)
	api.Delete("/itineraries/:id", h.Itinerary.Delete)

	api.Get("/itineraries/:id/days", h.Itinerary.ListDays)
	api.Post("/itineraries/:id/days", h.Itinerary.CreateDay)
	api.Get("/itinerary-days/:id", h.Itinerary.GetDay)
	api.Put("/itinerary-days/:id", h.Itinerary.UpdateDay)
	api.Delete("/itinerary-days/:id", h.Itinerary.DeleteDay)
	api.Get("/itinerary-days/:id/route", h.Itinerary.DayRoute)

	api.Get("/itinerary-days/:dayId/items", h.Itinerary.ListItems)
	api.Post("/itinerary-days/:dayId/items", h.Itinerary.CreateItem)
	api.Get("/itinerary-items/:id", h.Itinerary.GetItem)
	api.Put("/itinerary-items/:id", h.Itinerary.UpdateItem)
	api.Delete("/itinerary-items/:id", h.Itinerary.DeleteItem)

	api.Get("/itineraries/:id/collaborators", h.Itinerary.ListCollaborators)
	api.Post("/itineraries/:id/collaborators", h.Itinerary.AddCollaborator)
	api.Put("/itineraries/:id/collaborators/:email", h.Itinerary.UpdateCollaborator)
	api.Delete("/itineraries/:id/collaborators/:email", h.Itinerary.RemoveCollaborator)

	// Transport bookings
	api.Get("/itineraries/:id/transport-bookings", h.TransportBooking.ListByItinerary)
	api.Post("/itineraries/:id/transport-bookings", h.TransportBooking.CreateForItinerary)
	api.Get("/transport-bookings/user/:userId", h.TransportBooking.ListByUser)
	api.Post("/transport-bookings", h.TransportBooking.Create)
	api.Get("/transport-bookings/:id", h.TransportBooking.Get)
	api.Put("/transport-bookings/:id", h.TransportBooking.Update)
	api.Put("/transport-bookings/:id/status", h.TransportBooking.UpdateStatus)
	api.Delete("/transport-bookings/:id", h.TransportBooking.Delete)

	api.Post("/seed-data", h.Seed.Seed)
	api.Get("/seed-data", h.Seed.Seed)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, паника,
// ошибки middleware), в том же формате {"error": {...}}
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return utils.SendError(c, errors.ErrRouteNotFound.WithMessage(fe.Message))
			}
			code := strings.ToUpper(strings.ReplaceAll(nethttp.StatusText(fe.Code), " ", "_"))
			return c.Status(fe.Code).JSON(utils.ErrorResponse{
				Error: errors.New(code, fe.Message, fe.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
