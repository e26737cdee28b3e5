package routers

import (
	"log/slog"

	"countdown/internal/transport/httpServer/handlers"
	myMiddleware "countdown/internal/transport/httpServer/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Router struct {
	log          *slog.Logger
	authHandler  *handlers.AuthHandler
	eventHandler *handlers.EventHandler
	imageHandler *handlers.ImageHandler
	validator    myMiddleware.TokenValidator
}

func NewRouter(
	log *slog.Logger,
	authHandler *handlers.AuthHandler,
	eventHandler *handlers.EventHandler,
	imageHandler *handlers.ImageHandler,
	validator myMiddleware.TokenValidator,
) *Router {
	return &Router{
		log:          log,
		authHandler:  authHandler,
		eventHandler: eventHandler,
		imageHandler: imageHandler,
		validator:    validator,
	}
}

func (r *Router) Mount(mux *chi.Mux) {

	mux.Use(cors.AllowAll().Handler)
	mux.Use(myMiddleware.Logger(r.log))
	mux.Use(middleware.Heartbeat("/ping"))

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/v1", func(mux chi.Router) {
			mux.Route("/auth", func(mux chi.Router) {
				mux.Post("/login", r.authHandler.Login)
				mux.Post("/logout", r.authHandler.Logout)
			})

			mux.Route("/events", func(mux chi.Router) {
				mux.Use(myMiddleware.Session(r.log, r.validator))

				mux.Get("/", r.eventHandler.ListEvents)
				mux.Post("/", r.eventHandler.CreateEvent)
				mux.Put("/{eventId}", r.eventHandler.UpdateEvent)
				mux.Delete("/{eventId}", r.eventHandler.DeleteEvent)
				mux.Put("/{eventId}/complete", r.eventHandler.CompleteEvent)
				mux.Put("/{eventId}/reactivate", r.eventHandler.ReactivateEvent)
				mux.Get("/{eventId}/countdown", r.eventHandler.GetCountdown)
				mux.Get("/{eventId}/countdown/stream", r.eventHandler.StreamCountdown)
			})

			mux.Get("/images", r.imageHandler.GetImage)
		})
	})
}
