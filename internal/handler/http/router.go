package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	reportHandler ReportHandler,
	punchHandler PunchHandler,
	holidayHandler HolidayHandler,
	deviceHandler DeviceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-fazenda"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Device-facing routes keep their historical paths; the terminals
	// have them baked into firmware configuration.
	r.HandleFunc("/iclock/cdata", deviceHandler.IClockCData)

	r.Route("/api/v1", func(r chi.Router) {
		r.HandleFunc("/evo", deviceHandler.EvoWebhook)
		r.Get("/evo/ws", deviceHandler.EvoWebsocket)

		r.Get("/report", reportHandler.Get)

		r.Route("/punches", func(r chi.Router) {
			r.Get("/", punchHandler.List)
			r.Post("/", punchHandler.CreateManual)
		})

		r.Get("/holidays/{year}", holidayHandler.GetYear)
		r.Get("/devices/status", deviceHandler.Status)
	})

	return r
}
