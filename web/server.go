package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/singleflight"

	"ecommerce-dashboard/models"
	"ecommerce-dashboard/services"
	"ecommerce-dashboard/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// DatasetProvider hands out the loaded dataset snapshot.
type DatasetProvider interface {
	Get(ctx context.Context) (*models.Dataset, error)
}

// Server serves the dashboard page, its charts, the JSON API and exports.
type Server struct {
	data      DatasetProvider
	dashboard *services.DashboardService
	logger    *utils.Logger
	page      *template.Template
	charts    singleflight.Group
}

// NewServer wires a Server. The page template is parsed once here.
func NewServer(data DatasetProvider, dashboard *services.DashboardService, logger *utils.Logger) (*Server, error) {
	page, err := template.New("dashboard.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{data: data, dashboard: dashboard, logger: logger, page: page}, nil
}

// Routes returns the HTTP handler for the whole dashboard.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleDashboard)
	r.Get("/charts/{name}.png", s.handleChart)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/dashboard", s.handleDashboardJSON)
		r.Get("/customers/{id}/location", s.handleCustomerLocation)
	})

	r.Route("/export", func(r chi.Router) {
		r.Get("/rfm.csv", s.handleExportCSV)
		r.Get("/dashboard.xlsx", s.handleExportXLSX)
		r.Get("/report.pdf", s.handleExportPDF)
	})

	return r
}

// requestLogger logs one line per request through the application logger.
func requestLogger(logger *utils.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("[http] %s %s %d %dB in %v (%s)",
				r.Method, r.URL.RequestURI(), ww.Status(), ww.BytesWritten(),
				time.Since(start).Round(time.Microsecond), middleware.GetReqID(r.Context()))
		})
	}
}
