package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"ecommerce-dashboard/charts"
	"ecommerce-dashboard/export"
	"ecommerce-dashboard/models"
	"ecommerce-dashboard/services"
)

const dateLayout = "2006-01-02"

// errBadRequest marks errors caused by the query string.
var errBadRequest = errors.New("bad request")

// parseFilters reads start, end and customer from the query string. Missing
// dates are left zero and resolved to the data bounds by Build.
func parseFilters(q url.Values) (services.Filters, error) {
	var f services.Filters
	for _, p := range []struct {
		key string
		dst *time.Time
	}{{"start", &f.Start}, {"end", &f.End}} {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return f, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", errBadRequest, p.key, raw)
		}
		*p.dst = t
	}
	f.CustomerID = q.Get("customer")
	return f, nil
}

// view builds the view model for a request.
func (s *Server) view(r *http.Request) (*models.DashboardView, error) {
	f, err := parseFilters(r.URL.Query())
	if err != nil {
		return nil, err
	}
	ds, err := s.data.Get(r.Context())
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	v, err := s.dashboard.Build(ds, f)
	if errors.Is(err, services.ErrInvertedRange) {
		return nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return v, err
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBadRequest) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.logger.Error("[http] %s %s: %v", r.Method, r.URL.RequestURI(), err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	v, err := s.view(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, newPageData(v)); err != nil {
		s.fail(w, r, fmt.Errorf("render page: %w", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleDashboardJSON(w http.ResponseWriter, r *http.Request) {
	v, err := s.view(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleCustomerLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f, err := parseFilters(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ds, err := s.data.Get(r.Context())
	if err != nil {
		s.fail(w, r, fmt.Errorf("load dataset: %w", err))
		return
	}

	f.CustomerID = id
	v, err := s.dashboard.Build(ds, f)
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if v.SelectedCustomer != id || v.Location == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no location data for customer " + id})
		return
	}
	writeJSON(w, http.StatusOK, v.Location)
}

// handleChart renders one PNG. Identical concurrent requests share a single
// render.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !charts.Known(name) {
		http.NotFound(w, r)
		return
	}

	key := name + "?" + r.URL.Query().Encode()
	out, err, shared := s.charts.Do(key, func() (interface{}, error) {
		v, err := s.view(r)
		if err != nil {
			return nil, err
		}
		return charts.Render(name, v)
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if shared {
		s.logger.Debug("[http] chart %s shared with a concurrent request", key)
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(out.([]byte))
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	v, err := s.view(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	cw, err := export.NewRFMWriter(&buf)
	if err == nil {
		err = cw.Write(v.RFM)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	attach(w, "text/csv", export.FileName("rfm", "csv"), buf.Bytes())
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	v, err := s.view(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, v); err != nil {
		s.fail(w, r, err)
		return
	}
	attach(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", export.FileName("dashboard", "xlsx"), buf.Bytes())
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	v, err := s.view(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	pdf, err := export.PDFReport(v)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	attach(w, "application/pdf", export.FileName("report", "pdf"), pdf)
}

func attach(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(body)
}
