package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/muurk/weighguide/internal/content"
	"github.com/muurk/weighguide/internal/logging"
	"github.com/muurk/weighguide/internal/metrics"
	"github.com/muurk/weighguide/internal/page"
	"github.com/muurk/weighguide/internal/selection"
	"github.com/muurk/weighguide/internal/version"
	"go.uber.org/zap"
)

// HealthMessage is the message of the health endpoint.
const HealthMessage = "weighguide server is running"

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	r.Get("/", s.handlePage)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors)
		r.Get("/health", s.handleHealth)
		r.Get("/content", s.handleContent)
		r.Get("/steps/{step}", s.handleStep)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(page.Static()))))

	if s.config.AssetsDir != "" {
		r.Handle("/pitcher/*", http.StripPrefix("/pitcher/", http.FileServer(http.Dir(s.config.AssetsDir))))
	}

	if s.hub != nil {
		r.Handle("/ws", s.hub)
	}

	r.Handle("/metrics", s.metrics.Handler())

	return r
}

// handlePage renders the page. "?step=N" shows the popup for step N.
// "?step=N&dismiss=<reason>" is what the popup's close control, backdrop
// and escape key link to: the popup is restored for step N, then dismissed
// with that reason, so the page comes back closed.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	store := s.holder.Store()
	scroller := &selection.FlagScroller{}
	obs := &pageObserver{metrics: s.metrics}
	modal := selection.NewModal(store, scroller, selection.WithObserver(obs.observe))
	defer modal.Close()

	q := r.URL.Query()
	reason, dismiss := selection.ParseReason(q.Get("dismiss"))

	if raw := q.Get("step"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			// Not a step at all; same outcome as an unknown step.
			n = 0
		}
		obs.muted = dismiss
		modal.Open(n)
		obs.muted = false
	}
	if dismiss {
		modal.Dismiss(reason)
	}

	data := page.Build(store, modal, scroller)
	data.LiveReload = s.hub != nil
	data.Generator = version.UserAgent()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.renderer.Render(w, data); err != nil {
		logging.Error("Failed to render page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	s.metrics.PageViews.Inc()
}

type healthResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Build   version.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: HealthMessage,
		Build:   version.Get(),
	})
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.holder.Store().Document())
}

type stepResponse struct {
	Step   content.FlowStep   `json:"step"`
	Detail content.StepDetail `json:"detail"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "step must be a number"})
		return
	}

	step, detail, err := s.holder.Store().StepWithDetail(n)
	if errors.Is(err, content.ErrStepNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, stepResponse{Step: step, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// pageObserver turns modal events of one request into metrics and logs.
type pageObserver struct {
	metrics *metrics.Metrics
	muted   bool
}

func (o *pageObserver) observe(e selection.Event) {
	if e.Kind == selection.EventDismissed && e.Reason == selection.ReasonTeardown {
		// end of request, not a user action
		return
	}
	if o.muted && e.Kind == selection.EventOpened {
		return
	}

	reason := ""
	switch e.Kind {
	case selection.EventOpened:
		o.metrics.ObserveOpen(e.Step)
	case selection.EventDismissed:
		reason = e.Reason.String()
		o.metrics.ObserveDismiss(reason)
	case selection.EventRejected:
		o.metrics.ModalRejections.Inc()
	}
	logging.LogModalEvent("web", e.Kind.String(), e.Step, reason)
}
