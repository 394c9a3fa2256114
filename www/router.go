package www

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"mescore/engine"
)

type Handlers struct {
	engine *engine.Engine
}

// NewRouter serves the resource API both at the root and under /api. CORS
// allows every origin, which suits a local deployment only.
func NewRouter(eng *engine.Engine) http.Handler {
	h := &Handlers{engine: eng}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.AllowAll().Handler)
	r.Use(middleware.StripSlashes)

	r.Get("/", h.handleRoot)
	h.apiRoutes(r)
	r.Route("/api", h.apiRoutes)

	return r
}

func (h *Handlers) apiRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)

	r.Route("/production-orders", func(r chi.Router) {
		r.Post("/", h.apiCreateProductionOrder)
		r.Get("/", h.apiListProductionOrders)
		r.Get("/{id}", h.apiGetProductionOrder)
		r.Put("/{id}", h.apiUpdateProductionOrder)
		r.Delete("/{id}", h.apiDeleteProductionOrder)
	})

	r.Route("/workstations", func(r chi.Router) {
		r.Post("/", h.apiCreateWorkStation)
		r.Get("/", h.apiListWorkStations)
		r.Get("/{id}", h.apiGetWorkStation)
		r.Put("/{id}", h.apiUpdateWorkStation)
		r.Delete("/{id}", h.apiDeleteWorkStation)
	})

	r.Route("/quality-checks", func(r chi.Router) {
		r.Post("/", h.apiCreateQualityCheck)
		r.Get("/", h.apiListQualityChecks)
		r.Get("/{id}", h.apiGetQualityCheck)
		r.Put("/{id}", h.apiUpdateQualityCheck)
		r.Delete("/{id}", h.apiDeleteQualityCheck)
	})
}

func (h *Handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	h.jsonOK(w, map[string]string{"message": "MES System API"})
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := h.engine.DB().PingContext(r.Context()) == nil
	h.jsonOK(w, map[string]any{
		"status":   "ok",
		"database": dbOK,
		"notifier": h.engine.Notifier().Name(),
	})
}
