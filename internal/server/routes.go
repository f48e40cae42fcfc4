package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sockpredict/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/", s.getDashboard)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/price", func(r chi.Router) {
			r.Post("/", handler(s.postV1Price))
			r.Get("/now", handler(s.getV1PriceNow))
		})
		r.Route("/trend", func(r chi.Router) {
			r.Get("/hourly", handler(s.getV1TrendHourly))
			r.Get("/weekly", handler(s.getV1TrendWeekly))
			r.Get("/heatmap", handler(s.getV1TrendHeatmap))
		})
		r.Get("/recommendation", handler(s.getV1Recommendation))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
