package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travelbook/spec"
)

// Routes returns the API router. Cross-cutting middleware (request IDs,
// logging, authentication, limits) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", getOpenAPI)

	r.Route("/travels", func(r chi.Router) {
		r.Get("/", s.ListTravels)
		r.Post("/", s.CreateTravel)
		r.Route("/{id:[0-9]+}", func(r chi.Router) {
			r.Get("/", s.GetTravel)
			r.Put("/", s.UpdateTravel)
			r.Delete("/", s.DeleteTravel)
			r.Get("/albums", s.ListTravelAlbums)
			r.Post("/albums", s.CreateAlbum)
		})
	})

	r.Get("/albums", s.ListAlbums)

	r.Get("/places", s.ListPlaces)
	r.Post("/places", s.CreatePlace)

	return r
}

// getOpenAPI serves the embedded API description.
func getOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
