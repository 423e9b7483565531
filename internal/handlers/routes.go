package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Routes registers every API endpoint on r. Health and metrics endpoints
// are mounted by the caller outside the /api prefix.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.ListTeams)
			r.Post("/", h.CreateTeam)
			r.Get("/{id}", h.GetTeam)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Post("/", h.CreatePlayer)
			r.Get("/{id}", h.GetPlayer)
		})

		r.Route("/stadiums", func(r chi.Router) {
			r.Get("/", h.ListStadiums)
			r.Post("/", h.CreateStadium)
			r.Get("/{id}", h.GetStadium)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.ListMatches)
			r.Post("/", h.CreateMatch)
			r.Get("/{id}", h.GetMatch)
		})

		r.Route("/predictions", func(r chi.Router) {
			r.Get("/", h.ListPredictions)
			r.Post("/", h.CreatePrediction)
			r.Post("/generate", h.GeneratePrediction)
			r.Get("/{id}", h.GetPrediction)
		})

		r.Route("/player-performance-predictions", func(r chi.Router) {
			r.Get("/", h.ListPlayerPerfPredictions)
			r.Post("/", h.CreatePlayerPerfPrediction)
			r.Post("/generate", h.GeneratePlayerPerfPrediction)
			r.Post("/generate-squad", h.GenerateSquadPredictions)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Post("/", h.Chat)
			r.Get("/{id}", h.ChatHistory)
		})

		r.Post("/scrape", h.Scrape)
	})
}
