package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(checkInHandler *CheckInHandler, scheduleHandler *ScheduleHandler, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware(jwtSecret))

		r.Route("/checkin", func(r chi.Router) {
			r.Get("/today", checkInHandler.TodaysQuestion)
			r.Get("/past", checkInHandler.PastQuestions)
			r.Route("/questions/{id}", func(r chi.Router) {
				r.Get("/", checkInHandler.GetQuestion)
				r.Get("/answers", checkInHandler.GetAnswers)
				r.Post("/answers", checkInHandler.SubmitAnswer)
			})
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Route("/questions", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListQuestions)
				r.Post("/", scheduleHandler.CreateQuestion)
				r.Put("/{id}", scheduleHandler.UpdateQuestion)
			})
		})
	})

	return r
}
