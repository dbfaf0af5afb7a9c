package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *LectureHandler) {
	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		pr.Get("/", h.Root)

		// --- audio ---
		pr.Post("/upload-audio", h.UploadAudio)
		pr.Post("/upload-audio/", h.UploadAudio)
		pr.Post("/stt", h.SpeechToText)

		// --- text ---
		pr.Post("/summarize", h.Summarize)
		pr.Post("/quiz", h.Quiz)
		pr.Post("/submit-answer", h.SubmitAnswer)
	})
}
