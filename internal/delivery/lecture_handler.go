package delivery

import (
	"net/http"

	"github.com/Vovarama1992/fine_teaching/internal/apperr"
	"github.com/Vovarama1992/fine_teaching/internal/lecture"
	"github.com/Vovarama1992/fine_teaching/internal/quiz"
	"github.com/Vovarama1992/go-utils/logger"
)

const rootMessage = "FineTeaching Backend API"

type LectureHandler struct {
	svc       lecture.Service
	maxUpload int64
	log       *logger.ZapLogger
}

func NewLectureHandler(svc lecture.Service, maxUpload int64, log *logger.ZapLogger) *LectureHandler {
	return &LectureHandler{
		svc:       svc,
		maxUpload: maxUpload,
		log:       log,
	}
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type quizResponse struct {
	Questions []quiz.Question `json:"questions"`
}

func (h *LectureHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
}

// UploadAudio: file + lang → transcript and structured summary.
func (h *LectureHandler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	h.withAudio(w, r, func(audio lecture.Audio) (any, error) {
		return h.svc.ProcessUpload(r.Context(), audio, r.FormValue("lang"))
	})
}

// SpeechToText: file + ui_lang → transcript in ui_lang.
func (h *LectureHandler) SpeechToText(w http.ResponseWriter, r *http.Request) {
	h.withAudio(w, r, func(audio lecture.Audio) (any, error) {
		return h.svc.SpeechToText(r.Context(), audio, r.FormValue("ui_lang"))
	})
}

func (h *LectureHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	form, err := h.textForm(w, r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	summary, err := h.svc.Summarize(r.Context(), form.Text, form.TargetLang, form.LectureTitle)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Summary: summary})
}

func (h *LectureHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	form, err := h.textForm(w, r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	questions, err := h.svc.Quiz(r.Context(), form.Text, form.TargetLang, form.LectureTitle)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, quizResponse{Questions: questions})
}

func (h *LectureHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := parseForm(r); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	defer removeMultipart(r)

	form, err := decodeAnswerForm(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res := h.svc.SubmitAnswer(quiz.Submission{
		QuestionID:     form.QuestionID,
		SelectedAnswer: form.SelectedAnswer,
		CorrectAnswer:  form.CorrectAnswer,
		Explanation:    form.Explanation,
		TargetLang:     form.TargetLang,
	})
	writeJSON(w, http.StatusOK, res)
}

func (h *LectureHandler) textForm(w http.ResponseWriter, r *http.Request) (textForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := parseForm(r); err != nil {
		return textForm{}, err
	}
	defer removeMultipart(r)
	return decodeTextForm(r)
}

// withAudio parses a multipart upload, hands the "file" part to fn and
// removes every spill file the form left on disk.
func (h *LectureHandler) withAudio(w http.ResponseWriter, r *http.Request, fn func(lecture.Audio) (any, error)) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+formOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if isTooLarge(err) {
			writeError(w, r, h.log, apperr.TooLarge("uploaded file is too large").WithCause(err))
			return
		}
		writeError(w, r, h.log, apperr.Upload("expected a multipart form with a \"file\" field").WithCause(err))
		return
	}
	defer removeMultipart(r)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, h.log, apperr.Upload("missing \"file\" field").WithCause(err))
		return
	}
	defer file.Close()

	res, err := fn(lecture.Audio{Body: file, Filename: header.Filename})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func removeMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}
