package delivery

import (
	"errors"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/Vovarama1992/fine_teaching/internal/apperr"
	"github.com/go-playground/validator/v10"
)

const (
	// multipartMemory is kept in RAM; larger parts spill to disk until RemoveAll.
	multipartMemory = 32 << 20
	maxFormBytes    = 16 << 20

	// room for the non-file fields and multipart framing
	formOverhead = 1 << 20
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

type textForm struct {
	Text         string `form:"text" validate:"required"`
	TargetLang   string `form:"target_lang" validate:"max=35"`
	LectureTitle string `form:"lecture_title" validate:"max=500"`
}

type answerForm struct {
	QuestionID     int    `form:"question_id" validate:"min=1"`
	SelectedAnswer string `form:"selected_answer" validate:"required,max=64"`
	CorrectAnswer  string `form:"correct_answer" validate:"required,max=64"`
	Explanation    string `form:"explanation"`
	TargetLang     string `form:"target_lang" validate:"max=35"`
}

// parseForm accepts multipart/form-data and application/x-www-form-urlencoded bodies.
func parseForm(r *http.Request) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var err error
	if ct == "multipart/form-data" {
		err = r.ParseMultipartForm(multipartMemory)
	} else {
		err = r.ParseForm()
	}
	if err == nil {
		return nil
	}
	if isTooLarge(err) {
		return apperr.TooLarge("request body is too large").WithCause(err)
	}
	return apperr.InvalidInput("malformed form body").WithCause(err)
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || strings.Contains(err.Error(), "request body too large")
}

func decodeTextForm(r *http.Request) (textForm, error) {
	f := textForm{
		Text:         strings.TrimSpace(r.FormValue("text")),
		TargetLang:   strings.TrimSpace(r.FormValue("target_lang")),
		LectureTitle: strings.TrimSpace(r.FormValue("lecture_title")),
	}
	return f, validateForm(f)
}

func decodeAnswerForm(r *http.Request) (answerForm, error) {
	f := answerForm{
		SelectedAnswer: r.FormValue("selected_answer"),
		CorrectAnswer:  r.FormValue("correct_answer"),
		Explanation:    r.FormValue("explanation"),
		TargetLang:     strings.TrimSpace(r.FormValue("target_lang")),
	}

	id, err := strconv.Atoi(strings.TrimSpace(r.FormValue("question_id")))
	if err != nil {
		return f, apperr.InvalidInput("question_id: must be an integer")
	}
	f.QuestionID = id

	return f, validateForm(f)
}

func validateForm(f any) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.InvalidInput("validation failed").WithCause(err)
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, e.Field()+": "+describe(e))
	}
	return apperr.InvalidInput(strings.Join(messages, "; "))
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "min":
		return "must be at least " + e.Param()
	default:
		return "is invalid"
	}
}
