package errors

import (
	"net/http"
	"strings"

	"restomap/internal/errors"
)

// Classifier is the category string embedded in a store error's text.
type Classifier string

const (
	ClassPermissionDenied Classifier = "permission-denied"
	ClassUnavailable      Classifier = "unavailable"
	ClassNotFound         Classifier = "not-found"
	ClassAlreadyExists    Classifier = "already-exists"
	ClassInvalidArgument  Classifier = "invalid-argument"
	ClassDeadlineExceeded Classifier = "deadline-exceeded"
	ClassTimeout          Classifier = "timeout"
	ClassUnknown          Classifier = "unknown"
)

// Code returns the classifier as an upper-case business code fragment.
func (c Classifier) Code() string {
	return strings.ToUpper(strings.ReplaceAll(string(c), "-", "_"))
}

// HTTPCode returns the status used when a store failure of this class reaches the API.
func (c Classifier) HTTPCode() int {
	switch c {
	case ClassPermissionDenied:
		return http.StatusForbidden
	case ClassUnavailable:
		return http.StatusServiceUnavailable
	case ClassNotFound:
		return http.StatusNotFound
	case ClassAlreadyExists:
		return http.StatusConflict
	case ClassInvalidArgument:
		return http.StatusBadRequest
	case ClassDeadlineExceeded, ClassTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

type classifiedMessage struct {
	needles []Classifier
	message string
}

// classifiedMessages is evaluated in order; the first match wins.
var classifiedMessages = []classifiedMessage{
	{
		needles: []Classifier{ClassPermissionDenied},
		message: "❌ Vous n'avez pas la permission d'effectuer cette action. Vérifiez vos droits d'accès.",
	},
	{
		needles: []Classifier{ClassUnavailable},
		message: "❌ Connexion perdue. Vérifiez votre connexion internet et réessayez.",
	},
	{
		needles: []Classifier{ClassNotFound},
		message: "❌ Élément introuvable. Il a peut-être été supprimé.",
	},
	{
		needles: []Classifier{ClassAlreadyExists},
		message: "❌ Cet élément existe déjà dans la base de données.",
	},
	{
		needles: []Classifier{ClassInvalidArgument},
		message: "❌ Données invalides. Vérifiez les informations saisies.",
	},
	{
		needles: []Classifier{ClassDeadlineExceeded, ClassTimeout},
		message: "❌ La requête a pris trop de temps. Veuillez réessayer.",
	},
}

// Classify returns the user message for the first classifier contained in text.
func Classify(text string) (string, bool) {
	for _, entry := range classifiedMessages {
		for _, needle := range entry.needles {
			if strings.Contains(text, string(needle)) {
				return entry.message, true
			}
		}
	}

	return "", false
}

// UserMessage converts any failure into the text shown to the user.
// Validation errors keep their own message. Anything else goes through the
// classifier table, then falls back to the wrapped BaseError message or the raw text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var base *BaseError
	hasBase := errors.As(err, &base)
	if hasBase && IsValidation(err) {
		return base.Message()
	}

	if message, ok := Classify(err.Error()); ok {
		return message
	}

	if hasBase {
		return base.Message()
	}

	return err.Error()
}

// ErrorCode returns the business code carried by err, or INTERNAL_ERROR.
func ErrorCode(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ErrInternalError.ErrorCode()
}

// HTTPCode returns the status carried by err, or 500.
func HTTPCode(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return ErrInternalError.HTTPCode()
}

// IsValidation reports whether err is one of the form validation failures.
func IsValidation(err error) bool {
	var base *BaseError
	if !errors.As(err, &base) {
		return false
	}

	return base.httpCode == http.StatusUnprocessableEntity
}
