package errors

import (
	"fmt"
	"net/http"

	"restomap/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code, so WithDetails copies still compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Validation errors, in the order the restaurant form is checked.
var (
	ErrHalalMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"HALAL_MISSING",
		"Veuillez sélectionner une certification halal",
		"",
	)

	ErrCuisineMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"CUISINE_MISSING",
		"Veuillez sélectionner un type de cuisine",
		"",
	)

	ErrCustomCuisineMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"CUSTOM_CUISINE_MISSING",
		"Veuillez préciser le type de cuisine",
		"",
	)

	ErrCustomHalalMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"CUSTOM_HALAL_MISSING",
		"Veuillez préciser la certification halal",
		"",
	)

	ErrCoordinatesMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"COORDINATES_MISSING",
		"Coordonnées manquantes. Veuillez sélectionner un restaurant depuis la recherche.",
		"",
	)

	ErrInitialAuthorMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"INITIAL_AUTHOR_MISSING",
		"Veuillez entrer votre nom pour la note initiale",
		"",
	)

	ErrInitialRatingMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"INITIAL_RATING_MISSING",
		"Veuillez donner une note initiale au restaurant",
		"",
	)

	ErrRatingOutOfRange = NewBaseError(
		http.StatusUnprocessableEntity,
		"RATING_OUT_OF_RANGE",
		"La note doit être comprise entre 1 et 5",
		"",
	)

	ErrNameMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"NAME_MISSING",
		"Veuillez entrer le nom du restaurant",
		"",
	)

	// Rating form errors
	ErrAuthorMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"AUTHOR_MISSING",
		"Veuillez entrer votre nom",
		"",
	)

	ErrRatingMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"RATING_MISSING",
		"Veuillez donner une note",
		"",
	)
)

// Catalog and request errors
var (
	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"Restaurant introuvable",
		"",
	)

	ErrEmptyCatalog = NewBaseError(
		http.StatusNotFound,
		"EMPTY_CATALOG",
		"Aucun restaurant dans la liste!",
		"",
	)

	ErrRefreshFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"REFRESH_FAILED",
		"Erreur lors du chargement des restaurants",
		"",
	)

	ErrSearchFailed = NewBaseError(
		http.StatusBadGateway,
		"SEARCH_FAILED",
		"Erreur lors de la recherche",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Données de la requête invalides",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erreur interne du serveur",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Ressource introuvable",
		"",
	)
)

// StoreError is a remote document store failure, implementing the AppError interface.
// Its text always embeds the classifier so the error channel can map it.
type StoreError struct {
	op         string
	classifier Classifier
	err        error
}

// NewStoreError creates a store error for the given operation.
func NewStoreError(op string, classifier Classifier, err error) *StoreError {
	return &StoreError{
		op:         op,
		classifier: classifier,
		err:        err,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %s", e.op, e.classifier)
	}

	return fmt.Sprintf("%s: %s: %v", e.op, e.classifier, e.err)
}

// Unwrap returns the driver error.
func (e *StoreError) Unwrap() error {
	return e.err
}

// Op returns the store operation that failed.
func (e *StoreError) Op() string {
	return e.op
}

// Classifier returns the failure category.
func (e *StoreError) Classifier() Classifier {
	return e.classifier
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return e.classifier.HTTPCode()
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_" + e.classifier.Code()
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return UserMessage(e)
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.Error()
}
