package model

import "restomap/internal/domain/entity"

// ErrorLogModel is the document stored in the error_logs collection.
type ErrorLogModel struct {
	ID            string             `firestore:"-" docstore:"id"`
	Message       string             `firestore:"message" docstore:"message"`
	Details       map[string]any     `firestore:"details" docstore:"details"`
	Timestamp     string             `firestore:"timestamp" docstore:"timestamp"`
	ClientContext ClientContextModel `firestore:"clientContext" docstore:"clientContext"`
}

// ClientContextModel identifies the process that wrote an error log.
type ClientContextModel struct {
	Service   string `firestore:"service" docstore:"service"`
	Env       string `firestore:"env" docstore:"env"`
	Instance  string `firestore:"instance" docstore:"instance"`
	RequestID string `firestore:"requestId,omitempty" docstore:"requestId,omitempty"`
}

// FromErrorLog converts a domain error log into its stored document.
func FromErrorLog(data *entity.ErrorLog) *ErrorLogModel {
	if data == nil {
		return nil
	}

	details := data.Details
	if details == nil {
		details = map[string]any{}
	}

	return &ErrorLogModel{
		Message:   data.Message,
		Details:   details,
		Timestamp: formatDate(data.Timestamp),
		ClientContext: ClientContextModel{
			Service:   data.ClientContext.Service,
			Env:       data.ClientContext.Env,
			Instance:  data.ClientContext.Instance,
			RequestID: data.ClientContext.RequestID,
		},
	}
}
