package entity

import "time"

// ClientContext identifies the process that produced an error log record.
type ClientContext struct {
	Service   string `json:"service"`
	Env       string `json:"env"`
	Instance  string `json:"instance"`
	RequestID string `json:"requestId,omitempty"`
}

// ErrorLog is one record of the append-only error log collection.
type ErrorLog struct {
	Message       string         `json:"message"`
	Details       map[string]any `json:"details,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
	ClientContext ClientContext  `json:"clientContext"`
}

// ReportedError is the current user-facing error held by the error channel.
type ReportedError struct {
	Code       string    `json:"code"`
	Status     int       `json:"-"`
	Message    string    `json:"message"`
	Raw        string    `json:"-"`
	ReportedAt time.Time `json:"reportedAt"`
}
