// Package models defines the entity records and wire types for the Quantaflow API.
package models

import "time"

// User is an account record. Created on first login with a given email.
// The password is kept as an opaque string and never serialized.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// InsertUser is the input for creating a user. The store assigns the id.
type InsertUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UploadedFile is the metadata record for an uploaded file. No file content
// is ever stored; processing status is advanced by the pipeline simulator.
type UploadedFile struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	FileName   string     `json:"fileName"`
	FileType   string     `json:"fileType"`
	FileSize   int64      `json:"fileSize"`
	Status     FileStatus `json:"status"`
	UploadedAt time.Time  `json:"uploadedAt"`
}

// InsertUploadedFile is the input for creating an uploaded file record.
type InsertUploadedFile struct {
	UserID   string     `json:"userId"`
	FileName string     `json:"fileName"`
	FileType string     `json:"fileType"`
	FileSize int64      `json:"fileSize"`
	Status   FileStatus `json:"status"`
}

// Query is a retrieval request record. Modalities is the JSON-encoded array
// of modality tags exactly as received on the wire.
type Query struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	QueryText  string      `json:"queryText"`
	Modalities string      `json:"modalities"`
	Status     QueryStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// InsertQuery is the input for creating a query record.
type InsertQuery struct {
	UserID     string      `json:"userId"`
	QueryText  string      `json:"queryText"`
	Modalities string      `json:"modalities"`
	Status     QueryStatus `json:"status"`
}

// QueryResult is one synthesized result for a query. Content holds the
// JSON-serialized modality payload; both scores are in [0,100].
type QueryResult struct {
	ID                  string    `json:"id"`
	QueryID             string    `json:"queryId"`
	Modality            Modality  `json:"modality"`
	Content             string    `json:"content"`
	ConfidenceScore     int       `json:"confidenceScore"`
	QuantumEntanglement int       `json:"quantumEntanglement"`
	CreatedAt           time.Time `json:"createdAt"`
}

// InsertQueryResult is the input for creating a query result record.
type InsertQueryResult struct {
	QueryID             string   `json:"queryId"`
	Modality            Modality `json:"modality"`
	Content             string   `json:"content"`
	ConfidenceScore     int      `json:"confidenceScore"`
	QuantumEntanglement int      `json:"quantumEntanglement"`
}

// QuantumLog is a cosmetic console log entry.
type QuantumLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
}

// SystemStatus summarizes the engine state shown in the client status bar.
type SystemStatus struct {
	OfflineIntelligence string  `json:"offlineIntelligence"`
	QuantumEngine       string  `json:"quantumEngine"`
	PrivacyScore        float64 `json:"privacyScore"`
}
