package models

// FileStatus is the processing status of an uploaded file. The pipeline
// simulator advances it through the stage sequence; nothing enforces order
// on direct writes.
type FileStatus string

const (
	FileProcessing          FileStatus = "processing"
	FileExtractingFeatures  FileStatus = "extracting_features"
	FileFederatedEmbedding  FileStatus = "federated_embedding"
	FileQuantumOptimization FileStatus = "quantum_optimization"
	FileCompleted           FileStatus = "completed"
	FileFailed              FileStatus = "failed"
)

// QueryStatus is the lifecycle status of a query.
type QueryStatus string

const (
	QueryProcessing QueryStatus = "processing"
	QueryCompleted  QueryStatus = "completed"
	QueryFailed     QueryStatus = "failed"
)
