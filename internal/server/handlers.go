package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quantaflow/quantaflow/internal/models"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin accepts any non-empty credential pair. A first-time email
// auto-creates a user; there is no password verification and no reachable
// rejection path for well-formed input.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		s.respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		s.respondError(w, http.StatusBadRequest, "password is required")
		return
	}

	// Simulated authentication latency.
	if err := s.clock.Sleep(r.Context(), s.config.Simulation.AuthDelay()); err != nil {
		return
	}

	ctx := r.Context()
	user, ok := s.store.GetUserByEmail(ctx, req.Email)
	if !ok {
		user = s.store.CreateUser(ctx, models.InsertUser{Email: req.Email, Password: req.Password})
		s.logger.Debug("created user", zap.String("user_id", user.ID), zap.String("email", user.Email))
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    map[string]string{"id": user.ID, "email": user.Email},
		"message": "Authentication successful",
	})
}

type uploadRequest struct {
	FileName string            `json:"fileName"`
	FileType string            `json:"fileType"`
	FileSize *int64            `json:"fileSize"`
	UserID   string            `json:"userId"`
	Status   models.FileStatus `json:"status"`
}

// handleUploadFile stores the file metadata and kicks off the staged status
// transitions. The response returns before any transition runs; clients poll
// the list endpoint to observe progress.
func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FileName == "" {
		s.respondError(w, http.StatusBadRequest, "fileName is required")
		return
	}
	if req.FileType == "" {
		s.respondError(w, http.StatusBadRequest, "fileType is required")
		return
	}
	if req.FileSize == nil {
		s.respondError(w, http.StatusBadRequest, "fileSize is required")
		return
	}
	if *req.FileSize < 0 {
		s.respondError(w, http.StatusBadRequest, "fileSize must be non-negative")
		return
	}
	if req.UserID == "" {
		s.respondError(w, http.StatusBadRequest, "userId is required")
		return
	}
	ctx := r.Context()
	if _, ok := s.store.GetUser(ctx, req.UserID); !ok {
		s.respondError(w, http.StatusBadRequest, "unknown userId")
		return
	}
	status := req.Status
	if status == "" {
		status = models.FileProcessing
	}

	file := s.store.CreateUploadedFile(ctx, models.InsertUploadedFile{
		UserID:   req.UserID,
		FileName: req.FileName,
		FileType: req.FileType,
		FileSize: *req.FileSize,
		Status:   status,
	})
	s.sim.Begin(file.ID)
	s.logger.Debug("file uploaded",
		zap.String("file_id", file.ID),
		zap.String("file_name", file.FileName),
		zap.Int64("file_size", file.FileSize))

	s.respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "file": file})
}

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	files := s.store.GetUploadedFilesByUser(r.Context(), userID)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"files": files})
}

type queryRequest struct {
	UserID     string             `json:"userId"`
	QueryText  string             `json:"queryText"`
	Modalities string             `json:"modalities"`
	Status     models.QueryStatus `json:"status"`
}

// handleQuery runs the whole retrieval charade synchronously: store the
// query, wait the configured delay, synthesize one result per requested
// modality, and mark the query completed before responding.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		s.respondError(w, http.StatusBadRequest, "userId is required")
		return
	}
	if req.QueryText == "" {
		s.respondError(w, http.StatusBadRequest, "queryText is required")
		return
	}
	modalities, err := models.ParseModalities(req.Modalities)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx := r.Context()
	if _, ok := s.store.GetUser(ctx, req.UserID); !ok {
		s.respondError(w, http.StatusBadRequest, "unknown userId")
		return
	}
	status := req.Status
	if status == "" {
		status = models.QueryProcessing
	}

	query := s.store.CreateQuery(ctx, models.InsertQuery{
		UserID:     req.UserID,
		QueryText:  req.QueryText,
		Modalities: req.Modalities,
		Status:     status,
	})
	s.logger.Debug("query received",
		zap.String("query_id", query.ID),
		zap.String("query_text", query.QueryText),
		zap.Int("modalities", len(modalities)))

	// Simulated retrieval latency.
	if err := s.clock.Sleep(ctx, s.config.Simulation.RetrievalDelay()); err != nil {
		return
	}

	s.store.UpdateQueryStatus(ctx, query.ID, models.QueryProcessing)

	allResults := []*models.QueryResult{}
	for _, modality := range modalities {
		insert, ok := s.gen.Generate(query.ID, modality)
		if !ok {
			continue
		}
		allResults = append(allResults, s.store.CreateQueryResult(ctx, insert))
	}

	s.store.UpdateQueryStatus(ctx, query.ID, models.QueryCompleted)

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"query":   query,
		"results": allResults,
	})
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	queryID := chi.URLParam(r, "queryId")
	queryResults := s.store.GetResultsByQuery(r.Context(), queryID)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"results": queryResults})
}

func (s *Server) handleListQueries(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	queries := s.store.GetQueriesByUser(r.Context(), userID)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"queries": queries})
}

func (s *Server) handleQuantumLogs(w http.ResponseWriter, r *http.Request) {
	logs := s.gen.QuantumLogs(s.clock.Now())
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"logs": logs})
}

func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	engine := "ready"
	if s.store.CountQueriesByStatus(r.Context(), models.QueryProcessing) > 0 {
		engine = "processing"
	}
	s.respondJSON(w, http.StatusOK, models.SystemStatus{
		OfflineIntelligence: "active",
		QuantumEngine:       engine,
		PrivacyScore:        s.gen.PrivacyScore(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
