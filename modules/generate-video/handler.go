package generatevideo

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

// NewHandler - 영상 생성 핸들러 생성
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/generate/video", h.Generate).Methods("POST")
	r.HandleFunc("/api/generate/video/batch", h.GenerateBatch).Methods("POST")
	r.HandleFunc("/api/generate/video/status/{jobId}", h.Status).Methods("GET")
	log.Println("✅ Video generation routes registered: /api/generate/video")
}

// Generate - POST /api/generate/video (큐 제출)
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	jobID, err := h.service.SubmitJob(r.Context(), &req)
	if err != nil {
		log.Printf("❌ Failed to submit video job: %v", err)
		writeJSON(w, http.StatusInternalServerError, GenerateVideoResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusAccepted, GenerateVideoResponse{
		Success: true,
		JobID:   jobID,
	})
}

// GenerateBatch - POST /api/generate/video/batch (여러 장면 일괄 제출)
func (h *Handler) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Requests) == 0 {
		http.Error(w, "Empty batch", http.StatusBadRequest)
		return
	}

	results := h.service.SubmitBatch(r.Context(), &req)

	allOK := true
	for _, result := range results {
		if !result.Success {
			allOK = false
			break
		}
	}

	writeJSON(w, http.StatusAccepted, BatchGenerateResponse{
		Success: allOK,
		Results: results,
	})
}

// Status - GET /api/generate/video/status/{jobId}
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	job, err := h.service.dbClient.FetchJob(jobID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, JobStatusResponse{
			Success: false,
			JobID:   jobID,
		})
		return
	}

	writeJSON(w, http.StatusOK, JobStatusResponse{
		Success:   true,
		JobID:     job.JobID,
		Status:    job.JobStatus,
		ResultURL: job.ResultURL,
		Error:     job.ErrorMessage,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
