package generateimage

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

// NewHandler - 이미지 생성 핸들러 생성
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/generate/image", h.Generate).Methods("POST")
	r.HandleFunc("/api/generate/image/preview", h.Preview).Methods("POST")
	r.HandleFunc("/api/generate/image/status/{jobId}", h.Status).Methods("GET")
	log.Println("✅ Image generation routes registered: /api/generate/image")
}

// Generate - POST /api/generate/image (큐 제출)
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	jobID, err := h.service.SubmitJob(r.Context(), &req)
	if err != nil {
		log.Printf("❌ Failed to submit image job: %v", err)
		writeJSON(w, http.StatusInternalServerError, GenerateImageResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusAccepted, GenerateImageResponse{
		Success: true,
		JobID:   jobID,
	})
}

// Preview - POST /api/generate/image/preview (저장 없이 컴파일 결과만)
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req GenerateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	prompt, negativeTerms, err := h.service.CompileForRequest(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, PreviewResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if negativeTerms != "" {
		prompt += "\n\nNegative prompt:\n" + negativeTerms
	}

	writeJSON(w, http.StatusOK, PreviewResponse{
		Success: true,
		Engine:  req.Engine,
		Prompt:  prompt,
	})
}

// Status - GET /api/generate/image/status/{jobId}
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
