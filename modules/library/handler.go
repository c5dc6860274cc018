package library

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

// NewHandler - Library 핸들러 생성
func NewHandler() *Handler {
	service := NewService()
	if service == nil {
		return nil
	}
	return &Handler{
		service: service,
	}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/prompts", h.SavePrompt).Methods("POST")
	r.HandleFunc("/api/prompts", h.ListPrompts).Methods("GET")
	r.HandleFunc("/api/prompts/{promptId}", h.GetPrompt).Methods("GET")
	r.HandleFunc("/api/prompts/{promptId}", h.DeletePrompt).Methods("DELETE")
	r.HandleFunc("/api/prompts/{promptId}/export", h.ExportPrompt).Methods("GET")
	log.Println("✅ Library routes registered: /api/prompts")
}

// SavePrompt - POST /api/prompts (import도 같은 경로: config JSON을 그대로 넘기면 된다)
func (h *Handler) SavePrompt(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.ConfigData) == 0 {
		http.Error(w, "config is required", http.StatusBadRequest)
		return
	}

	promptID, err := h.service.Save(r.Context(), &req)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SaveResponse{Success: false, Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{Success: true, PromptID: promptID})
}

// ListPrompts - GET /api/prompts?userId=...
func (h *Handler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	rows, err := h.service.List(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

// GetPrompt - GET /api/prompts/{promptId}
func (h *Handler) GetPrompt(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	row, err := h.service.Get(vars["promptId"])
	if err != nil {
		http.Error(w, "Prompt not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(row)
}

// ExportPrompt - GET /api/prompts/{promptId}/export
// 설정 JSON 원본만 내려준다. 다시 불러와 컴파일하면 동일한 프롬프트가 나온다
func (h *Handler) ExportPrompt(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	row, err := h.service.Get(vars["promptId"])
	if err != nil {
		http.Error(w, "Prompt not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+row.Title+".json\"")
	w.Write(row.ConfigData)
}

// DeletePrompt - DELETE /api/prompts/{promptId}
func (h *Handler) DeletePrompt(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.service.Delete(r.Context(), vars["promptId"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
