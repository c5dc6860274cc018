package asset

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

// NewHandler - Asset 핸들러 생성
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
	r.HandleFunc("/api/assets/{kind}", h.ListAssets).Methods("GET")
	r.HandleFunc("/api/assets/{kind}", h.CreateAsset).Methods("POST")
	r.HandleFunc("/api/assets/{kind}/{assetId}", h.UpdateAsset).Methods("PUT")
	r.HandleFunc("/api/assets/{kind}/{assetId}", h.DeleteAsset).Methods("DELETE")
	log.Println("✅ Asset routes registered: /api/assets/{kind}")
}

// ListAssets - GET /api/assets/{kind}
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind := vars["kind"]

	rows, err := h.service.ListByKind(kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

// CreateAsset - POST /api/assets/{kind}
func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind := vars["kind"]

	var data json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	row, err := h.service.Create(r.Context(), kind, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(row)
}

// UpdateAsset - PUT /api/assets/{kind}/{assetId}
func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assetID := vars["assetId"]

	var data json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	row, err := h.service.Update(r.Context(), assetID, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(row)
}

// DeleteAsset - DELETE /api/assets/{kind}/{assetId}
func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assetID := vars["assetId"]

	if err := h.service.Delete(r.Context(), assetID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
