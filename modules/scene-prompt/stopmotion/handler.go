package stopmotion

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"prompt-studio-server/modules/asset"
	common "prompt-studio-server/modules/scene-prompt/common"
)

// CompileRequest - 스톱모션 프롬프트 컴파일 요청
type CompileRequest struct {
	Config             Config          `json:"config"`
	Engine             string          `json:"engine"`
	HasReferenceImage  bool            `json:"hasReferenceImage"`
	Subjects           []asset.Subject `json:"subjects,omitempty"`
	NegativeCategories map[string]bool `json:"negativeCategories,omitempty"`
}

// CompileResponse - 컴파일 결과
type CompileResponse struct {
	Success bool   `json:"success"`
	Engine  string `json:"engine"`
	Prompt  string `json:"prompt"`
}

type Handler struct {
	assetService *asset.Service
}

// NewHandler - 스톱모션 컴파일 핸들러 생성
func NewHandler(assetService *asset.Service) *Handler {
	return &Handler{
		assetService: assetService,
	}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/prompt/stopmotion", h.Compile).Methods("POST")
	log.Println("✅ Stop-motion prompt route registered: POST /api/prompt/stopmotion")
}

// Compile - POST /api/prompt/stopmotion
func (h *Handler) Compile(w http.ResponseWriter, r *http.Request) {
	var req CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	subjects := req.Subjects
	if subjects == nil && h.assetService != nil {
		loaded, err := h.assetService.ListSubjects()
		if err != nil {
			log.Printf("⚠️  Failed to load subjects, compiling without them: %v", err)
		} else {
			subjects = loaded
		}
	}

	engine := common.ParseEngine(req.Engine)
	prompt := CompilePrompt(&req.Config, subjects, req.HasReferenceImage, engine)
	prompt += common.ComposeNegativePrompt(common.DefaultNegativeCategories, req.NegativeCategories)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CompileResponse{
		Success: true,
		Engine:  string(engine),
		Prompt:  prompt,
	})
}
