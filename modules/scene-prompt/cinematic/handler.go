package cinematic

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"prompt-studio-server/modules/asset"
	common "prompt-studio-server/modules/scene-prompt/common"
)

// CompileRequest - 시네마틱 프롬프트 컴파일 요청.
// Subjects/Objects를 직접 넘기면 그대로 쓰고, 없으면 저장된 에셋을 조회한다
type CompileRequest struct {
	Config             SceneConfig     `json:"config"`
	Engine             string          `json:"engine"`
	Subjects           []asset.Subject `json:"subjects,omitempty"`
	Objects            []asset.GObject `json:"objects,omitempty"`
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

// NewHandler - 시네마틱 컴파일 핸들러 생성
func NewHandler(assetService *asset.Service) *Handler {
	return &Handler{
		assetService: assetService,
	}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/prompt/cinematic", h.Compile).Methods("POST")
	log.Println("✅ Cinematic prompt route registered: POST /api/prompt/cinematic")
}

// Compile - POST /api/prompt/cinematic
func (h *Handler) Compile(w http.ResponseWriter, r *http.Request) {
	var req CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	subjects := req.Subjects
	objects := req.Objects

	// 인라인 에셋이 없으면 저장된 에셋 사용
	if subjects == nil && h.assetService != nil {
		loaded, err := h.assetService.ListSubjects()
		if err != nil {
			log.Printf("⚠️  Failed to load subjects, compiling without them: %v", err)
		} else {
			subjects = loaded
		}
	}
	if objects == nil && h.assetService != nil {
		loaded, err := h.assetService.ListObjects()
		if err != nil {
			log.Printf("⚠️  Failed to load objects, compiling without them: %v", err)
		} else {
			objects = loaded
		}
	}

	engine := common.ParseEngine(req.Engine)
	prompt := CompilePrompt(&req.Config, subjects, objects, engine)
	prompt += common.ComposeNegativePrompt(common.DefaultNegativeCategories, req.NegativeCategories)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CompileResponse{
		Success: true,
		Engine:  string(engine),
		Prompt:  prompt,
	})
}
