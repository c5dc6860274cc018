package generateimage

import (
	"encoding/json"

	"prompt-studio-server/modules/asset"
)

// GenerateImageRequest - 이미지 생성 요청.
// Config는 모드별 장면 설정 JSON 그대로 (cinematic/stopmotion)
type GenerateImageRequest struct {
	UserID             string          `json:"userId"`
	Mode               string          `json:"mode"`   // "cinematic" | "stopmotion"
	Engine             string          `json:"engine"` // "imagen" | "midjourney" | "flux"
	Config             json.RawMessage `json:"config"`
	Subjects           []asset.Subject `json:"subjects,omitempty"`
	Objects            []asset.GObject `json:"objects,omitempty"`
	NegativeCategories map[string]bool `json:"negativeCategories,omitempty"`
}

// GenerateImageResponse - 큐 제출 응답
type GenerateImageResponse struct {
	Success bool   `json:"success"`
	JobID   string `json:"jobId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PreviewResponse - 동기 미리보기 응답 (저장 없이 프롬프트만 반환)
type PreviewResponse struct {
	Success bool   `json:"success"`
	Engine  string `json:"engine"`
	Prompt  string `json:"prompt"`
	Error   string `json:"error,omitempty"`
}

// JobStatusResponse - Job 상태 조회 응답
type JobStatusResponse struct {
	Success   bool    `json:"success"`
	JobID     string  `json:"jobId"`
	Status    string  `json:"status"`
	ResultURL *string `json:"resultUrl,omitempty"`
	Error     *string `json:"error,omitempty"`
}
