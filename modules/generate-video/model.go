package generatevideo

import (
	"encoding/json"

	"prompt-studio-server/modules/asset"
)

// GenerateVideoRequest - 영상 생성 요청.
// Config는 모드별 장면 설정 JSON 그대로 (cinematic/stopmotion)
type GenerateVideoRequest struct {
	UserID             string          `json:"userId"`
	Mode               string          `json:"mode"`   // "cinematic" | "stopmotion"
	Engine             string          `json:"engine"` // "veo" | "runway" | "kling"
	Config             json.RawMessage `json:"config"`
	HasReferenceImage  bool            `json:"hasReferenceImage,omitempty"`
	Subjects           []asset.Subject `json:"subjects,omitempty"`
	Objects            []asset.GObject `json:"objects,omitempty"`
	NegativeCategories map[string]bool `json:"negativeCategories,omitempty"`
}

// GenerateVideoResponse - 큐 제출 응답
type GenerateVideoResponse struct {
	Success bool   `json:"success"`
	JobID   string `json:"jobId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BatchGenerateRequest - 여러 장면 일괄 제출
type BatchGenerateRequest struct {
	Requests []GenerateVideoRequest `json:"requests"`
}

// BatchItemResult - 일괄 제출의 항목별 결과 (실패한 항목도 인덱스 위치에 기록)
type BatchItemResult struct {
	Index   int    `json:"index"`
	Success bool   `json:"success"`
	JobID   string `json:"jobId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BatchGenerateResponse - 일괄 제출 응답
type BatchGenerateResponse struct {
	Success bool              `json:"success"`
	Results []BatchItemResult `json:"results"`
}

// JobStatusResponse - Job 상태 조회 응답
type JobStatusResponse struct {
	Success   bool    `json:"success"`
	JobID     string  `json:"jobId"`
	Status    string  `json:"status"`
	ResultURL *string `json:"resultUrl,omitempty"`
	Error     *string `json:"error,omitempty"`
}
