package library

import "encoding/json"

// SaveRequest - 프롬프트 설정 저장 요청.
// ConfigData는 구조를 건드리지 않고 원본 그대로 보관한다 (무손실 왕복)
type SaveRequest struct {
	UserID     string          `json:"userId"`
	Title      string          `json:"title"`
	Mode       string          `json:"mode"`   // "cinematic" | "stopmotion"
	Engine     string          `json:"engine"` // 마지막으로 선택한 엔진
	ConfigData json.RawMessage `json:"config"`
}

// SaveResponse - 저장 결과
type SaveResponse struct {
	Success  bool   `json:"success"`
	PromptID string `json:"promptId,omitempty"`
	Error    string `json:"error,omitempty"`
}
