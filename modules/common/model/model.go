package model

import (
	"encoding/json"
	"time"
)

// GenerationJob - studio_generation_jobs 테이블 구조
type GenerationJob struct {
	JobID          string          `json:"job_id"`
	UserID         string          `json:"user_id"`
	JobType        string          `json:"job_type"` // "video" | "image"
	Mode           string          `json:"mode"`     // "cinematic" | "stopmotion"
	Engine         string          `json:"engine"`   // veo, runway, kling, imagen, midjourney, flux
	Prompt         string          `json:"prompt"`
	NegativePrompt string          `json:"negative_prompt"`
	ConfigData     json.RawMessage `json:"config_data"` // 컴파일에 사용된 설정 원본 (JSON)
	JobStatus      string          `json:"job_status"`
	ResultURL      *string         `json:"result_url"`
	ErrorMessage   *string         `json:"error_message"`
	RetryCount     int             `json:"retry_count"`
	CreatedAt      time.Time       `json:"created_at"`
	StartedAt      *time.Time      `json:"started_at"`
	CompletedAt    *time.Time      `json:"completed_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AssetRow - studio_assets 테이블 구조 (asset_data에 종류별 본문 JSON 저장)
type AssetRow struct {
	AssetID   string          `json:"asset_id"`
	AssetKind string          `json:"asset_kind"` // "subject", "object", "location", "action"
	AssetData json.RawMessage `json:"asset_data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PromptRow - studio_prompts 테이블 구조 (저장된 프롬프트 설정)
type PromptRow struct {
	PromptID   string          `json:"prompt_id"`
	UserID     string          `json:"user_id"`
	Title      string          `json:"title"`
	Mode       string          `json:"mode"`   // "cinematic" | "stopmotion"
	Engine     string          `json:"engine"` // 마지막으로 선택된 엔진
	ConfigData json.RawMessage `json:"config_data"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

const (
	JobTypeVideo = "video"
	JobTypeImage = "image"
)

const (
	ModeCinematic  = "cinematic"
	ModeStopMotion = "stopmotion"
)

const (
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusCompleted     = "completed"
	StatusFailed        = "failed"
	StatusUserCancelled = "user_cancelled"
)
