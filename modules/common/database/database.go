package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/supabase-community/supabase-go"
	"prompt-studio-server/modules/common/config"
	"prompt-studio-server/modules/common/model"
)

type Client struct {
	supabase *supabase.Client
}

// NewClient - Database 클라이언트 생성
func NewClient() *Client {
	cfg := config.GetConfig()

	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("❌ Failed to create Supabase client: %v", err)
		return nil
	}

	return &Client{
		supabase: supabaseClient,
	}
}

// ---------- Generation Jobs ----------

// FetchJob - Supabase에서 Job 데이터 조회
func (c *Client) FetchJob(jobID string) (*model.GenerationJob, error) {
	log.Printf("🔍 Fetching job from Supabase: %s", jobID)

	var jobs []model.GenerationJob

	data, _, err := c.supabase.From("studio_generation_jobs").
		Select("*", "exact", false).
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query Supabase: %w", err)
	}

	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("job not found: %s", jobID)
	}

	job := &jobs[0]
	log.Printf("✅ Job fetched successfully: %s (type: %s, engine: %s, status: %s)",
		job.JobID, job.JobType, job.Engine, job.JobStatus)

	return job, nil
}

// InsertJob - 새 Job 저장
func (c *Client) InsertJob(ctx context.Context, job *model.GenerationJob) error {
	log.Printf("📝 Inserting job: %s (type: %s, engine: %s)", job.JobID, job.JobType, job.Engine)

	insertData := map[string]interface{}{
		"job_id":          job.JobID,
		"user_id":         job.UserID,
		"job_type":        job.JobType,
		"mode":            job.Mode,
		"engine":          job.Engine,
		"prompt":          job.Prompt,
		"negative_prompt": job.NegativePrompt,
		"config_data":     json.RawMessage(job.ConfigData),
		"job_status":      model.StatusPending,
	}

	_, _, err := c.supabase.From("studio_generation_jobs").
		Insert(insertData, false, "", "", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	log.Printf("✅ Job %s inserted", job.JobID)
	return nil
}

// UpdateJobStatus - Job 상태 업데이트
func (c *Client) UpdateJobStatus(ctx context.Context, jobID string, status string) error {
	log.Printf("📝 Updating job %s status to: %s", jobID, status)

	updateData := map[string]interface{}{
		"job_status": status,
		"updated_at": "now()",
	}

	if status == model.StatusProcessing {
		updateData["started_at"] = "now()"
	} else if status == model.StatusCompleted || status == model.StatusFailed {
		updateData["completed_at"] = "now()"
	}

	_, _, err := c.supabase.From("studio_generation_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	log.Printf("✅ Job %s status updated to: %s", jobID, status)
	return nil
}

// UpdateJobResult - Job 결과 URL 저장 (완료 처리)
func (c *Client) UpdateJobResult(ctx context.Context, jobID string, resultURL string) error {
	log.Printf("📝 Updating job %s result: %s", jobID, resultURL)

	updateData := map[string]interface{}{
		"job_status":   model.StatusCompleted,
		"result_url":   resultURL,
		"completed_at": "now()",
		"updated_at":   "now()",
	}

	_, _, err := c.supabase.From("studio_generation_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to update job result: %w", err)
	}

	return nil
}

// MarkJobFailed - Job 실패 처리 (에러 메시지 저장)
func (c *Client) MarkJobFailed(ctx context.Context, jobID string, errMsg string) error {
	log.Printf("📝 Marking job %s as failed: %s", jobID, errMsg)

	updateData := map[string]interface{}{
		"job_status":    model.StatusFailed,
		"error_message": errMsg,
		"completed_at":  "now()",
		"updated_at":    "now()",
	}

	_, _, err := c.supabase.From("studio_generation_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}

	return nil
}

// ---------- Assets ----------

// FetchAssetsByKind - 종류별 에셋 전체 조회
func (c *Client) FetchAssetsByKind(kind string) ([]model.AssetRow, error) {
	var rows []model.AssetRow

	data, _, err := c.supabase.From("studio_assets").
		Select("*", "exact", false).
		Eq("asset_kind", kind).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query studio_assets: %w", err)
	}

	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse assets response: %w", err)
	}

	return rows, nil
}

// FetchAsset - 단일 에셋 조회
func (c *Client) FetchAsset(assetID string) (*model.AssetRow, error) {
	var rows []model.AssetRow

	data, _, err := c.supabase.From("studio_assets").
		Select("*", "exact", false).
		Eq("asset_id", assetID).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query studio_assets: %w", err)
	}

	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse asset response: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("asset not found: %s", assetID)
	}

	return &rows[0], nil
}

// InsertAsset - 에셋 생성
func (c *Client) InsertAsset(ctx context.Context, row *model.AssetRow) error {
	insertData := map[string]interface{}{
		"asset_id":   row.AssetID,
		"asset_kind": row.AssetKind,
		"asset_data": row.AssetData,
	}

	_, _, err := c.supabase.From("studio_assets").
		Insert(insertData, false, "", "", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	log.Printf("✅ Asset %s (%s) inserted", row.AssetID, row.AssetKind)
	return nil
}

// UpdateAsset - 에셋 수정 (id는 변경되지 않음)
func (c *Client) UpdateAsset(ctx context.Context, row *model.AssetRow) error {
	updateData := map[string]interface{}{
		"asset_data": row.AssetData,
		"updated_at": "now()",
	}

	_, _, err := c.supabase.From("studio_assets").
		Update(updateData, "", "").
		Eq("asset_id", row.AssetID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	log.Printf("✅ Asset %s updated", row.AssetID)
	return nil
}

// DeleteAsset - 에셋 삭제
func (c *Client) DeleteAsset(ctx context.Context, assetID string) error {
	_, _, err := c.supabase.From("studio_assets").
		Delete("", "").
		Eq("asset_id", assetID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	log.Printf("✅ Asset %s deleted", assetID)
	return nil
}

// ---------- Prompt Library ----------

// InsertPrompt - 프롬프트 설정 저장
func (c *Client) InsertPrompt(ctx context.Context, row *model.PromptRow) error {
	insertData := map[string]interface{}{
		"prompt_id":   row.PromptID,
		"user_id":     row.UserID,
		"title":       row.Title,
		"mode":        row.Mode,
		"engine":      row.Engine,
		"config_data": row.ConfigData,
	}

	_, _, err := c.supabase.From("studio_prompts").
		Insert(insertData, false, "", "", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to insert prompt: %w", err)
	}

	log.Printf("✅ Prompt %s saved", row.PromptID)
	return nil
}

// FetchPrompt - 저장된 프롬프트 설정 조회
func (c *Client) FetchPrompt(promptID string) (*model.PromptRow, error) {
	var rows []model.PromptRow

	data, _, err := c.supabase.From("studio_prompts").
		Select("*", "exact", false).
		Eq("prompt_id", promptID).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query studio_prompts: %w", err)
	}

	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse prompt response: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("prompt not found: %s", promptID)
	}

	return &rows[0], nil
}

// ListPrompts - 사용자의 저장된 프롬프트 목록
func (c *Client) ListPrompts(userID string) ([]model.PromptRow, error) {
	var rows []model.PromptRow

	data, _, err := c.supabase.From("studio_prompts").
		Select("*", "exact", false).
		Eq("user_id", userID).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query studio_prompts: %w", err)
	}

	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse prompts response: %w", err)
	}

	return rows, nil
}

// DeletePrompt - 저장된 프롬프트 삭제
func (c *Client) DeletePrompt(ctx context.Context, promptID string) error {
	_, _, err := c.supabase.From("studio_prompts").
		Delete("", "").
		Eq("prompt_id", promptID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}

	log.Printf("✅ Prompt %s deleted", promptID)
	return nil
}
