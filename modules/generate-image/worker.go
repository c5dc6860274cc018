package generateimage

import (
	"context"
	"log"

	"prompt-studio-server/modules/common/model"
)

// ProcessJob - 중앙 워커에서 라우팅된 이미지 Job 처리 진입점
func ProcessJob(ctx context.Context, job *model.GenerationJob) {
	service := NewService()
	if service == nil {
		log.Printf("❌ Failed to initialize image generation service for job %s", job.JobID)
		return
	}

	if err := service.ProcessJob(ctx, job); err != nil {
		log.Printf("❌ Image job %s failed: %v", job.JobID, err)
		return
	}
}
