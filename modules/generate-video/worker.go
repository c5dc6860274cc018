package generatevideo

import (
	"context"
	"log"

	"prompt-studio-server/modules/common/model"
)

// ProcessJob - 중앙 워커에서 라우팅된 영상 Job 처리 진입점
func ProcessJob(ctx context.Context, job *model.GenerationJob) {
	service := NewService()
	if service == nil {
		log.Printf("❌ Failed to initialize video generation service for job %s", job.JobID)
		return
	}

	if err := service.ProcessJob(ctx, job); err != nil {
		log.Printf("❌ Video job %s failed: %v", job.JobID, err)
		return
	}
}
