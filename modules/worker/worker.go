package worker

import (
	"context"
	"log"
	"time"

	"prompt-studio-server/modules/common/config"
	"prompt-studio-server/modules/common/database"
	"prompt-studio-server/modules/common/model"
	redisClient "prompt-studio-server/modules/common/redis"

	generateimage "prompt-studio-server/modules/generate-image"
	generatevideo "prompt-studio-server/modules/generate-video"
)

// StartWorker - Redis Queue Worker 시작
func StartWorker() {
	log.Println("🔄 Redis Queue Worker starting...")

	cfg := config.GetConfig()

	// Redis 연결
	rdb := redisClient.Connect(cfg)
	if rdb == nil {
		log.Fatal("❌ Failed to connect to Redis")
		return
	}
	log.Println("✅ Redis connected successfully")

	// Database 클라이언트 초기화
	dbClient := database.NewClient()
	if dbClient == nil {
		log.Fatal("❌ Failed to initialize Database client")
		return
	}

	// Queue 감시 시작
	log.Printf("👀 Watching queue: %s", redisClient.QueueKey)

	ctx := context.Background()

	// 무한 루프로 Queue 감시
	for {
		// Job 받기 (BRPOP - Blocking Right Pop)
		result, err := rdb.BRPop(ctx, 0, redisClient.QueueKey).Result()
		if err != nil {
			log.Printf("❌ Redis BRPOP error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		// result[0]은 queue 이름, result[1]이 실제 job_id
		jobID := result[1]
		log.Printf("🎯 Received new job: %s", jobID)

		// Job 처리 (goroutine으로 비동기)
		go processJob(ctx, dbClient, jobID)
	}
}

// processJob - Job 처리 함수 (job_type 기반 라우팅)
func processJob(ctx context.Context, dbClient *database.Client, jobID string) {
	log.Printf("🚀 Processing job: %s", jobID)

	// Supabase에서 Job 데이터 조회
	job, err := dbClient.FetchJob(jobID)
	if err != nil {
		log.Printf("❌ Failed to fetch job %s: %v", jobID, err)
		return
	}

	// Job 데이터 로그 출력
	log.Printf("📦 Job Data:")
	log.Printf("   JobID: %s", job.JobID)
	log.Printf("   JobType: %s", job.JobType)
	log.Printf("   Mode: %s", job.Mode)
	log.Printf("   Engine: %s", job.Engine)
	log.Printf("   Status: %s", job.JobStatus)

	switch job.JobType {
	case model.JobTypeImage:
		log.Printf("🎨 Routing to Image generation module")
		generateimage.ProcessJob(ctx, job)

	case model.JobTypeVideo:
		log.Printf("🎬 Routing to Video generation module")
		generatevideo.ProcessJob(ctx, job)

	default:
		log.Printf("⚠️  Unknown job_type: %s, using Video as default", job.JobType)
		generatevideo.ProcessJob(ctx, job)
	}

	log.Printf("✅ Job %s processing completed", jobID)
}
