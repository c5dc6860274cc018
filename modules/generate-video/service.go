package generatevideo

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"prompt-studio-server/modules/asset"
	"prompt-studio-server/modules/common/config"
	"prompt-studio-server/modules/common/database"
	"prompt-studio-server/modules/common/gemini"
	"prompt-studio-server/modules/common/model"
	redisClient "prompt-studio-server/modules/common/redis"
	"prompt-studio-server/modules/common/storage"
	sceneprompt "prompt-studio-server/modules/scene-prompt"
	common "prompt-studio-server/modules/scene-prompt/common"

	goredis "github.com/redis/go-redis/v9"
)

// 일괄 제출 시 동시에 처리할 최대 요청 수
const maxConcurrentSubmits = 3

type Service struct {
	dbClient     *database.Client
	rdb          *goredis.Client
	storage      *storage.Client
	assetService *asset.Service
}

func NewService() *Service {
	cfg := config.GetConfig()

	dbClient := database.NewClient()
	if dbClient == nil {
		log.Println("❌ Failed to initialize Database client")
		return nil
	}

	rdb := redisClient.Connect(cfg)
	if rdb == nil {
		log.Println("❌ Failed to connect to Redis")
		return nil
	}

	return &Service{
		dbClient:     dbClient,
		rdb:          rdb,
		storage:      storage.NewClient(),
		assetService: asset.NewService(),
	}
}

// CompileForRequest - 요청의 장면 설정을 프롬프트로 컴파일.
// 인라인 에셋이 없으면 저장된 에셋을 사용한다
func (s *Service) CompileForRequest(req *GenerateVideoRequest) (prompt string, negativeTerms string, err error) {
	subjects := req.Subjects
	objects := req.Objects

	if subjects == nil && s.assetService != nil {
		loaded, loadErr := s.assetService.ListSubjects()
		if loadErr != nil {
			log.Printf("⚠️  Failed to load subjects, compiling without them: %v", loadErr)
		} else {
			subjects = loaded
		}
	}
	if objects == nil && s.assetService != nil {
		loaded, loadErr := s.assetService.ListObjects()
		if loadErr != nil {
			log.Printf("⚠️  Failed to load objects, compiling without them: %v", loadErr)
		} else {
			objects = loaded
		}
	}

	engine := common.ParseEngine(req.Engine)
	prompt, err = sceneprompt.Compile(req.Mode, engine, req.Config, subjects, objects, req.HasReferenceImage)
	if err != nil {
		return "", "", err
	}

	negativeTerms = common.ComposeNegativeTerms(common.DefaultNegativeCategories, req.NegativeCategories)
	return prompt, negativeTerms, nil
}

// SubmitJob - 영상 생성 Job을 Supabase에 저장하고 Redis Queue에 등록
func (s *Service) SubmitJob(ctx context.Context, req *GenerateVideoRequest) (string, error) {
	prompt, negativeTerms, err := s.CompileForRequest(req)
	if err != nil {
		return "", err
	}

	jobID := uuid.New().String()

	job := &model.GenerationJob{
		JobID:          jobID,
		UserID:         req.UserID,
		JobType:        model.JobTypeVideo,
		Mode:           common.Or(req.Mode, model.ModeCinematic),
		Engine:         string(common.ParseEngine(req.Engine)),
		Prompt:         prompt,
		NegativePrompt: negativeTerms,
		ConfigData:     req.Config,
		JobStatus:      model.StatusPending,
	}

	if err := s.dbClient.InsertJob(ctx, job); err != nil {
		return "", fmt.Errorf("failed to store job: %w", err)
	}

	if err := s.rdb.LPush(ctx, redisClient.QueueKey, jobID).Err(); err != nil {
		return "", fmt.Errorf("failed to enqueue job: %w", err)
	}

	log.Printf("📤 Video job %s queued (engine: %s)", jobID, job.Engine)
	return jobID, nil
}

// SubmitBatch - 여러 장면을 일괄 제출.
// 항목별로 성공/실패를 기록하고 일부 실패해도 나머지는 계속 진행한다
func (s *Service) SubmitBatch(ctx context.Context, req *BatchGenerateRequest) []BatchItemResult {
	results := make([]BatchItemResult, len(req.Requests))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSubmits)

	for i := range req.Requests {
		i := i
		g.Go(func() error {
			jobID, err := s.SubmitJob(gctx, &req.Requests[i])

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[i] = BatchItemResult{Index: i, Success: false, Error: err.Error()}
			} else {
				results[i] = BatchItemResult{Index: i, Success: true, JobID: jobID}
			}
			// 항목별 실패는 전체를 중단시키지 않는다
			return nil
		})
	}

	g.Wait()
	return results
}

// ProcessJob - 큐에서 받은 영상 Job을 처리.
// Veo 오퍼레이션 시작 → 완료까지 폴링 → 영상 다운로드 → Storage 업로드 → 결과 URL 저장
func (s *Service) ProcessJob(ctx context.Context, job *model.GenerationJob) error {
	cfg := config.GetConfig()

	if redisClient.IsJobCancelled(s.rdb, job.JobID) {
		log.Printf("🛑 Job %s cancelled before processing", job.JobID)
		return s.dbClient.UpdateJobStatus(ctx, job.JobID, model.StatusUserCancelled)
	}

	if err := s.dbClient.UpdateJobStatus(ctx, job.JobID, model.StatusProcessing); err != nil {
		return err
	}

	videoConfig := &genai.GenerateVideosConfig{
		AspectRatio: "16:9",
	}
	if job.NegativePrompt != "" {
		videoConfig.NegativePrompt = job.NegativePrompt
	}

	client, operation, err := gemini.StartVideoGenerationWithRetry(
		ctx,
		cfg.GeminiAPIKeys,
		cfg.VeoModel,
		job.Prompt,
		videoConfig,
	)
	if err != nil {
		s.failJob(ctx, job.JobID, fmt.Sprintf("video generation failed to start: %v", err))
		return err
	}

	log.Printf("🎬 Veo operation started for job %s", job.JobID)

	// 완료까지 폴링. 취소 플래그가 서면 결과를 버리고 중단한다
	pollInterval := time.Duration(cfg.VeoPollIntervalSec) * time.Second
	for !operation.Done {
		if redisClient.IsJobCancelled(s.rdb, job.JobID) {
			log.Printf("🛑 Job %s cancelled during generation, abandoning operation", job.JobID)
			return s.dbClient.UpdateJobStatus(ctx, job.JobID, model.StatusUserCancelled)
		}

		time.Sleep(pollInterval)

		operation, err = client.Operations.GetVideosOperation(ctx, operation, nil)
		if err != nil {
			s.failJob(ctx, job.JobID, fmt.Sprintf("polling failed: %v", err))
			return err
		}
		log.Printf("🔄 Job %s: Veo operation still running...", job.JobID)
	}

	if operation.Response == nil || len(operation.Response.GeneratedVideos) == 0 {
		err := fmt.Errorf("no video in Veo response")
		s.failJob(ctx, job.JobID, err.Error())
		return err
	}

	generated := operation.Response.GeneratedVideos[0]
	if generated.Video == nil {
		err := fmt.Errorf("empty video in Veo response")
		s.failJob(ctx, job.JobID, err.Error())
		return err
	}

	var videoData []byte
	if len(generated.Video.VideoBytes) > 0 {
		videoData = generated.Video.VideoBytes
	} else if generated.Video.URI != "" {
		videoData, err = s.storage.DownloadMedia(ctx, generated.Video.URI)
		if err != nil {
			s.failJob(ctx, job.JobID, fmt.Sprintf("video download failed: %v", err))
			return err
		}
	} else {
		err := fmt.Errorf("video has neither bytes nor URI")
		s.failJob(ctx, job.JobID, err.Error())
		return err
	}
	log.Printf("📥 Video for job %s: %d bytes", job.JobID, len(videoData))

	filePath, err := s.storage.UploadVideo(ctx, videoData, job.UserID)
	if err != nil {
		s.failJob(ctx, job.JobID, fmt.Sprintf("upload failed: %v", err))
		return err
	}

	publicURL := storage.PublicURL(filePath)
	if err := s.dbClient.UpdateJobResult(ctx, job.JobID, publicURL); err != nil {
		return err
	}

	log.Printf("✅ Video job %s completed: %s", job.JobID, publicURL)
	return nil
}

// failJob - 실패 상태 기록 (기록 실패는 로그만 남긴다)
func (s *Service) failJob(ctx context.Context, jobID string, errMsg string) {
	if err := s.dbClient.MarkJobFailed(ctx, jobID, errMsg); err != nil {
		log.Printf("❌ Failed to mark job %s as failed: %v", jobID, err)
	}
}
