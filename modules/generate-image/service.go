package generateimage

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"prompt-studio-server/modules/asset"
	"prompt-studio-server/modules/common/config"
	"prompt-studio-server/modules/common/database"
	"prompt-studio-server/modules/common/gemini"
	"prompt-studio-server/modules/common/model"
	redisClient "prompt-studio-server/modules/common/redis"
	"prompt-studio-server/modules/common/storage"
	"prompt-studio-server/modules/common/utils"
	sceneprompt "prompt-studio-server/modules/scene-prompt"
	common "prompt-studio-server/modules/scene-prompt/common"

	goredis "github.com/redis/go-redis/v9"
)

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
func (s *Service) CompileForRequest(req *GenerateImageRequest) (prompt string, negativeTerms string, err error) {
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
	prompt, err = sceneprompt.Compile(req.Mode, engine, req.Config, subjects, objects, false)
	if err != nil {
		return "", "", err
	}

	negativeTerms = common.ComposeNegativeTerms(common.DefaultNegativeCategories, req.NegativeCategories)
	return prompt, negativeTerms, nil
}

// SubmitJob - 이미지 생성 Job을 Supabase에 저장하고 Redis Queue에 등록
func (s *Service) SubmitJob(ctx context.Context, req *GenerateImageRequest) (string, error) {
	prompt, negativeTerms, err := s.CompileForRequest(req)
	if err != nil {
		return "", err
	}

	jobID := uuid.New().String()

	job := &model.GenerationJob{
		JobID:          jobID,
		UserID:         req.UserID,
		JobType:        model.JobTypeImage,
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

	log.Printf("📤 Image job %s queued (engine: %s)", jobID, job.Engine)
	return jobID, nil
}

// ProcessJob - 큐에서 받은 이미지 Job을 처리.
// 프롬프트로 Gemini 이미지 생성 → WebP 변환 → Storage 업로드 → 결과 URL 저장
func (s *Service) ProcessJob(ctx context.Context, job *model.GenerationJob) error {
	cfg := config.GetConfig()

	if redisClient.IsJobCancelled(s.rdb, job.JobID) {
		log.Printf("🛑 Job %s cancelled before processing", job.JobID)
		return s.dbClient.UpdateJobStatus(ctx, job.JobID, model.StatusUserCancelled)
	}

	if err := s.dbClient.UpdateJobStatus(ctx, job.JobID, model.StatusProcessing); err != nil {
		return err
	}

	prompt := job.Prompt
	if job.NegativePrompt != "" {
		prompt += "\n\nNegative prompt:\n" + job.NegativePrompt
	}

	content := &genai.Content{
		Parts: []*genai.Part{
			genai.NewPartFromText(prompt),
		},
	}

	result, err := gemini.GenerateContentWithRetry(
		ctx,
		cfg.GeminiAPIKeys,
		cfg.GeminiImageModel,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{
				AspectRatio: "16:9",
			},
		},
	)
	if err != nil {
		s.failJob(ctx, job.JobID, fmt.Sprintf("image generation failed: %v", err))
		return err
	}

	imageData := extractImageBytes(result)
	if imageData == nil {
		err := fmt.Errorf("no image data in Gemini response")
		s.failJob(ctx, job.JobID, err.Error())
		return err
	}
	log.Printf("✅ Received image from Gemini: %d bytes", len(imageData))

	filePath, err := s.storage.UploadImage(ctx, imageData, job.UserID, utils.ConvertPNGToWebP)
	if err != nil {
		s.failJob(ctx, job.JobID, fmt.Sprintf("upload failed: %v", err))
		return err
	}

	publicURL := storage.PublicURL(filePath)
	if err := s.dbClient.UpdateJobResult(ctx, job.JobID, publicURL); err != nil {
		return err
	}

	log.Printf("✅ Image job %s completed: %s", job.JobID, publicURL)
	return nil
}

// failJob - 실패 상태 기록 (기록 실패는 로그만 남긴다)
func (s *Service) failJob(ctx context.Context, jobID string, errMsg string) {
	if err := s.dbClient.MarkJobFailed(ctx, jobID, errMsg); err != nil {
		log.Printf("❌ Failed to mark job %s as failed: %v", jobID, err)
	}
}

// extractImageBytes - Gemini 응답에서 첫 번째 이미지 바이트 추출
func extractImageBytes(result *genai.GenerateContentResponse) []byte {
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
