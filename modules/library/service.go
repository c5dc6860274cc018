package library

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"prompt-studio-server/modules/common/database"
	"prompt-studio-server/modules/common/model"
)

type Service struct {
	dbClient *database.Client
}

// NewService - Library 서비스 생성
func NewService() *Service {
	dbClient := database.NewClient()
	if dbClient == nil {
		log.Println("❌ Failed to initialize Database client for library")
		return nil
	}

	return &Service{
		dbClient: dbClient,
	}
}

// Save - 프롬프트 설정 저장
func (s *Service) Save(ctx context.Context, req *SaveRequest) (string, error) {
	if req.Mode != model.ModeCinematic && req.Mode != model.ModeStopMotion {
		return "", fmt.Errorf("unknown mode: %s", req.Mode)
	}

	row := &model.PromptRow{
		PromptID:   uuid.New().String(),
		UserID:     req.UserID,
		Title:      req.Title,
		Mode:       req.Mode,
		Engine:     req.Engine,
		ConfigData: req.ConfigData,
	}

	if err := s.dbClient.InsertPrompt(ctx, row); err != nil {
		return "", err
	}

	return row.PromptID, nil
}

// Get - 저장된 프롬프트 설정 조회 (export용 원본 JSON 그대로)
func (s *Service) Get(promptID string) (*model.PromptRow, error) {
	return s.dbClient.FetchPrompt(promptID)
}

// List - 사용자별 저장 목록
func (s *Service) List(userID string) ([]model.PromptRow, error) {
	return s.dbClient.ListPrompts(userID)
}

// Delete - 저장된 프롬프트 삭제
func (s *Service) Delete(ctx context.Context, promptID string) error {
	return s.dbClient.DeletePrompt(ctx, promptID)
}
