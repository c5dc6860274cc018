package asset

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"prompt-studio-server/modules/common/database"
	"prompt-studio-server/modules/common/model"
)

type Service struct {
	dbClient *database.Client
}

// NewService - Asset 서비스 생성
func NewService() *Service {
	dbClient := database.NewClient()
	if dbClient == nil {
		log.Println("❌ Failed to initialize Database client for assets")
		return nil
	}

	return &Service{
		dbClient: dbClient,
	}
}

// validKind - 지원하는 에셋 종류인지 확인
func validKind(kind string) bool {
	switch kind {
	case KindSubject, KindObject, KindLocation, KindAction:
		return true
	}
	return false
}

// ListSubjects - 모든 인물 에셋 조회
func (s *Service) ListSubjects() ([]Subject, error) {
	rows, err := s.dbClient.FetchAssetsByKind(KindSubject)
	if err != nil {
		return nil, err
	}

	subjects := make([]Subject, 0, len(rows))
	for _, row := range rows {
		var subject Subject
		if err := json.Unmarshal(row.AssetData, &subject); err != nil {
			log.Printf("⚠️  Skipping malformed subject asset %s: %v", row.AssetID, err)
			continue
		}
		subject.ID = row.AssetID
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

// ListObjects - 모든 사물 에셋 조회
func (s *Service) ListObjects() ([]GObject, error) {
	rows, err := s.dbClient.FetchAssetsByKind(KindObject)
	if err != nil {
		return nil, err
	}

	objects := make([]GObject, 0, len(rows))
	for _, row := range rows {
		var object GObject
		if err := json.Unmarshal(row.AssetData, &object); err != nil {
			log.Printf("⚠️  Skipping malformed object asset %s: %v", row.AssetID, err)
			continue
		}
		object.ID = row.AssetID
		objects = append(objects, object)
	}
	return objects, nil
}

// ListByKind - 종류별 에셋 원본 JSON 목록
func (s *Service) ListByKind(kind string) ([]model.AssetRow, error) {
	if !validKind(kind) {
		return nil, fmt.Errorf("unknown asset kind: %s", kind)
	}
	return s.dbClient.FetchAssetsByKind(kind)
}

// Create - 에셋 생성 (id는 서버에서 발급, 이후 변경되지 않음)
func (s *Service) Create(ctx context.Context, kind string, data json.RawMessage) (*model.AssetRow, error) {
	if !validKind(kind) {
		return nil, fmt.Errorf("unknown asset kind: %s", kind)
	}

	row := &model.AssetRow{
		AssetID:   uuid.New().String(),
		AssetKind: kind,
		AssetData: data,
	}

	if err := s.dbClient.InsertAsset(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Update - 에셋 수정
func (s *Service) Update(ctx context.Context, assetID string, data json.RawMessage) (*model.AssetRow, error) {
	existing, err := s.dbClient.FetchAsset(assetID)
	if err != nil {
		return nil, err
	}

	existing.AssetData = data
	if err := s.dbClient.UpdateAsset(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete - 에셋 삭제. 씬에 남은 참조는 컴파일 시 자동으로 무시된다
func (s *Service) Delete(ctx context.Context, assetID string) error {
	return s.dbClient.DeleteAsset(ctx, assetID)
}
