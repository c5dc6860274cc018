package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"prompt-studio-server/modules/common/config"
)

type Client struct {
	httpClient *http.Client
}

// NewClient - Storage 클라이언트 생성
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 300 * time.Second, // 동영상 업로드용 타임아웃
		},
	}
}

// DownloadMedia - URL에서 미디어 다운로드 (Veo 결과 영상 등)
func (c *Client) DownloadMedia(ctx context.Context, url string) ([]byte, error) {
	log.Printf("📥 Downloading media from: %s", url)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to download media: status %d, body: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read media data: %w", err)
	}

	log.Printf("✅ Media downloaded successfully: %d bytes", len(data))
	return data, nil
}

// UploadImage - Supabase Storage에 이미지 업로드 (WebP 변환 포함)
func (c *Client) UploadImage(ctx context.Context, imageData []byte, userID string, convertToWebP func([]byte, float32) ([]byte, error)) (string, error) {
	// PNG를 WebP로 변환 (quality: 90)
	webpData, err := convertToWebP(imageData, 90.0)
	if err != nil {
		return "", fmt.Errorf("failed to convert PNG to WebP: %w", err)
	}

	fileName := fmt.Sprintf("generated_%d_%d.webp",
		time.Now().UnixNano()/int64(time.Millisecond), rand.Intn(999999))
	filePath := fmt.Sprintf("generated-images/user-%s/%s", userID, fileName)

	if err := c.upload(ctx, filePath, webpData, "image/webp"); err != nil {
		return "", err
	}

	log.Printf("✅ WebP image uploaded successfully: %s (%d bytes)", filePath, len(webpData))
	return filePath, nil
}

// UploadVideo - Supabase Storage에 생성된 영상 업로드 (MP4 그대로)
func (c *Client) UploadVideo(ctx context.Context, videoData []byte, userID string) (string, error) {
	fileName := fmt.Sprintf("generated_%d_%d.mp4",
		time.Now().UnixNano()/int64(time.Millisecond), rand.Intn(999999))
	filePath := fmt.Sprintf("generated-videos/user-%s/%s", userID, fileName)

	if err := c.upload(ctx, filePath, videoData, "video/mp4"); err != nil {
		return "", err
	}

	log.Printf("✅ Video uploaded successfully: %s (%d bytes)", filePath, len(videoData))
	return filePath, nil
}

// upload - Supabase Storage API 업로드 공통 처리
func (c *Client) upload(ctx context.Context, filePath string, data []byte, contentType string) error {
	cfg := config.GetConfig()

	uploadURL := fmt.Sprintf("%s/storage/v1/object/attachments/%s", cfg.SupabaseURL, filePath)

	log.Printf("📤 Uploading to storage: %s (%s)", filePath, contentType)

	req, err := http.NewRequestWithContext(ctx, "POST", uploadURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+cfg.SupabaseServiceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// PublicURL - 업로드된 파일의 공개 URL 생성
func PublicURL(filePath string) string {
	cfg := config.GetConfig()
	return cfg.SupabaseStorageBaseURL + filePath
}
