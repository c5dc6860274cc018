package redis

import (
	"context"
	"crypto/tls"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"prompt-studio-server/modules/common/config"
)

// QueueKey - 생성 Job 대기열
const QueueKey = "jobs:queue"

// cancelKeyPrefix - Job 취소 플래그 키 prefix
const cancelKeyPrefix = "jobs:cancel:"

// cancelFlagTTL - 취소 플래그 유지 시간
const cancelFlagTTL = 24 * time.Hour

// Connect - Redis 연결 생성
func Connect(cfg *config.Config) *redis.Client {
	log.Printf("🔌 Connecting to Redis: %s", cfg.GetRedisAddr())

	// TLS 설정 (InsecureSkipVerify 추가)
	var tlsConfig *tls.Config
	if cfg.RedisUseTLS {
		tlsConfig = &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: true, // Render.com Redis용
		}
	}

	// Redis 클라이언트 생성
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Username:     cfg.RedisUsername,
		Password:     cfg.RedisPassword,
		TLSConfig:    tlsConfig,
		DB:           0,                // 기본 DB
		DialTimeout:  10 * time.Second, // 타임아웃 늘림
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// 연결 테스트
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Printf("🔍 Testing Redis connection...")
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("❌ Redis ping failed: %v", err)
		return nil
	}

	return rdb
}

// SetJobCancelled - Job 취소 플래그 설정
func SetJobCancelled(rdb *redis.Client, jobID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return rdb.Set(ctx, cancelKeyPrefix+jobID, "1", cancelFlagTTL).Err()
}

// IsJobCancelled - Job 취소 플래그 확인
func IsJobCancelled(rdb *redis.Client, jobID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := rdb.Exists(ctx, cancelKeyPrefix+jobID).Result()
	if err != nil {
		log.Printf("⚠️  Failed to check cancel flag for job %s: %v", jobID, err)
		return false
	}
	return exists > 0
}

// ClearJobCancelled - Job 취소 플래그 제거 (재시도 시)
func ClearJobCancelled(rdb *redis.Client, jobID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Del(ctx, cancelKeyPrefix+jobID).Err(); err != nil {
		log.Printf("⚠️  Failed to clear cancel flag for job %s: %v", jobID, err)
	}
}
