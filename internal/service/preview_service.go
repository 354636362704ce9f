package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/passkit-service/internal/domain"
	"github.com/spec-kit/passkit-service/internal/persistence"
	"github.com/spec-kit/passkit-service/internal/wallet"
)

const previewKeyPrefix = "pass:preview:"

// PreviewService serves Apple projections of stored templates, caching
// the serialized projection in Redis. Conversion is pure, so a cached
// entry stays valid until the template changes; the worker invalidates
// on update/archive events.
type PreviewService struct {
	redis  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewPreviewService builds the service.
func NewPreviewService(redis *persistence.Redis, ttl time.Duration, logger *zap.Logger) *PreviewService {
	return &PreviewService{redis: redis, ttl: ttl, logger: logger}
}

// ApplePass returns the Apple projection of a template, serving from
// cache when warm. Cache failures degrade to converting in-process.
func (s *PreviewService) ApplePass(ctx context.Context, template *domain.Template) (wallet.ApplePassTemplate, error) {
	key := previewKeyPrefix + template.ID

	if s.redis != nil && s.redis.Client != nil {
		cached, err := s.redis.Client.Get(ctx, key).Bytes()
		if err == nil {
			var apple wallet.ApplePassTemplate
			if err := json.Unmarshal(cached, &apple); err == nil {
				return apple, nil
			}
			// Corrupt entry; drop it and convert fresh.
			_ = s.redis.Client.Del(ctx, key).Err()
		}
	}

	universal := template.Configuration
	universal.ID = template.ID
	apple := wallet.ToApplePass(&universal)

	if s.redis != nil && s.redis.Client != nil {
		encoded, err := json.Marshal(apple)
		if err != nil {
			return apple, fmt.Errorf("encode apple preview: %w", err)
		}
		if err := s.redis.Client.Set(ctx, key, encoded, s.ttl).Err(); err != nil {
			s.logger.Warn("preview cache write failed", zap.String("template_id", template.ID), zap.Error(err))
		}
	}

	return apple, nil
}

// Invalidate drops the cached projection for a template.
func (s *PreviewService) Invalidate(ctx context.Context, templateID string) error {
	if s.redis == nil || s.redis.Client == nil {
		return nil
	}
	return s.redis.Client.Del(ctx, previewKeyPrefix+templateID).Err()
}
