package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/passkit-service/internal/events"
	"github.com/spec-kit/passkit-service/internal/service"
)

// StartPreviewInvalidator subscribes cache invalidation to template
// change events so stale Apple projections are never served.
func StartPreviewInvalidator(dispatcher events.Dispatcher, previews *service.PreviewService, logger *zap.Logger) {
	if dispatcher == nil || previews == nil {
		return
	}

	invalidate := func(ctx context.Context, event events.Event) error {
		if err := previews.Invalidate(ctx, event.TemplateID); err != nil {
			logger.Warn("preview invalidation failed",
				zap.String("template_id", event.TemplateID),
				zap.String("event", string(event.Type)),
				zap.Error(err),
			)
			return err
		}
		return nil
	}

	dispatcher.Subscribe(events.EventTemplateUpdated, invalidate)
	dispatcher.Subscribe(events.EventTemplateArchived, invalidate)
}
