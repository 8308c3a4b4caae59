package notify

import (
	"context"
	"time"

	"github.com/dunamismax/imgconvert/internal/webhook"
)

type webhookSender interface {
	Send(ctx context.Context, event string, payload any) error
}

// WebhookNotifier forwards conversion outcomes. Notices without a result are skipped.
type WebhookNotifier struct {
	client webhookSender
}

func NewWebhookNotifier(client *webhook.Client) *WebhookNotifier {
	if client == nil {
		return &WebhookNotifier{}
	}
	return &WebhookNotifier{client: client}
}

func (n *WebhookNotifier) Notify(ctx context.Context, notice Notice) error {
	if n.client == nil || notice.Result == nil {
		return nil
	}
	result := notice.Result

	body := map[string]any{
		"conversion_id": result.ID,
		"source_path":   result.Request.SourcePath,
		"target_format": result.Request.TargetFormat.String(),
		"outcome":       result.Outcome,
		"duration_ms":   result.Duration.Milliseconds(),
		"message":       notice.Status,
		"reported_at":   time.Now().UTC(),
	}

	event := webhook.EventConversionFailed
	if result.Succeeded() {
		event = webhook.EventConversionSucceeded
		body["output_path"] = result.OutputPath
		body["bytes"] = result.Bytes
	} else {
		body["error"] = result.ErrorDetail
	}

	return n.client.Send(ctx, event, body)
}
