package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/careloop/patient-survey-services/api/internal/interfaces/http/common"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// lowSatisfactionAlertThreshold is the per-submission satisfaction below
// which the quality team gets paged.
const lowSatisfactionAlertThreshold = 3.0

func (h *Handler) notifyLowSatisfaction(ctx context.Context, submission domain.Submission, satisfaction float64) {
	if ctx == nil {
		ctx = context.Background()
	}

	dest := strings.TrimSpace(h.messengerDestination)
	if dest == "" || strings.TrimSpace(h.messengerEndpoint) == "" {
		return
	}

	message := buildLowSatisfactionMessage(h.adminDashboardURL, submission, satisfaction)

	err := h.sendMessengerWithRetry(ctx, dest, submission.ID, message, 3, 200*time.Millisecond)
	if err == nil {
		return
	}
	if h.logger != nil {
		h.logger.WithError(err).Warn("low-satisfaction alert delivery failed")
	}
	h.persistNotificationFailure(ctx, submission, satisfaction, err, 3)
}

func buildLowSatisfactionMessage(dashboardURL string, submission domain.Submission, satisfaction float64) string {
	var builder strings.Builder
	builder.WriteString("A patient reported a low satisfaction score.\n")
	builder.WriteString(fmt.Sprintf("- Score: %.1f / 5\n", satisfaction))
	builder.WriteString(fmt.Sprintf("- Visit purpose: %s\n", common.DisplayVisitPurpose(submission.VisitPurpose)))
	builder.WriteString(fmt.Sprintf("- Patient: %s, %s\n", common.DisplayPatientType(submission.PatientType), common.DisplayUserType(submission.UserType)))
	if len(submission.Concerns) > 0 {
		builder.WriteString(fmt.Sprintf("- Concerns raised: %d\n", len(submission.Concerns)))
	}
	if submission.ID != "" && strings.TrimSpace(dashboardURL) != "" {
		builder.WriteString(fmt.Sprintf("[Open in dashboard](%s/%s)\n", strings.TrimRight(dashboardURL, "/"), submission.ID))
	}
	return builder.String()
}

func (h *Handler) sendMessengerWithRetry(ctx context.Context, destination, identifier, text string, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		err := h.sendMessengerMessage(ctx, destination, identifier, text)
		if err == nil {
			return nil
		}
		lastErr = err
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return lastErr
}

// persistNotificationFailure parks undeliverable alerts so an operator can
// replay them once the gateway is back.
func (h *Handler) persistNotificationFailure(ctx context.Context, submission domain.Submission, satisfaction float64, sendErr error, attempts int) {
	if h.failedNotifications == nil || sendErr == nil {
		return
	}
	doc := bson.M{
		"target": "quality_alert",
		"payload": bson.M{
			"submissionId": submission.ID,
			"satisfaction": satisfaction,
			"visitPurpose": string(submission.VisitPurpose),
		},
		"error":       sendErr.Error(),
		"attempts":    attempts,
		"status":      "pending",
		"createdAt":   time.Now().UTC(),
		"lastTriedAt": time.Now().UTC(),
	}
	if _, err := h.failedNotifications.InsertOne(ctx, doc); err != nil && h.logger != nil {
		h.logger.WithError(err).Error("could not persist failed notification")
	}
}

func (h *Handler) sendMessengerMessage(ctx context.Context, destination, identifier, bodyText string) error {
	trimmedID := strings.TrimSpace(identifier)
	if trimmedID == "" {
		trimmedID = "quality-team"
	}

	payload := map[string]any{
		"userId":      trimmedID,
		"text":        bodyText,
		"destination": strings.TrimSpace(destination),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("building messenger payload: %w", err)
	}

	client := h.httpClient
	if client == nil {
		return errors.New("no HTTP client configured")
	}
	timeout := client.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := strings.TrimRight(h.messengerEndpoint, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building messenger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sending messenger request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("messenger gateway rejected the message: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}

	return nil
}
