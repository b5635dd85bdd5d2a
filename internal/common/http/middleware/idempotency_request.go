package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/karnaval/go-costume-catalog/internal/common"
	commonhttp "github.com/karnaval/go-costume-catalog/internal/common/http"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/models"

	"github.com/labstack/echo/v4"
)

const (
	headerIdempotencyKey      = "X-Idempotency-Key"
	headerIdempotencyReplayed = "Idempotent-Replayed"
)

// CheckIdempotentRequest replays the stored response of a POST already done
// with the same X-Idempotency-Key. Requests without the header, and every
// request when redis is not configured, go straight to the handler.
func (m *AppMiddleware) CheckIdempotentRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.cacheRepo == nil || c.Request().Method != http.MethodPost {
			return next(c)
		}

		key := c.Request().Header.Get(headerIdempotencyKey)
		if key == "" {
			return next(c)
		}

		// the lock must be released even if the client goes away
		ctx := context.WithoutCancel(c.Request().Context())

		body := readRequestBody(c)
		idm, err := m.getOrCreateIdempotency(ctx, key, c.Request().Method, c.Request().URL.Path, body)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrInvalidFingerprint):
				return commonhttp.RestErrorResponse(c, http.StatusUnprocessableEntity, err)
			case errors.Is(err, common.ErrRequestBeingProcessed):
				return commonhttp.RestErrorResponse(c, http.StatusConflict, err)
			default:
				xlog.Error(ctx, "[IDEMPOTENCY]", xlog.String("key", key), xlog.Err(err))
				return commonhttp.RestErrorResponse(c, http.StatusInternalServerError, common.ErrInternalServerError)
			}
		}

		if idm.IsFinished() {
			return replay(c, idm)
		}

		resBody := dumpResponseBody(c)
		if err := next(c); err != nil {
			c.Error(err)
		}

		status := c.Response().Status
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			// a failed request may be retried with the same key
			if err := m.releaseLock(ctx, idm); err != nil {
				xlog.Warn(ctx, "[IDEMPOTENCY]", xlog.String("key", key), xlog.Err(err))
			}
			return nil
		}

		headers := make(map[string]string)
		for k, v := range c.Response().Header() {
			if len(v) > 0 && k != echo.HeaderXRequestID {
				headers[k] = v[len(v)-1]
			}
		}
		idm.SetResponse(status, headers, resBody.String())

		// the response is already written, a failed save only costs the replay
		if err := m.saveResponseToCache(ctx, idm); err != nil {
			xlog.Warn(ctx, "[IDEMPOTENCY]", xlog.String("key", key), xlog.Err(err))
		}

		return nil
	}
}

func replay(c echo.Context, idm *models.Idempotency) error {
	for k, v := range idm.ResponseHeaders {
		c.Response().Header().Set(k, v)
	}
	c.Response().Header().Set(headerIdempotencyReplayed, "true")
	c.Response().WriteHeader(idm.HTTPStatusCode)
	_, err := c.Response().Write([]byte(idm.ResponseBody))
	return err
}

// getOrCreateIdempotency returns the stored entry for key, or takes the lock
// with a pending entry when there is none.
func (m *AppMiddleware) getOrCreateIdempotency(ctx context.Context, key, method, path string, body []byte) (*models.Idempotency, error) {
	idm := models.NewIdempotency(key, models.IdempotencyStatusProcessPending, method, path, body)

	stored, err := m.cacheRepo.Get(ctx, idm.CacheKey)
	if errors.Is(err, common.ErrDataNotFound) {
		if err := m.createLock(ctx, idm); err != nil {
			return nil, err
		}
		return idm, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency data: %w", err)
	}

	var cached models.Idempotency
	if err := json.Unmarshal([]byte(stored), &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal idempotency data: %w", err)
	}

	if cached.Fingerprint != idm.Fingerprint {
		return nil, common.ErrInvalidFingerprint
	}

	if !cached.IsFinished() {
		return nil, common.ErrRequestBeingProcessed
	}

	return &cached, nil
}

func (m *AppMiddleware) saveResponseToCache(ctx context.Context, idm *models.Idempotency) error {
	b, err := json.Marshal(idm)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency data: %w", err)
	}

	if err := m.cacheRepo.Set(ctx, idm.CacheKey, string(b), m.conf.App.IdempotencyTTL); err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	return nil
}

func (m *AppMiddleware) createLock(ctx context.Context, idm *models.Idempotency) error {
	b, err := json.Marshal(idm)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency data: %w", err)
	}

	set, err := m.cacheRepo.SetIfNotExists(ctx, idm.CacheKey, string(b), m.conf.App.IdempotencyTTL)
	if err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	// another request with the same key won the race
	if !set {
		return common.ErrRequestBeingProcessed
	}

	return nil
}

func (m *AppMiddleware) releaseLock(ctx context.Context, idm *models.Idempotency) error {
	if err := m.cacheRepo.Del(ctx, idm.CacheKey); err != nil {
		return fmt.Errorf("failed to release idempotency data: %w", err)
	}
	return nil
}
