package models

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

const (
	IdempotencyStatusProcessFinished = "finished"
	IdempotencyStatusProcessPending  = "pending"
)

// Idempotency is the cached outcome of a POST sent with X-Idempotency-Key.
type Idempotency struct {
	CacheKey string `json:"cacheKey"`

	StatusProcess string `json:"status"`

	// sha1 of method, path and body; a key reused for another request is rejected
	Fingerprint     string            `json:"fingerprint"`
	HTTPStatusCode  int               `json:"httpStatusCode"`
	ResponseBody    string            `json:"responseBody"`
	ResponseHeaders map[string]string `json:"responseHeaders"`
}

func NewIdempotency(key, status string, method, path string, requestBody []byte) *Idempotency {
	h := sha1.New()
	h.Write([]byte(method))
	h.Write([]byte(path))
	h.Write(requestBody)

	return &Idempotency{
		CacheKey:      fmt.Sprintf("catalog:idempotency:%s", key),
		StatusProcess: status,
		Fingerprint:   hex.EncodeToString(h.Sum(nil)),
	}
}

func (i *Idempotency) IsFinished() bool {
	return i.StatusProcess == IdempotencyStatusProcessFinished
}

func (i *Idempotency) SetResponse(httpStatusCode int, responseHeaders map[string]string, responseBody string) {
	i.HTTPStatusCode = httpStatusCode
	i.ResponseHeaders = responseHeaders
	i.ResponseBody = responseBody
	i.StatusProcess = IdempotencyStatusProcessFinished
}
