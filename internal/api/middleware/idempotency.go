package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"themepark/ticketing/internal/constant"
)

type idempotencyCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type IdempotencyMiddleware struct {
	cache  idempotencyCache
	ttl    time.Duration
	logger *logrus.Logger
}

type storedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// bodyWriter keeps a copy of everything the handler writes.
type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func NewIdempotencyMiddleware(cache idempotencyCache, ttl time.Duration, logger *logrus.Logger) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Handle replays the stored response of a request that carried the same
// Idempotency-Key. Requests without the header pass through, and so does
// everything while redis is unreachable. Server errors are not stored.
func (i *IdempotencyMiddleware) Handle(c *gin.Context) {
	key := c.GetHeader(constant.IdempotencyHeader)
	if key == "" {
		c.Next()
		return
	}
	redisKey := constant.IdempotencyKeyPrefix + c.Request.Method + ":" + c.FullPath() + ":" + key

	raw, err := i.cache.Get(c, redisKey).Bytes()
	switch {
	case err == nil:
		var stored storedResponse
		if err := json.Unmarshal(raw, &stored); err != nil {
			i.logger.WithError(err).Warnf("idempotency: dropping unreadable entry %s", redisKey)
			break
		}
		c.Header(constant.ReplayedHeader, "true")
		c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
		c.Abort()
		return
	case errors.Is(err, redis.Nil):
	default:
		i.logger.WithError(err).Warn("idempotency: redis lookup failed, serving without replay")
		c.Next()
		return
	}

	writer := &bodyWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
	c.Writer = writer
	c.Next()

	status := writer.Status()
	if status >= http.StatusInternalServerError {
		return
	}

	payload, err := json.Marshal(storedResponse{Status: status, Body: writer.body.Bytes()})
	if err != nil {
		i.logger.WithError(err).Warn("idempotency: failed to encode response")
		return
	}
	if err := i.cache.Set(context.WithoutCancel(c.Request.Context()), redisKey, string(payload), i.ttl).Err(); err != nil {
		i.logger.WithError(err).Warnf("idempotency: failed to store %s", redisKey)
	}
}
