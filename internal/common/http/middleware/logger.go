package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"
)

// maxLoggedBody caps request and response bodies in the access log.
const maxLoggedBody = 4 << 10

type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	err := http.NewResponseController(w.ResponseWriter).Flush()
	if err != nil && errors.Is(err, http.ErrNotSupported) {
		panic(errors.New("response writer flushing is not supported"))
	}
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *bodyDumpResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-secret-key":  {},
}

var excludedLogs = []string{
	"/api/health",
	"/metrics",
}

// readRequestBody drains the body for logging and puts it back for the handler.
func readRequestBody(c echo.Context) []byte {
	if c.Request().Body == nil {
		return nil
	}
	body, _ := io.ReadAll(c.Request().Body)
	c.Request().Body = io.NopCloser(bytes.NewReader(body))
	return body
}

func maskedHeaders(h http.Header) string {
	headers := make(map[string][]string, len(h))
	for k, vals := range h {
		lower := strings.ToLower(k)
		if _, ok := sensitiveHeaders[lower]; ok || strings.Contains(lower, "secret") {
			headers[k] = []string{"*****"}
			continue
		}
		headers[k] = vals
	}

	b, _ := json.Marshal(headers)
	return string(b)
}

func dumpResponseBody(c echo.Context) *bytes.Buffer {
	buf := new(bytes.Buffer)
	c.Response().Writer = &bodyDumpResponseWriter{
		Writer:         io.MultiWriter(c.Response().Writer, buf),
		ResponseWriter: c.Response().Writer,
	}
	return buf
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}

// Logger writes one access log line per request, the level follows the status.
func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(excludedLogs, c.Path()) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			res := c.Response()
			reqBody := readRequestBody(c)
			resBody := dumpResponseBody(c)

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			ctx := c.Request().Context()

			fields := []xlog.Field{
				xlog.String("method", req.Method),
				xlog.String("url_path", req.URL.String()),
				xlog.String("route", c.Path()),
				xlog.String("request_body", truncate(reqBody)),
				xlog.String("request_header", maskedHeaders(req.Header)),
				xlog.Int("status", res.Status),
				xlog.String("response", truncate(resBody.Bytes())),
				xlog.Duration("latency", latency),
				xlog.String("idempotency_key", req.Header.Get(headerIdempotencyKey)),
			}

			message := fmt.Sprintf("%v %v %v %v", res.Status, req.Method, req.URL.String(), latency)

			switch {
			case res.Status >= http.StatusInternalServerError:
				xlog.Error(ctx, message, fields...)
			case res.Status >= http.StatusMultipleChoices:
				xlog.Warn(ctx, message, fields...)
			default:
				xlog.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}
