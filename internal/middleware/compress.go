package middleware

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// AcceptsBrotli reports whether the request advertises br in Accept-Encoding
func AcceptsBrotli(c *gin.Context) bool {
	for _, enc := range strings.Split(c.GetHeader("Accept-Encoding"), ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if !strings.EqualFold(strings.TrimSpace(name), "br") {
			continue
		}
		q, ok := strings.CutPrefix(strings.TrimSpace(params), "q=")
		if !ok {
			return true
		}
		weight, err := strconv.ParseFloat(q, 64)
		return err == nil && weight > 0
	}
	return false
}

// Compressible reports whether body is textual and worth compressing
func Compressible(body []byte) bool {
	for m := mimetype.Detect(body); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// Brotli compresses body at the default level
func Brotli(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(body); err != nil {
		return nil, fmt.Errorf("brotli write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("brotli close: %w", err)
	}
	return buf.Bytes(), nil
}

// Write sends body with the given status, brotli-encoded when enabled, the
// client accepts it and the payload is text.
func Write(c *gin.Context, status int, contentType string, body []byte, compress bool) {
	c.Header("Vary", "Accept-Encoding")
	if compress && AcceptsBrotli(c) && Compressible(body) {
		encoded, err := Brotli(body)
		if err == nil {
			c.Header("Content-Encoding", "br")
			c.Data(status, contentType, encoded)
			return
		}
		_ = c.Error(err)
	}
	c.Data(status, contentType, body)
}
