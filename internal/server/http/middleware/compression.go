package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body"

// DecompressRequest transparently inflates gzip encoded request bodies.
// Response compression is left to the gzip middleware further down the chain.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(strings.ToLower(c.GetHeader("Content-Encoding")), "gzip") || c.Request.Body == nil {
			c.Next()
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			_ = originalBody.Close()
			c.String(http.StatusBadRequest, msgInvalidBody)
			c.Abort()
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.Header.Del("Content-Length")
		c.Request.ContentLength = -1
		c.Next()
	}
}
