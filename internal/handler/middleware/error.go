package middleware

import (
	"log/slog"
	"net/http"

	"shuttlesync/internal/handler/httperr"
	"shuttlesync/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const loggedStackLines = 8

// ErrorHandler writes the last public error if the handler wrote nothing and logs
// the cause behind every 5xx response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			resp, ok := ginErr.Meta.(httperr.Response)
			if !ginErr.IsType(gin.ErrorTypePublic) || !ok {
				continue
			}
			if resp.Status >= http.StatusInternalServerError {
				slog.Error("request failed",
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
					"status", resp.Status,
					"error", ginErr.Err.Error(),
					"stack", errs.ExtractStackLines(ginErr.Err, loggedStackLines))
			}
			if !c.Writer.Written() {
				c.JSON(resp.Status, resp)
			}
			return
		}

		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"
			c.JSON(resp.Status, resp)
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", rec)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
