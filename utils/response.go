package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse defines the uniform structure for JSON responses.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success returns a standard success response.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, http.StatusOK, 0, "success", data)
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}

// NotFound answers with the plain text 404 page. No template is rendered.
func NotFound(ctx *gin.Context) {
	ctx.String(http.StatusNotFound, "404 page not found")
}

// ServerError logs err and answers with a plain text 500.
func ServerError(ctx *gin.Context, err error) {
	Sugar.Errorw("request failed",
		"path", ctx.Request.URL.Path,
		"request_id", ctx.GetString(RequestIDKey),
		"error", err,
	)
	ctx.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
