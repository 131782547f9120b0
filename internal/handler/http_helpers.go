package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/remixhub/internal/service"
	"go.uber.org/zap"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// bindOptionalJSON 允许请求体为空，但格式错误的 JSON 仍返回 400。
func bindOptionalJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

var validationErrors = []error{
	service.ErrEmptyPrompt,
	service.ErrNoPreview,
	service.ErrInvalidVote,
	service.ErrMissingRequiredFields,
	service.ErrMissingTitle,
	service.ErrMissingContent,
	service.ErrInvalidSection,
	service.ErrInvalidRegion,
	service.ErrAIAPIKeyMissing,
}

// statusForError 将服务层错误映射为 HTTP 状态码，未识别的错误使用 fallback。
func statusForError(err error, fallback int) int {
	switch {
	case errors.Is(err, service.ErrRecordNotFound), errors.Is(err, service.ErrModelNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoActiveProvider):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrRequestInFlight):
		return http.StatusConflict
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return fallback
}

func (a *API) respondServiceError(c *gin.Context, err error, fallback int, message string) {
	status := statusForError(err, fallback)
	if status >= http.StatusInternalServerError {
		a.log.Error(message, zap.Error(err), zap.String("path", c.FullPath()))
	}
	switch status {
	case http.StatusBadRequest, http.StatusNotFound:
		respondError(c, status, err.Error())
	case http.StatusServiceUnavailable:
		respondError(c, status, "没有可用的模型平台，请在模型引擎配置中启用并填写 API Key")
	case http.StatusConflict:
		respondError(c, status, "请求处理中，请稍候")
	default:
		c.JSON(status, gin.H{"error": message, "detail": err.Error()})
	}
}

// runTracked 以访客为单位执行一次 AI 调用，并在请求跟踪器中记录其生命周期。
// 调用不随客户端断开而取消，挂起的平台请求会一直等待到平台返回。
func runTracked[T any](a *API, c *gin.Context, site string, call func(ctx context.Context) (T, error)) (T, bool) {
	var zero T

	done, err := a.requests.Begin(a.visitorID(c), site)
	if err != nil {
		a.respondServiceError(c, err, http.StatusConflict, "请求处理中")
		return zero, false
	}

	result, err := call(context.WithoutCancel(c.Request.Context()))
	done(err)
	if err != nil {
		a.respondServiceError(c, err, http.StatusBadGateway, "AI 服务调用失败")
		return zero, false
	}
	return result, true
}
