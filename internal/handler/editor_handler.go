package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remixhub/internal/service"
)

type trendingRequest struct {
	Topic string `json:"topic"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type contentRequest struct {
	Content string `json:"content"`
}

type articleDraft struct {
	Content string
	OK      bool
}

// SuggestTitles godoc
// @Summary      热点标题推荐
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        request body trendingRequest false "主题，留空使用默认主题"
// @Success      200 {object} map[string]interface{}
// @Failure      502 {object} map[string]string
// @Router       /api/editor/trending [post]
func (a *API) SuggestTitles(c *gin.Context) {
	var payload trendingRequest
	if !bindOptionalJSON(c, &payload, "请求体格式错误") {
		return
	}

	titles, ok := runTracked(a, c, service.SiteTrending, func(ctx context.Context) ([]service.TrendingTitle, error) {
		return a.editor.SuggestTitles(ctx, payload.Topic)
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"titles": titles})
}

// DraftArticle godoc
// @Summary      AI 撰写正文
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        request body titleRequest true "标题"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/editor/article [post]
func (a *API) DraftArticle(c *gin.Context) {
	var payload titleRequest
	if !bindJSON(c, &payload, "请填写标题") {
		return
	}

	draft, ok := runTracked(a, c, service.SiteArticle, func(ctx context.Context) (articleDraft, error) {
		content, found, err := a.editor.DraftArticle(ctx, payload.Title)
		return articleDraft{Content: content, OK: found}, err
	})
	if !ok {
		return
	}
	if !draft.OK {
		c.JSON(http.StatusOK, gin.H{"content": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": draft.Content})
}

// ExtractMetadata godoc
// @Summary      提取摘要与标签
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        request body contentRequest true "正文"
// @Success      200 {object} service.Metadata
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/editor/metadata [post]
func (a *API) ExtractMetadata(c *gin.Context) {
	var payload contentRequest
	if !bindJSON(c, &payload, "请填写正文") {
		return
	}

	metadata, ok := runTracked(a, c, service.SiteMetadata, func(ctx context.Context) (service.Metadata, error) {
		return a.editor.ExtractMetadata(ctx, payload.Content)
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, metadata)
}

// GenerateCover godoc
// @Summary      AI 生成封面
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        request body titleRequest true "标题"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/editor/cover [post]
func (a *API) GenerateCover(c *gin.Context) {
	var payload titleRequest
	if !bindJSON(c, &payload, "请先填写标题") {
		return
	}

	cover, ok := runTracked(a, c, service.SiteCover, func(ctx context.Context) (*service.CoverImage, error) {
		return a.editor.GenerateCover(ctx, payload.Title)
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": cover})
}
