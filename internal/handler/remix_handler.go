package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remixhub/internal/service"
	"github.com/remixhub/internal/store"
)

type previewRequest struct {
	Prompt string `json:"prompt"`
}

type publishRemixRequest struct {
	Prompt   string `json:"prompt"`
	ImageURL string `json:"imageUrl"`
}

type voteRequest struct {
	Delta int `json:"delta"`
}

type cardRemixRequest struct {
	Style string `json:"style"`
}

// AnalyzeRemixPrompt godoc
// @Summary      生成重构提示词
// @Tags         remixes
// @Produce      json
// @Param        id path string true "项目 id"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/records/{id}/remixes/prompt [post]
func (a *API) AnalyzeRemixPrompt(c *gin.Context) {
	recordID := c.Param("id")
	prompt, ok := runTracked(a, c, service.SiteAnalyzePrompt, func(ctx context.Context) (string, error) {
		return a.remixes.AnalyzePrompt(ctx, recordID)
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompt": prompt})
}

// GenerateRemixPreview godoc
// @Summary      生成重构预览图
// @Tags         remixes
// @Accept       json
// @Produce      json
// @Param        request body previewRequest true "提示词"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/remixes/preview [post]
func (a *API) GenerateRemixPreview(c *gin.Context) {
	var payload previewRequest
	if !bindJSON(c, &payload, "请填写提示词") {
		return
	}

	cover, ok := runTracked(a, c, service.SiteGeneratePreview, func(ctx context.Context) (*service.CoverImage, error) {
		return a.remixes.GeneratePreview(ctx, payload.Prompt)
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": cover})
}

// PublishRemix godoc
// @Summary      发布重构作品
// @Tags         remixes
// @Accept       json
// @Produce      json
// @Param        id      path string              true "项目 id"
// @Param        request body publishRemixRequest true "提示词与预览图"
// @Success      201 {object} store.Record
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/records/{id}/remixes [post]
func (a *API) PublishRemix(c *gin.Context) {
	var payload publishRemixRequest
	if !bindJSON(c, &payload, "请先生成预览图") {
		return
	}

	record, err := a.remixes.Publish(c.Param("id"), payload.Prompt, payload.ImageURL)
	if err != nil {
		a.respondServiceError(c, err, http.StatusInternalServerError, "发布重构作品失败")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// VoteRemix godoc
// @Summary      为重构作品投票
// @Description  delta 只能是 1 或 -1，投票后列表按得分降序排列
// @Tags         remixes
// @Accept       json
// @Produce      json
// @Param        id      path string      true "项目 id"
// @Param        remixId path string      true "重构作品 id"
// @Param        request body voteRequest true "得分增量"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/records/{id}/remixes/{remixId}/vote [post]
func (a *API) VoteRemix(c *gin.Context) {
	var payload voteRequest
	if !bindJSON(c, &payload, "请提供投票增量") {
		return
	}

	record, err := a.remixes.Vote(c.Param("id"), c.Param("remixId"), payload.Delta)
	if err != nil {
		a.respondServiceError(c, err, http.StatusInternalServerError, "投票失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"remixes": remixesOrEmpty(record)})
}

// SummarizeRecord godoc
// @Summary      一键概括项目
// @Tags         remixes
// @Produce      json
// @Param        id path string true "项目 id"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/records/{id}/summary [post]
func (a *API) SummarizeRecord(c *gin.Context) {
	recordID := c.Param("id")
	summary, ok := runTracked(a, c, service.SiteSummarize, func(ctx context.Context) (string, error) {
		return a.remixes.Summarize(ctx, recordID)
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// RemixCard godoc
// @Summary      卡片快速重构
// @Description  为首页或发现页卡片生成一次性的封面，不写回项目
// @Tags         remixes
// @Accept       json
// @Produce      json
// @Param        id      path string           true  "项目 id"
// @Param        request body cardRemixRequest false "home 或 discovery"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/records/{id}/card-remix [post]
func (a *API) RemixCard(c *gin.Context) {
	var payload cardRemixRequest
	if !bindOptionalJSON(c, &payload, "请求体格式错误") {
		return
	}

	recordID := c.Param("id")
	style := service.ParseCardStyle(payload.Style)
	cover, ok := runTracked(a, c, service.SiteRemixCard, func(ctx context.Context) (*service.CoverImage, error) {
		return a.remixes.RemixCard(ctx, recordID, style)
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": cover})
}

func remixesOrEmpty(record store.Record) []store.RemixContribution {
	if record.Remixes == nil {
		return []store.RemixContribution{}
	}
	return record.Remixes
}
