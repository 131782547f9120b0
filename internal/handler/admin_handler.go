package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remixhub/internal/service"
)

type modelUpdateRequest struct {
	APIKey  *string `json:"apiKey"`
	BaseURL *string `json:"baseUrl"`
	Version *string `json:"version"`
}

// GetDashboard godoc
// @Summary      仪表盘统计
// @Tags         admin
// @Produce      json
// @Success      200 {object} service.DashboardStats
// @Router       /api/admin/dashboard [get]
func (a *API) GetDashboard(c *gin.Context) {
	stats, err := a.feed.Dashboard()
	if err != nil {
		a.respondServiceError(c, err, http.StatusInternalServerError, "获取统计数据失败")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListModels godoc
// @Summary      模型平台列表
// @Tags         admin
// @Produce      json
// @Param        region query string false "domestic 或 international"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Router       /api/admin/models [get]
func (a *API) ListModels(c *gin.Context) {
	models, err := a.models.List(c.Query("region"))
	if err != nil {
		a.respondServiceError(c, err, http.StatusInternalServerError, "获取模型配置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": models})
}

// ToggleModel godoc
// @Summary      启用或停用模型平台
// @Tags         admin
// @Produce      json
// @Param        id path int true "模型配置 id"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string
// @Router       /api/admin/models/{id}/toggle [post]
func (a *API) ToggleModel(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的模型 ID")
		return
	}

	model, err := a.models.Toggle(id)
	if err != nil {
		a.respondServiceError(c, err, http.StatusInternalServerError, "切换模型状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"model": model})
}

// UpdateModel godoc
// @Summary      更新模型平台配置
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path int                true "模型配置 id"
// @Param        request body modelUpdateRequest true "API Key、接口地址或模型版本"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/admin/models/{id} [put]
func (a *API) UpdateModel(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的模型 ID")
		return
	}

	var payload modelUpdateRequest
	if !bindJSON(c, &payload, "请填写模型配置") {
		return
	}

	model, err := a.models.Update(id, service.ModelConfigInput{
		APIKey:  payload.APIKey,
		BaseURL: payload.BaseURL,
		Version: payload.Version,
	})
	if err != nil {
		a.respondServiceError(c, err, http.StatusInternalServerError, "保存模型配置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"model": model})
}

// TestModel godoc
// @Summary      测试模型平台连通性
// @Tags         admin
// @Produce      json
// @Param        id path int true "模型配置 id"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/admin/models/{id}/test [post]
func (a *API) TestModel(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的模型 ID")
		return
	}

	if err := a.models.TestConnection(c.Request.Context(), id); err != nil {
		a.respondServiceError(c, err, http.StatusBadGateway, "连接模型平台失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListRequests godoc
// @Summary      当前访客的请求状态
// @Tags         admin
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/requests [get]
func (a *API) ListRequests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"requests": a.requests.Snapshot(a.visitorID(c))})
}
