package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remixhub/internal/service"
	"github.com/remixhub/internal/view"
	"go.uber.org/zap"
)

type editorPublishRequest struct {
	Title             string `json:"title"`
	Content           string `json:"content"`
	Category          string `json:"category"`
	Section           string `json:"section"`
	Author            string `json:"author"`
	AuthorAvatar      string `json:"authorAvatar"`
	CoverURL          string `json:"coverUrl"`
	FundingGoal       *int   `json:"fundingGoal"`
	CurrentFunding    *int   `json:"currentFunding"`
	FundingPercentage *int   `json:"fundingPercentage"`
	DaysLeft          *int   `json:"daysLeft"`
	Location          string `json:"location"`
}

func (r editorPublishRequest) toInput() service.EditorInput {
	return service.EditorInput{
		Title:             r.Title,
		Content:           r.Content,
		Category:          r.Category,
		Section:           r.Section,
		Author:            r.Author,
		AuthorAvatar:      r.AuthorAvatar,
		CoverURL:          r.CoverURL,
		FundingGoal:       r.FundingGoal,
		CurrentFunding:    r.CurrentFunding,
		FundingPercentage: r.FundingPercentage,
		DaysLeft:          r.DaysLeft,
		Location:          r.Location,
	}
}

// GetHome godoc
// @Summary      首页数据
// @Tags         records
// @Produce      json
// @Param        lang query string false "zh 或 en"
// @Success      200 {object} service.HomeFeed
// @Router       /api/home [get]
func (a *API) GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, a.feed.Home(a.requestLanguage(c)))
}

// GetDiscovery godoc
// @Summary      发现页检索
// @Tags         records
// @Produce      json
// @Param        q        query string false "标题关键字"
// @Param        category query string false "分类，全部或留空表示不过滤"
// @Success      200 {object} service.DiscoveryResult
// @Router       /api/discovery [get]
func (a *API) GetDiscovery(c *gin.Context) {
	c.JSON(http.StatusOK, a.feed.Discover(c.Query("q"), c.Query("category")))
}

// ListRecords godoc
// @Summary      项目列表
// @Tags         records
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/records [get]
func (a *API) ListRecords(c *gin.Context) {
	records := a.records.List()
	c.JSON(http.StatusOK, gin.H{"records": records, "total": len(records)})
}

// GetRecord godoc
// @Summary      项目详情
// @Tags         records
// @Produce      json
// @Param        id path string true "项目 id"
// @Success      200 {object} RecordDetail
// @Failure      404 {object} map[string]string
// @Router       /api/records/{id} [get]
func (a *API) GetRecord(c *gin.Context) {
	record, ok := a.records.FindByID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "项目不存在")
		return
	}

	detail, err := newRecordDetail(record)
	if err != nil {
		a.respondServiceError(c, err, http.StatusInternalServerError, "渲染项目内容失败")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateRecord godoc
// @Summary      发布项目
// @Description  标题与正文必填，其余字段使用编辑器默认值；新项目插入列表头部，会话导航切换到文章管理
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        request body editorPublishRequest true "项目信息"
// @Success      201 {object} store.Record
// @Failure      400 {object} map[string]string
// @Router       /api/records [post]
func (a *API) CreateRecord(c *gin.Context) {
	var payload editorPublishRequest
	if !bindJSON(c, &payload, "请填写完整的项目信息") {
		return
	}

	record, err := a.editor.Publish(payload.toInput())
	if err != nil {
		a.respondServiceError(c, err, http.StatusInternalServerError, "发布项目失败")
		return
	}

	// 发布后回到文章管理列表
	if err := saveNavState(c, navState(c).Navigate(view.AdminArticles, "")); err != nil {
		a.log.Warn("save nav state after publish failed", zap.Error(err))
	}
	c.JSON(http.StatusCreated, record)
}

// UpdateRecord godoc
// @Summary      编辑项目（未实现）
// @Tags         records
// @Param        id path string true "项目 id"
// @Failure      501 {object} map[string]string
// @Router       /api/records/{id} [put]
func (a *API) UpdateRecord(c *gin.Context) {
	respondError(c, http.StatusNotImplemented, "暂不支持编辑项目")
}

// DeleteRecord godoc
// @Summary      删除项目（未实现）
// @Tags         records
// @Param        id path string true "项目 id"
// @Failure      501 {object} map[string]string
// @Router       /api/records/{id} [delete]
func (a *API) DeleteRecord(c *gin.Context) {
	respondError(c, http.StatusNotImplemented, "暂不支持删除项目")
}
