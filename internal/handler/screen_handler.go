package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remixhub/internal/store"
	"github.com/remixhub/internal/view"
)

// ScreenPayload 是某个画面渲染所需的数据。
type ScreenPayload struct {
	View   view.Name `json:"view"`
	Layout string    `json:"layout"`
	Data   any       `json:"data,omitempty"`
	Error  string    `json:"error,omitempty"`
}

const (
	layoutPublic = "public"
	layoutAdmin  = "admin"
)

func layoutFor(name view.Name) string {
	if name.IsAdmin() {
		return layoutAdmin
	}
	return layoutPublic
}

type navigateRequest struct {
	View     string `json:"view" binding:"required"`
	RecordID string `json:"recordId"`
}

// screenRenderer 为每种画面组装数据。
type screenRenderer struct {
	api      *API
	language string
}

func (r screenRenderer) Home(s view.HomeScreen) ScreenPayload {
	return ScreenPayload{View: s.Name(), Data: r.api.feed.Home(r.language)}
}

func (r screenRenderer) Discovery(s view.DiscoveryScreen) ScreenPayload {
	return ScreenPayload{View: s.Name(), Data: r.api.feed.Discover("", "")}
}

func (r screenRenderer) Detail(s view.DetailScreen) ScreenPayload {
	record, ok := r.api.records.FindByID(s.RecordID)
	if !ok {
		// 渲染前记录已不存在时按首页处理
		return r.Home(view.HomeScreen{})
	}
	detail, err := newRecordDetail(record)
	if err != nil {
		return ScreenPayload{View: s.Name(), Data: record, Error: err.Error()}
	}
	return ScreenPayload{View: s.Name(), Data: detail}
}

func (r screenRenderer) AdminDashboard(s view.AdminDashboardScreen) ScreenPayload {
	stats, err := r.api.feed.Dashboard()
	if err != nil {
		return ScreenPayload{View: s.Name(), Error: err.Error()}
	}
	return ScreenPayload{View: s.Name(), Data: stats}
}

func (r screenRenderer) AdminArticles(s view.AdminArticlesScreen) ScreenPayload {
	return ScreenPayload{View: s.Name(), Data: gin.H{"records": r.api.records.List()}}
}

func (r screenRenderer) AdminEditor(s view.AdminEditorScreen) ScreenPayload {
	return ScreenPayload{View: s.Name(), Data: gin.H{"sections": store.Sections}}
}

func (r screenRenderer) AdminModels(s view.AdminModelsScreen) ScreenPayload {
	models, err := r.api.models.List("")
	if err != nil {
		return ScreenPayload{View: s.Name(), Error: err.Error()}
	}
	return ScreenPayload{View: s.Name(), Data: gin.H{"models": models}}
}

func (a *API) renderState(c *gin.Context, state view.State) ScreenPayload {
	screen := state.Resolve(func(id string) bool {
		_, ok := a.records.FindByID(id)
		return ok
	})
	payload := view.Dispatch[ScreenPayload](screen, screenRenderer{api: a, language: a.requestLanguage(c)})
	payload.Layout = layoutFor(payload.View)
	return payload
}

// GetScreen godoc
// @Summary      当前画面
// @Description  根据会话中的导航状态返回应渲染的画面及其数据
// @Tags         navigation
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/screen [get]
func (a *API) GetScreen(c *gin.Context) {
	state := navState(c)
	c.JSON(http.StatusOK, gin.H{
		"state":  state,
		"screen": a.renderState(c, state),
	})
}

// Navigate godoc
// @Summary      切换画面
// @Description  recordId 非空时成为新的选中项；详情页没有可用选中项时回退到首页
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        request body navigateRequest true "目标画面"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Router       /api/navigate [post]
func (a *API) Navigate(c *gin.Context) {
	var payload navigateRequest
	if !bindJSON(c, &payload, "请指定目标画面") {
		return
	}

	target, err := view.ParseName(payload.View)
	if err != nil {
		respondError(c, http.StatusBadRequest, "未知的画面")
		return
	}

	state := navState(c).Navigate(target, payload.RecordID)
	if err := saveNavState(c, state); err != nil {
		respondError(c, http.StatusInternalServerError, "保存导航状态失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":       state,
		"screen":      a.renderState(c, state),
		"scrollReset": true,
	})
}
