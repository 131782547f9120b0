package handler

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/remixhub/internal/view"
)

const (
	visitorSessionKey = "visitor_id"
	navActiveKey      = "nav_active"
	navSelectedKey    = "nav_selected"
	visitorContextKey = "__visitor_id"
)

// visitorID 返回当前访客的匿名 id，首次访问时生成并写入会话。
func (a *API) visitorID(c *gin.Context) string {
	if cached, ok := c.Get(visitorContextKey); ok {
		if id, ok := cached.(string); ok {
			return id
		}
	}

	session := sessions.Default(c)
	id, _ := session.Get(visitorSessionKey).(string)
	if id == "" {
		id = uuid.NewString()
		session.Set(visitorSessionKey, id)
		if err := session.Save(); err != nil {
			c.Error(err)
		}
	}

	c.Set(visitorContextKey, id)
	return id
}

// navState 从会话中读取导航状态，缺失或无法识别时回到初始状态。
func navState(c *gin.Context) view.State {
	session := sessions.Default(c)
	state := view.Initial()

	if raw, ok := session.Get(navActiveKey).(string); ok {
		if name, err := view.ParseName(raw); err == nil {
			state.Active = name
		}
	}
	if selected, ok := session.Get(navSelectedKey).(string); ok {
		state.Selected = selected
	}
	return state
}

func saveNavState(c *gin.Context, state view.State) error {
	session := sessions.Default(c)
	session.Set(navActiveKey, string(state.Active))
	if state.Selected == "" {
		session.Delete(navSelectedKey)
	} else {
		session.Set(navSelectedKey, state.Selected)
	}
	return session.Save()
}
