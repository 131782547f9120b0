package view

import (
	"errors"
	"strings"
)

// ErrUnknownView 表示视图名称不在已知集合内。
var ErrUnknownView = errors.New("unknown view")

// Name 是应用内可切换的视图。
type Name string

const (
	Home           Name = "home"
	Discovery      Name = "discovery"
	Detail         Name = "detail"
	AdminDashboard Name = "admin-dashboard"
	AdminArticles  Name = "admin-articles"
	AdminEditor    Name = "admin-editor"
	AdminModels    Name = "admin-models"
)

// Names 列出全部视图。
var Names = []Name{Home, Discovery, Detail, AdminDashboard, AdminArticles, AdminEditor, AdminModels}

// ParseName 校验视图名称。
func ParseName(raw string) (Name, error) {
	candidate := Name(strings.ToLower(strings.TrimSpace(raw)))
	for _, name := range Names {
		if name == candidate {
			return name, nil
		}
	}
	return "", ErrUnknownView
}

// IsAdmin 表示视图是否属于后台。
func (n Name) IsAdmin() bool {
	return strings.HasPrefix(string(n), "admin-")
}

// State 是导航状态：当前视图与已选中的项目。
type State struct {
	Active   Name   `json:"active"`
	Selected string `json:"selected,omitempty"`
}

// Initial 返回初始状态：首页，未选中任何项目。
func Initial() State {
	return State{Active: Home}
}

// Navigate 切换到目标视图。id 非空时无论目标视图是什么都会成为新的选中项。
func (s State) Navigate(target Name, id string) State {
	if id = strings.TrimSpace(id); id != "" {
		s.Selected = id
	}
	s.Active = target
	return s
}

// Resolve 计算当前应渲染的画面。
// 详情页没有可用的选中项（未选中，或项目已不存在）时回退到首页。
func (s State) Resolve(exists func(id string) bool) Screen {
	switch s.Active {
	case Discovery:
		return DiscoveryScreen{}
	case Detail:
		if s.Selected == "" || exists == nil || !exists(s.Selected) {
			return HomeScreen{}
		}
		return DetailScreen{RecordID: s.Selected}
	case AdminDashboard:
		return AdminDashboardScreen{}
	case AdminArticles:
		return AdminArticlesScreen{}
	case AdminEditor:
		return AdminEditorScreen{}
	case AdminModels:
		return AdminModelsScreen{}
	default:
		return HomeScreen{}
	}
}
