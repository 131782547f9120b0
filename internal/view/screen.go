package view

import "fmt"

// Screen 是可渲染画面的封闭集合，只有本包内的类型可以实现。
type Screen interface {
	Name() Name
	screen()
}

type (
	HomeScreen           struct{}
	DiscoveryScreen      struct{}
	AdminDashboardScreen struct{}
	AdminArticlesScreen  struct{}
	AdminEditorScreen    struct{}
	AdminModelsScreen    struct{}
)

// DetailScreen 展示单个项目。
type DetailScreen struct {
	RecordID string
}

func (HomeScreen) Name() Name           { return Home }
func (DiscoveryScreen) Name() Name      { return Discovery }
func (DetailScreen) Name() Name         { return Detail }
func (AdminDashboardScreen) Name() Name { return AdminDashboard }
func (AdminArticlesScreen) Name() Name  { return AdminArticles }
func (AdminEditorScreen) Name() Name    { return AdminEditor }
func (AdminModelsScreen) Name() Name    { return AdminModels }

func (HomeScreen) screen()           {}
func (DiscoveryScreen) screen()      {}
func (DetailScreen) screen()         {}
func (AdminDashboardScreen) screen() {}
func (AdminArticlesScreen) screen()  {}
func (AdminEditorScreen) screen()    {}
func (AdminModelsScreen) screen()    {}

// Renderer 为每种画面提供一个渲染方法。
// 新增画面类型时，所有 Renderer 实现都必须补上对应方法才能通过编译。
type Renderer[T any] interface {
	Home(HomeScreen) T
	Discovery(DiscoveryScreen) T
	Detail(DetailScreen) T
	AdminDashboard(AdminDashboardScreen) T
	AdminArticles(AdminArticlesScreen) T
	AdminEditor(AdminEditorScreen) T
	AdminModels(AdminModelsScreen) T
}

// Dispatch 将画面交给对应的渲染方法。
func Dispatch[T any](screen Screen, r Renderer[T]) T {
	switch s := screen.(type) {
	case HomeScreen:
		return r.Home(s)
	case DiscoveryScreen:
		return r.Discovery(s)
	case DetailScreen:
		return r.Detail(s)
	case AdminDashboardScreen:
		return r.AdminDashboard(s)
	case AdminArticlesScreen:
		return r.AdminArticles(s)
	case AdminEditorScreen:
		return r.AdminEditor(s)
	case AdminModelsScreen:
		return r.AdminModels(s)
	default:
		// Screen 的实现都在本包内，只有 nil 会走到这里
		panic(fmt.Sprintf("view: cannot dispatch %T", screen))
	}
}
