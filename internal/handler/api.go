package handler

import (
	"github.com/remixhub/internal/service"
	"github.com/remixhub/internal/store"
	"go.uber.org/zap"
)

// Dependencies 汇总处理器所需的服务。
type Dependencies struct {
	Records  *store.Store
	Feed     *service.FeedService
	Remixes  *service.RemixService
	Editor   *service.EditorService
	Models   *service.ModelConfigService
	Requests *service.RequestTracker
	Logger   *zap.Logger
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	records  *store.Store
	feed     *service.FeedService
	remixes  *service.RemixService
	editor   *service.EditorService
	models   *service.ModelConfigService
	requests *service.RequestTracker
	log      *zap.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(deps Dependencies) *API {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	requests := deps.Requests
	if requests == nil {
		requests = service.NewRequestTracker()
	}

	return &API{
		records:  deps.Records,
		feed:     deps.Feed,
		remixes:  deps.Remixes,
		editor:   deps.Editor,
		models:   deps.Models,
		requests: requests,
		log:      log,
	}
}
