package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/remixhub/internal/config"
	"github.com/remixhub/internal/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const (
	serviceName = "remixhub"
	sessionName = "remixhub_session"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig, api *handler.API, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(otelgin.Middleware(serviceName))
	r.Use(recoveryMiddleware(log))
	r.Use(accessLogMiddleware(log))

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language"},
			ExposeHeaders:    []string{"Content-Length", "Content-Language"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 配置会话中间件
	secret := cfg.SessionSecret
	if secret == "" {
		secret = "remixhub-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(api.LocaleMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/screen", api.GetScreen)
		apiGroup.POST("/navigate", api.Navigate)
		apiGroup.GET("/requests", api.ListRequests)

		apiGroup.GET("/home", api.GetHome)
		apiGroup.GET("/discovery", api.GetDiscovery)

		apiGroup.GET("/records", api.ListRecords)
		apiGroup.POST("/records", api.CreateRecord)
		apiGroup.GET("/records/:id", api.GetRecord)
		apiGroup.PUT("/records/:id", api.UpdateRecord)
		apiGroup.DELETE("/records/:id", api.DeleteRecord)

		apiGroup.POST("/records/:id/summary", api.SummarizeRecord)
		apiGroup.POST("/records/:id/card-remix", api.RemixCard)
		apiGroup.POST("/records/:id/remixes", api.PublishRemix)
		apiGroup.POST("/records/:id/remixes/prompt", api.AnalyzeRemixPrompt)
		apiGroup.POST("/records/:id/remixes/:remixId/vote", api.VoteRemix)
		apiGroup.POST("/remixes/preview", api.GenerateRemixPreview)

		editor := apiGroup.Group("/editor")
		{
			editor.POST("/trending", api.SuggestTitles)
			editor.POST("/article", api.DraftArticle)
			editor.POST("/metadata", api.ExtractMetadata)
			editor.POST("/cover", api.GenerateCover)
		}

		admin := apiGroup.Group("/admin")
		{
			admin.GET("/dashboard", api.GetDashboard)
			admin.GET("/models", api.ListModels)
			admin.PUT("/models/:id", api.UpdateModel)
			admin.POST("/models/:id/toggle", api.ToggleModel)
			admin.POST("/models/:id/test", api.TestModel)
		}
	}

	return r
}
