package api

import (
	"context"
	"net/http"
	"time"

	"grocygo-backend/internal/api/handlers"
	"grocygo-backend/internal/api/handlers/health"
	"grocygo-backend/internal/api/middleware"
	"grocygo-backend/internal/core/analytics"
	"grocygo-backend/internal/core/catalog"
	"grocygo-backend/internal/core/inventory"
	"grocygo-backend/internal/core/mealplan"
	"grocygo-backend/internal/core/notification"
	"grocygo-backend/internal/core/recipe"
	"grocygo-backend/internal/core/shopping"
	"grocygo-backend/internal/core/suggest"
	"grocygo-backend/internal/infrastructure/config"
	"grocygo-backend/internal/infrastructure/store"
	"grocygo-backend/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (1MB)
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, st store.Store, engine *suggest.Engine, cat *catalog.Catalog) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "x-api-key"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 請求去重
	router.Use(middleware.Deduplication(cfg))

	// 速率限制
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
		}
	})

	// 初始化服務
	inventorySvc := inventory.NewService(st)
	recipeSvc := recipe.NewService(st)
	mealPlanSvc := mealplan.NewService(st)
	shoppingSvc := shopping.NewService(st, engine, inventorySvc, recipeSvc)
	notificationSvc := notification.NewService(st, cfg.Notify.Workers)
	analyticsSvc := analytics.NewService(st)

	// 初始化處理器
	healthHandler := health.NewHandler(cfg.App.Version, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err := st.Users(ctx)
		return err
	})
	inventoryHandler := handlers.NewInventoryHandler(inventorySvc, cat)
	recipeHandler := handlers.NewRecipeHandler(recipeSvc)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanSvc, inventorySvc)
	shoppingHandler := handlers.NewShoppingHandler(shoppingSvc)
	notificationHandler := handlers.NewNotificationHandler(notificationSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc)
	aiHandler := handlers.NewAIHandler(engine, inventorySvc)

	// 認證中間件
	auth := middleware.Auth(&cfg.Auth)

	api := router.Group("/api")
	{
		// 健康檢查路由
		api.GET("/health", healthHandler.HealthCheck)
		api.GET("/ready", healthHandler.ReadinessCheck)
		api.GET("/live", healthHandler.LivenessCheck)

		inventoryGroup := api.Group("/inventory")
		{
			// 自動補全不需要認證
			inventoryGroup.GET("/suggestions", inventoryHandler.Suggestions)

			authed := inventoryGroup.Group("", auth)
			authed.GET("", inventoryHandler.List)
			authed.POST("", inventoryHandler.Add)
			authed.PUT("/:id", inventoryHandler.Update)
			authed.DELETE("/:id", inventoryHandler.Delete)
			authed.POST("/use", inventoryHandler.Use)
		}

		recipesGroup := api.Group("/recipes", auth)
		{
			recipesGroup.GET("", recipeHandler.List)
			recipesGroup.POST("", recipeHandler.Add)
			recipesGroup.PUT("/:id", recipeHandler.Update)
			recipesGroup.DELETE("/:id", recipeHandler.Delete)
		}

		mealPlansGroup := api.Group("/meal-plans", auth)
		{
			mealPlansGroup.GET("", mealPlanHandler.List)
			mealPlansGroup.POST("", mealPlanHandler.Add)
			mealPlansGroup.PUT("/:id", mealPlanHandler.Update)
			mealPlansGroup.DELETE("/:id", mealPlanHandler.Delete)
			mealPlansGroup.POST("/use-ingredients", mealPlanHandler.UseIngredients)
		}

		shoppingGroup := api.Group("/shopping", auth)
		{
			shoppingGroup.GET("/suggestions", shoppingHandler.Suggestions)
			shoppingGroup.GET("", shoppingHandler.List)
			shoppingGroup.POST("", shoppingHandler.Add)
			shoppingGroup.PUT("/:id", shoppingHandler.Update)
			shoppingGroup.DELETE("/:id", shoppingHandler.Delete)
		}

		notificationsGroup := api.Group("/notifications", auth)
		{
			notificationsGroup.GET("", notificationHandler.List)
			notificationsGroup.POST("", notificationHandler.Add)
			notificationsGroup.PATCH("/:id/read", notificationHandler.MarkRead)
			notificationsGroup.DELETE("/:id", notificationHandler.Delete)
		}

		analyticsGroup := api.Group("/analytics", auth)
		{
			analyticsGroup.GET("", analyticsHandler.GetAll)
			analyticsGroup.GET("/category-stats", analyticsHandler.CategoryStats)
			analyticsGroup.GET("/category/:category/items", analyticsHandler.ItemsByCategory)
			analyticsGroup.GET("/inventory-usage", analyticsHandler.InventoryUsage)
			analyticsGroup.GET("/expiry-stats", analyticsHandler.ExpiryStats)
			analyticsGroup.GET("/shopping-trends", analyticsHandler.ShoppingTrends)
		}

		aiGroup := api.Group("/ai", auth)
		{
			aiGroup.POST("/recipe-suggestions", aiHandler.RecipeSuggestions)
			aiGroup.POST("/mealplan-suggestions", aiHandler.MealPlanSuggestions)
			aiGroup.POST("/shopping-suggestions", aiHandler.ShoppingSuggestions)
			aiGroup.GET("/suggested-recipes", aiHandler.SuggestedRecipes)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("store_driver", cfg.Store.Driver),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
