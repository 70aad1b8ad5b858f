package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/blog/config"
	"github.com/cppla/blog/controllers"
	"github.com/cppla/blog/middleware"
	"github.com/cppla/blog/store"
	"github.com/cppla/blog/utils"
	"github.com/cppla/blog/views"
)

// Dependencies are the collaborators the router hands to controllers.
type Dependencies struct {
	Posts store.PostStore
	Views *views.Renderer
	// Static is served under /static. Nil means the bundled assets.
	Static http.FileSystem
	// DB enables page view recording when set.
	DB *gorm.DB
}

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, deps Dependencies) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())

	// Request log goes to its own rolling file; fall back to the app logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg)
	if err != nil {
		gl = utils.Logger
	}
	r.Use(utils.Ginzap(gl, time.RFC3339, true))
	r.Use(utils.RecoveryWithZap(gl, true))

	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	if deps.DB != nil {
		r.Use(middleware.PageViewRecorder(deps.DB))
	}

	static := deps.Static
	if static == nil {
		static = http.FS(views.Static())
	}
	r.StaticFS("/static", utils.FilesOnly(static))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	pageController := controllers.NewPageController(deps.Views)
	postController := controllers.NewPostController(deps.Posts, deps.Views)

	r.GET("/", pageController.Index)
	r.GET("/about", pageController.About)
	r.GET("/posts", postController.ListPosts)
	r.GET("/posts/:index", postController.GetPost)

	r.NoRoute(utils.NotFound)

	return r
}
