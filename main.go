package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/cppla/blog/config"
	"github.com/cppla/blog/routes"
	"github.com/cppla/blog/store"
	"github.com/cppla/blog/utils"
	"github.com/cppla/blog/views"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer utils.Logger.Sync()

	posts, db, err := store.Open(cfg)
	if err != nil {
		utils.Sugar.Fatalf("open post store: %v", err)
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		utils.Sugar.Fatalf("load templates: %v", err)
	}

	deps := routes.Dependencies{Posts: posts, Views: renderer, DB: db}
	if cfg.StaticDir != "" {
		deps.Static = http.Dir(cfg.StaticDir)
	}
	r := routes.SetupRouter(cfg, deps)

	utils.Sugar.Infof("Starting server on port %s (graceful), store=%s", cfg.AppPort, cfg.StoreDriver)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}

// newRenderer loads templates from TemplatesDir when set, re-parsing them on
// every request in debug mode, and from the bundled tree otherwise.
func newRenderer(cfg config.AppConfig) (*views.Renderer, error) {
	site := views.Site{
		Name:       cfg.SiteName,
		AuthorName: cfg.AuthorName,
		GroupName:  cfg.GroupName,
	}
	if cfg.TemplatesDir == "" {
		return views.New(views.Templates(), site)
	}
	var opts []views.Option
	if strings.EqualFold(cfg.GinMode, "debug") {
		opts = append(opts, views.WithReload())
	}
	return views.New(os.DirFS(cfg.TemplatesDir), site, opts...)
}
