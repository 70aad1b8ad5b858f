package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blog/views"
)

// Page titles.
const (
	TitleHome  = "Главная"
	TitleAbout = "Об авторе"
	TitlePosts = "Посты"
)

// PageController serves the static pages of the site.
type PageController struct {
	views *views.Renderer
}

func NewPageController(v *views.Renderer) *PageController {
	return &PageController{views: v}
}

// Index renders the home page.
func (p *PageController) Index(ctx *gin.Context) {
	p.views.HTML(ctx, http.StatusOK, "index.html", gin.H{"title": TitleHome})
}

// About renders the page about the author.
func (p *PageController) About(ctx *gin.Context) {
	p.views.HTML(ctx, http.StatusOK, "about.html", gin.H{"title": TitleAbout})
}
