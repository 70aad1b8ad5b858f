package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blog/store"
	"github.com/cppla/blog/utils"
	"github.com/cppla/blog/views"
)

// PostController renders the posts list and single posts.
type PostController struct {
	posts store.PostStore
	views *views.Renderer
}

// NewPostController creates a new PostController instance.
func NewPostController(posts store.PostStore, v *views.Renderer) *PostController {
	return &PostController{posts: posts, views: v}
}

// ListPosts renders every post in store order.
func (p *PostController) ListPosts(ctx *gin.Context) {
	posts, err := p.posts.Posts(ctx.Request.Context())
	if err != nil {
		utils.ServerError(ctx, err)
		return
	}
	p.views.HTML(ctx, http.StatusOK, "posts.html", gin.H{
		"title": TitlePosts,
		"posts": posts,
	})
}

// GetPost renders the post at the :index path parameter.
func (p *PostController) GetPost(ctx *gin.Context) {
	index, ok := parseIndex(ctx.Param("index"))
	if !ok {
		utils.NotFound(ctx)
		return
	}

	post, err := store.Get(ctx.Request.Context(), p.posts, index)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			utils.NotFound(ctx)
			return
		}
		utils.ServerError(ctx, err)
		return
	}

	p.views.HTML(ctx, http.StatusOK, "post.html", gin.H{
		"title": post.Title,
		"post":  post,
	})
}

// parseIndex accepts only the canonical decimal form of a non-negative int:
// no sign, no leading zeros, no spaces.
func parseIndex(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
