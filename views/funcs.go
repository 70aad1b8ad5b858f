package views

import (
	"html/template"
	"time"

	"github.com/cppla/blog/utils"
)

// DateLayout is how post dates appear on every page.
const DateLayout = "02.01.2006"

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(DateLayout)
	},
	"markup": utils.SafeHTML,
}
