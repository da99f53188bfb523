package view

import (
	"context"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

// Renderer produces the payload of one top-level section.
type Renderer func(ctx context.Context) (any, error)

// Router maps a view tag to exactly one section renderer. There is no
// nesting and no history; an unregistered tag falls back to the
// dashboard renderer.
type Router struct {
	renderers map[model.View]Renderer
}

func NewRouter() *Router {
	return &Router{renderers: make(map[model.View]Renderer)}
}

func (r *Router) Register(v model.View, fn Renderer) {
	r.renderers[v] = fn
}

// Resolve selects the renderer for tag. Unknown tags resolve to the
// dashboard; the returned view reports what was actually selected.
func (r *Router) Resolve(tag string) (model.View, Renderer) {
	v := model.ParseView(tag)
	if fn, ok := r.renderers[v]; ok {
		return v, fn
	}
	return model.ViewDashboard, r.renderers[model.ViewDashboard]
}

// Section is one sidebar entry.
type Section struct {
	View   model.View `json:"view"`
	Title  string     `json:"title"`
	Active bool       `json:"active"`
}

// Sections lists the sidebar entries with the active tag marked.
func Sections(active model.View) []Section {
	views := model.AllViews()
	out := make([]Section, 0, len(views))
	for _, v := range views {
		out = append(out, Section{
			View:   v,
			Title:  v.Title(),
			Active: v == active,
		})
	}
	return out
}
