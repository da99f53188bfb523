package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

func payloadRenderer(payload string) Renderer {
	return func(context.Context) (any, error) { return payload, nil }
}

func newTestRouter() *Router {
	r := NewRouter()
	for _, v := range model.AllViews() {
		r.Register(v, payloadRenderer(string(v)))
	}
	return r
}

func TestRouterResolve(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	type testCase struct {
		name     string
		tag      string
		wantView model.View
	}

	tests := []testCase{
		{name: "known tag", tag: "repairs", wantView: model.ViewRepairs},
		{name: "another known tag", tag: "inventory", wantView: model.ViewInventory},
		{name: "unknown tag falls back to dashboard", tag: "settings", wantView: model.ViewDashboard},
		{name: "empty tag falls back to dashboard", tag: "", wantView: model.ViewDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, render := r.Resolve(tt.tag)
			require.NotNil(t, render)
			assert.Equal(t, tt.wantView, v)

			payload, err := render(context.Background())
			require.NoError(t, err)
			assert.Equal(t, string(tt.wantView), payload)
		})
	}
}

func TestRouterResolveUnregisteredView(t *testing.T) {
	t.Parallel()

	r := NewRouter()
	r.Register(model.ViewDashboard, payloadRenderer("dashboard"))

	// "billing" parses but has no renderer here; the dashboard covers it.
	v, render := r.Resolve("billing")
	require.NotNil(t, render)
	assert.Equal(t, model.ViewDashboard, v)
}

func TestSections(t *testing.T) {
	t.Parallel()

	got := Sections(model.ViewBilling)
	require.Len(t, got, len(model.AllViews()))

	assert.Equal(t, model.ViewDashboard, got[0].View)
	assert.Equal(t, "Dashboard", got[0].Title)

	active := 0
	for _, s := range got {
		if s.Active {
			active++
			assert.Equal(t, model.ViewBilling, s.View)
		}
	}
	assert.Equal(t, 1, active)
}
