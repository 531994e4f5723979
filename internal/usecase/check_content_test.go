package usecase

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrgriffin/site/internal/content"
	"github.com/jrgriffin/site/internal/view"
)

var publicWithHeadshot = fstest.MapFS{
	"headshot.png": {Data: []byte("png")},
}

func check(t *testing.T, c content.Content, public fstest.MapFS) CheckOutput {
	t.Helper()
	svc := NewCheckService(view.NewRenderer(view.Options{}))
	in := CheckInput{Content: c}
	if public != nil {
		in.Public = public
	}
	out := svc.Check(context.Background(), in)
	require.NoError(t, out.Error)
	return out
}

func findingFor(out CheckOutput, field string) (Finding, bool) {
	for _, f := range out.Findings {
		if f.Field == field {
			return f, true
		}
	}
	return Finding{}, false
}

func TestCheckDefaultContentIsClean(t *testing.T) {
	out := check(t, content.Default(), publicWithHeadshot)
	assert.Empty(t, out.Findings)
	assert.False(t, out.HasErrors())
}

func TestCheckFindings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *content.Content)
		field    string
		severity Severity
	}{
		{
			name:     "nav anchor without section",
			mutate:   func(c *content.Content) { c.Nav[0].Href = "#missing" },
			field:    "nav[0].href",
			severity: SeverityError,
		},
		{
			name:     "nav relative link",
			mutate:   func(c *content.Content) { c.Nav[1].Href = "about.html" },
			field:    "nav[1].href",
			severity: SeverityError,
		},
		{
			name:     "nav empty label",
			mutate:   func(c *content.Content) { c.Nav[2].Label = " " },
			field:    "nav[2].label",
			severity: SeverityWarning,
		},
		{
			name:     "hero cta not mailto",
			mutate:   func(c *content.Content) { c.Hero.CTAHref = "https://example.com" },
			field:    "hero.cta_href",
			severity: SeverityError,
		},
		{
			name:     "hero cta bad address",
			mutate:   func(c *content.Content) { c.Hero.CTAHref = "mailto:not-an-address" },
			field:    "hero.cta_href",
			severity: SeverityError,
		},
		{
			name:     "two tiles",
			mutate:   func(c *content.Content) { c.About.Tiles = c.About.Tiles[:2] },
			field:    "about.tiles",
			severity: SeverityWarning,
		},
		{
			name:     "tile without body",
			mutate:   func(c *content.Content) { c.About.Tiles[1].Body = "" },
			field:    "about.tiles[1].body",
			severity: SeverityError,
		},
		{
			name:     "focus row without value",
			mutate:   func(c *content.Content) { c.Focus.Items[0].Value = "" },
			field:    "focus.items[0].value",
			severity: SeverityError,
		},
		{
			name:     "empty experience list",
			mutate:   func(c *content.Content) { c.Experience.Bullets = nil },
			field:    "experience.bullets",
			severity: SeverityWarning,
		},
		{
			name:     "blank checklist item",
			mutate:   func(c *content.Content) { c.DealChecklist.Items[0] = "" },
			field:    "deal_checklist.items[0]",
			severity: SeverityWarning,
		},
		{
			name:     "display-name email",
			mutate:   func(c *content.Content) { c.Contact.Email = "Jeremy <jeremy@jrgriffin.co>" },
			field:    "contact.email",
			severity: SeverityError,
		},
		{
			name:     "linkedin mailto",
			mutate:   func(c *content.Content) { c.Contact.LinkedIn = "mailto:jeremy@jrgriffin.co" },
			field:    "contact.linkedin",
			severity: SeverityError,
		},
		{
			name:     "missing image size",
			mutate:   func(c *content.Content) { c.Contact.Image.Width = 0 },
			field:    "contact.image",
			severity: SeverityWarning,
		},
		{
			name:     "missing asset",
			mutate:   func(c *content.Content) { c.Contact.Image.Src = "/nope.png" },
			field:    "contact.image.src",
			severity: SeverityError,
		},
		{
			name:     "traversal asset",
			mutate:   func(c *content.Content) { c.Contact.Image.Src = "/../secret.png" },
			field:    "contact.image.src",
			severity: SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := content.Default()
			tt.mutate(&c)

			out := check(t, c, publicWithHeadshot)
			f, ok := findingFor(out, tt.field)
			require.True(t, ok, "no finding for %s in %v", tt.field, out.Findings)
			assert.Equal(t, tt.severity, f.Severity)
			assert.Equal(t, tt.severity == SeverityError, out.HasErrors())
		})
	}
}

func TestCheckExtraNavToExistingAnchor(t *testing.T) {
	c := content.Default()
	c.Nav = append(c.Nav, content.NavEntry{Label: "Top", Href: "#top"})

	out := check(t, c, publicWithHeadshot)
	assert.Empty(t, out.Findings)
}

func TestCheckExternalImageSkipsAssetLookup(t *testing.T) {
	c := content.Default()
	c.Contact.Image.Src = "https://cdn.example.com/headshot.png"

	out := check(t, c, nil)
	assert.Empty(t, out.Findings)
}

func TestCheckWithoutPublicWarns(t *testing.T) {
	out := check(t, content.Default(), nil)

	f, ok := findingFor(out, "contact.image.src")
	require.True(t, ok)
	assert.Equal(t, SeverityWarning, f.Severity)
	assert.False(t, out.HasErrors())
}

func TestCheckRenderFailure(t *testing.T) {
	svc := NewCheckService(&stubRenderer{err: errRender})
	out := svc.Check(context.Background(), CheckInput{Content: content.Default()})
	require.ErrorIs(t, out.Error, errRender)
}
