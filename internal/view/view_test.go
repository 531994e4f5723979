package view

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jrgriffin/site/internal/content"
	"github.com/jrgriffin/site/internal/core"
	"github.com/jrgriffin/site/internal/inspect"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func render(t *testing.T, c content.Content) *html.Node {
	t.Helper()
	b, err := RenderBytes(c, Options{})
	require.NoError(t, err)
	doc, err := inspect.Parse(b)
	require.NoError(t, err)
	return doc
}

func section(t *testing.T, doc *html.Node, id string) *html.Node {
	t.Helper()
	n := inspect.ByID(doc, id)
	require.NotNil(t, n, "section #%s not rendered", id)
	return n
}

func TestNavAnchorsExistExactlyOnce(t *testing.T) {
	c := content.Default()
	counts := inspect.IDCounts(render(t, c))

	for _, n := range c.Nav {
		id, ok := core.AnchorID(n.Href)
		require.True(t, ok, "nav %q is not an in-page anchor", n.Label)
		assert.Equal(t, 1, counts[id], "anchor #%s", id)
	}
}

func TestNavLinksRenderInOrder(t *testing.T) {
	c := content.Default()
	doc := render(t, c)

	navs := inspect.All(doc, atom.Nav)
	require.Len(t, navs, 1)

	links := inspect.All(navs[0], atom.A)
	require.Len(t, links, len(c.Nav))
	for i, n := range c.Nav {
		assert.Equal(t, n.Href, inspect.Attr(links[i], "href"))
		assert.Equal(t, n.Label, inspect.Text(links[i]))
	}
}

func TestAboutRendersThreeCardsInOrder(t *testing.T) {
	c := content.Default()
	about := section(t, render(t, c), "about")

	grid := inspect.FirstWithClass(about, "grid")
	require.NotNil(t, grid)

	cards := inspect.Children(grid)
	require.Len(t, cards, 3)

	for i, card := range cards {
		parts := inspect.Children(card)
		require.Len(t, parts, 2)
		assert.Equal(t, c.About.Tiles[i].Title, inspect.Text(parts[0]))
		assert.Equal(t, c.About.Tiles[i].Body, inspect.Text(parts[1]))
	}
}

func TestBulletListPreservesOrderAndDuplicates(t *testing.T) {
	items := []string{"second", "first", "second", "third"}

	var buf bytes.Buffer
	require.NoError(t, BulletList(items).Render(&buf))

	doc, err := inspect.Parse(buf.Bytes())
	require.NoError(t, err)

	lis := inspect.All(doc, atom.Li)
	require.Len(t, lis, len(items))

	for i, li := range lis {
		spans := inspect.Children(li)
		require.Len(t, spans, 2, "item %d", i)
		assert.Equal(t, "true", inspect.Attr(spans[0], "aria-hidden"), "item %d marker", i)
		assert.Empty(t, inspect.Text(spans[0]))
		assert.Equal(t, items[i], inspect.Text(spans[1]))
	}
}

func TestExperienceBulletsMatchContent(t *testing.T) {
	c := content.Default()
	exp := section(t, render(t, c), "experience")

	lis := inspect.All(exp, atom.Li)
	require.Len(t, lis, len(c.Experience.Bullets))
	for i, li := range lis {
		assert.Equal(t, c.Experience.Bullets[i], inspect.Text(li))
	}

	paragraphs := inspect.All(exp, atom.P)
	require.NotEmpty(t, paragraphs)
	assert.Equal(t, c.Experience.Intro, inspect.Text(paragraphs[0]))
}

func TestExperienceWithoutIntroSkipsParagraph(t *testing.T) {
	c := content.Default()
	c.Experience.Intro = ""
	exp := section(t, render(t, c), "experience")

	assert.Empty(t, inspect.All(exp, atom.P))
	assert.Len(t, inspect.All(exp, atom.Li), len(c.Experience.Bullets))
}

func TestContactEmailLinkTarget(t *testing.T) {
	c := content.Default()
	contact := section(t, render(t, c), "contact")

	var mail *html.Node
	for _, a := range inspect.All(contact, atom.A) {
		if inspect.Text(a) == c.Contact.Email {
			mail = a
		}
	}
	require.NotNil(t, mail, "email link not rendered")
	assert.Equal(t, "mailto:jeremy@jrgriffin.co", inspect.Attr(mail, "href"))
}

func TestContactProfileLinkOpensExternally(t *testing.T) {
	c := content.Default()
	contact := section(t, render(t, c), "contact")

	var profile *html.Node
	for _, a := range inspect.All(contact, atom.A) {
		if inspect.Attr(a, "href") == c.Contact.LinkedIn {
			profile = a
		}
	}
	require.NotNil(t, profile)
	assert.Equal(t, "_blank", inspect.Attr(profile, "target"))
	assert.Equal(t, "noreferrer", inspect.Attr(profile, "rel"))
}

func TestContactImageAndChecklist(t *testing.T) {
	c := content.Default()
	contact := section(t, render(t, c), "contact")

	imgs := inspect.All(contact, atom.Img)
	require.Len(t, imgs, 1)
	assert.Equal(t, "/headshot.png", inspect.Attr(imgs[0], "src"))
	assert.Equal(t, "Jeremy Griffin", inspect.Attr(imgs[0], "alt"))
	assert.Equal(t, "600", inspect.Attr(imgs[0], "width"))
	assert.Equal(t, "800", inspect.Attr(imgs[0], "height"))

	lis := inspect.All(contact, atom.Li)
	require.Len(t, lis, len(c.DealChecklist.Items))
	for i, li := range lis {
		assert.Equal(t, c.DealChecklist.Items[i], inspect.Text(li))
	}
}

func TestSectionOrder(t *testing.T) {
	doc := render(t, content.Default())

	var ids []string
	for _, s := range inspect.All(doc, atom.Section) {
		ids = append(ids, inspect.Attr(s, "id"))
	}
	assert.Equal(t, []string{"top", "about", "partners", "experience", "focus", "contact"}, ids)

	mains := inspect.All(doc, atom.Main)
	require.Len(t, mains, 1)
	top := inspect.Children(mains[0])
	require.NotEmpty(t, top)
	assert.Equal(t, atom.Header, top[0].DataAtom)
	assert.Equal(t, atom.Footer, top[len(top)-1].DataAtom)
}

func TestFocusPanelRendersDeclaredRows(t *testing.T) {
	c := content.Default()
	c.Focus.Items = []content.LabeledValue{
		{Label: "Property types", Value: "Multifamily · Industrial"},
		{Label: "Deal size", Value: "$25–$50MM+"},
	}
	focus := section(t, render(t, c), "focus")

	list := inspect.FirstWithClass(focus, "space-y-6")
	require.NotNil(t, list)

	rows := inspect.Children(list)
	require.Len(t, rows, 2)

	for i, row := range rows {
		parts := inspect.Children(row)
		require.Len(t, parts, 2)
		assert.Equal(t, c.Focus.Items[i].Label, inspect.Text(parts[0]))
		assert.Equal(t, c.Focus.Items[i].Value, inspect.Text(parts[1]))
	}
}

func TestPartnerLines(t *testing.T) {
	c := content.Default()
	partners := section(t, render(t, c), "partners")

	list := inspect.FirstWithClass(partners, "space-y-5")
	require.NotNil(t, list)

	lines := inspect.Children(list)
	require.Len(t, lines, len(c.Partners.Lines))
	for i, line := range lines {
		want := c.Partners.Lines[i].Label + ": " + c.Partners.Lines[i].Value
		assert.Equal(t, want, inspect.Text(line))
	}
}

func TestRenderIsByteIdentical(t *testing.T) {
	c := content.Default()

	first, err := RenderBytes(c, Options{Stylesheets: []string{"/site.css"}})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := RenderBytes(c, Options{Stylesheets: []string{"/site.css"}})
		require.NoError(t, err)
		assert.True(t, bytes.Equal(first, again), "render %d differs", i)
	}
}

func TestDocumentHead(t *testing.T) {
	c := content.Default()
	b, err := RenderBytes(c, Options{
		Stylesheets: []string{"/site.css"},
		Scripts:     []string{"https://cdn.tailwindcss.com"},
	})
	require.NoError(t, err)

	out := string(b)
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `<html lang="en">`)

	doc, err := inspect.Parse(b)
	require.NoError(t, err)

	titles := inspect.All(doc, atom.Title)
	require.Len(t, titles, 1)
	assert.Equal(t, c.Meta.Title, inspect.Text(titles[0]))

	var description string
	for _, m := range inspect.All(doc, atom.Meta) {
		if inspect.Attr(m, "name") == "description" {
			description = inspect.Attr(m, "content")
		}
	}
	assert.Equal(t, c.Meta.Description, description)

	links := inspect.All(doc, atom.Link)
	require.Len(t, links, 1)
	assert.Equal(t, "/site.css", inspect.Attr(links[0], "href"))

	scripts := inspect.All(doc, atom.Script)
	require.Len(t, scripts, 1)
	assert.Equal(t, "https://cdn.tailwindcss.com", inspect.Attr(scripts[0], "src"))
}

func TestFocusPanelSnapshot(t *testing.T) {
	var buf bytes.Buffer
	err := focus(content.Focus{
		Title: "Areas of Focus",
		Items: []content.LabeledValue{
			{Label: "Property types", Value: "Multifamily · Industrial"},
			{Label: "Deal size", Value: "$25–$50MM+"},
		},
	}).Render(&buf)
	require.NoError(t, err)

	snaps.MatchSnapshot(t, buf.String())
}
