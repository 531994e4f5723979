package usecase

import (
	"bytes"
	"context"
	"fmt"
	iofs "io/fs"
	"net/mail"
	"strings"

	"github.com/jrgriffin/site/internal/content"
	"github.com/jrgriffin/site/internal/core"
	"github.com/jrgriffin/site/internal/inspect"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one authoring problem. Findings never stop a render; they only
// point at copy that will show up broken.
type Finding struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

type CheckInput struct {
	Content content.Content
	Public  iofs.FS
}

type CheckOutput struct {
	Findings []Finding
	Error    error
}

func (o CheckOutput) HasErrors() bool {
	for _, f := range o.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

type CheckService struct {
	renderer Renderer
}

func NewCheckService(renderer Renderer) *CheckService {
	return &CheckService{
		renderer: renderer,
	}
}

func (s *CheckService) Check(ctx context.Context, input CheckInput) CheckOutput {
	if err := ctx.Err(); err != nil {
		return CheckOutput{Error: err}
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, input.Content); err != nil {
		return CheckOutput{Error: fmt.Errorf("failed to render page: %w", err)}
	}

	doc, err := inspect.Parse(buf.Bytes())
	if err != nil {
		return CheckOutput{Error: fmt.Errorf("failed to parse rendered page: %w", err)}
	}

	c := &checker{ids: inspect.IDCounts(doc)}
	c.nav(input.Content.Nav)
	c.mailto("hero.cta_href", input.Content.Hero.CTAHref, true)
	c.mailto("partners.cta_href", input.Content.Partners.CTAHref, false)
	c.tiles(input.Content.About.Tiles)
	c.rows("focus.items", input.Content.Focus.Items)
	c.rows("partners.lines", input.Content.Partners.Lines)
	c.bullets("experience.bullets", input.Content.Experience.Bullets)
	c.bullets("deal_checklist.items", input.Content.DealChecklist.Items)
	c.contact(input.Content.Contact, input.Public)

	return CheckOutput{Findings: c.findings}
}

type checker struct {
	ids      map[string]int
	findings []Finding
}

func (c *checker) errorf(field, format string, args ...any) {
	c.findings = append(c.findings, Finding{Severity: SeverityError, Field: field, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) warnf(field, format string, args ...any) {
	c.findings = append(c.findings, Finding{Severity: SeverityWarning, Field: field, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) nav(entries []content.NavEntry) {
	for i, n := range entries {
		field := fmt.Sprintf("nav[%d]", i)
		if strings.TrimSpace(n.Label) == "" {
			c.warnf(field+".label", "label is empty")
		}

		if id, ok := core.AnchorID(n.Href); ok {
			switch count := c.ids[id]; count {
			case 1:
			case 0:
				c.errorf(field+".href", "anchor #%s does not exist on the page", id)
			default:
				c.errorf(field+".href", "anchor #%s appears %d times", id, count)
			}
			continue
		}

		if !core.IsExternalURI(n.Href) {
			c.errorf(field+".href", "%q is neither an in-page anchor nor an external URI", n.Href)
		}
	}
}

func (c *checker) mailto(field, href string, required bool) {
	if href == "" {
		if required {
			c.errorf(field, "link is empty")
		}
		return
	}

	addr, ok := strings.CutPrefix(href, "mailto:")
	if !ok {
		c.errorf(field, "%q is not a mailto link", href)
		return
	}
	if !validAddress(addr) {
		c.errorf(field, "%q is not a valid email address", addr)
	}
}

func (c *checker) tiles(tiles []content.Tile) {
	if len(tiles) != 3 {
		c.warnf("about.tiles", "expected 3 tiles, found %d", len(tiles))
	}
	for i, t := range tiles {
		field := fmt.Sprintf("about.tiles[%d]", i)
		if strings.TrimSpace(t.Title) == "" {
			c.errorf(field+".title", "title is empty")
		}
		if strings.TrimSpace(t.Body) == "" {
			c.errorf(field+".body", "body is empty")
		}
	}
}

func (c *checker) rows(field string, rows []content.LabeledValue) {
	for i, r := range rows {
		f := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(r.Label) == "" {
			c.errorf(f+".label", "label is empty")
		}
		if strings.TrimSpace(r.Value) == "" {
			c.errorf(f+".value", "value is empty")
		}
	}
}

func (c *checker) bullets(field string, items []string) {
	if len(items) == 0 {
		c.warnf(field, "list is empty")
	}
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			c.warnf(fmt.Sprintf("%s[%d]", field, i), "item is empty")
		}
	}
}

func (c *checker) contact(ct content.Contact, public iofs.FS) {
	if !validAddress(ct.Email) {
		c.errorf("contact.email", "%q is not a valid email address", ct.Email)
	}

	if ct.LinkedIn != "" && (!core.IsExternalURI(ct.LinkedIn) || strings.HasPrefix(ct.LinkedIn, "mailto:")) {
		c.errorf("contact.linkedin", "%q is not an absolute http(s) URL", ct.LinkedIn)
	}

	img := ct.Image
	if img.Width <= 0 || img.Height <= 0 {
		c.warnf("contact.image", "width and height should be positive, got %dx%d", img.Width, img.Height)
	}

	if core.IsExternalURI(img.Src) {
		return
	}
	if err := core.ValidateAssetPath(img.Src); err != nil {
		c.errorf("contact.image.src", "%q: %v", img.Src, err)
		return
	}
	if public == nil {
		c.warnf("contact.image.src", "no public directory to resolve %s against", img.Src)
		return
	}
	if _, err := iofs.Stat(public, core.AssetName(img.Src)); err != nil {
		c.errorf("contact.image.src", "asset %s not found", img.Src)
	}
}

// validAddress accepts a bare address only, without a display name.
func validAddress(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}
