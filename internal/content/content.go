// Package content holds every piece of copy and every link target used by the
// profile page. Values are plain data; nothing here renders or validates.
package content

type NavEntry struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Hero struct {
	Headline string `yaml:"headline"`
	Subhead  string `yaml:"subhead"`
	CTALabel string `yaml:"cta_label"`
	CTAHref  string `yaml:"cta_href"`
}

type Tile struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type About struct {
	Title string `yaml:"title"`
	Tiles []Tile `yaml:"tiles"`
}

type Experience struct {
	Title   string   `yaml:"title"`
	Intro   string   `yaml:"intro"`
	Bullets []string `yaml:"bullets"`
}

// LabeledValue backs both focus rows and partner lines.
type LabeledValue struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Focus struct {
	Title string         `yaml:"title"`
	Items []LabeledValue `yaml:"items"`
}

type Partners struct {
	Title    string         `yaml:"title"`
	Lines    []LabeledValue `yaml:"lines"`
	CTALabel string         `yaml:"cta_label"`
	CTAHref  string         `yaml:"cta_href"`
}

type Checklist struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Image dimensions are nominal and only reserve layout space.
type Image struct {
	Src    string `yaml:"src"`
	Alt    string `yaml:"alt"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Contact struct {
	Title    string `yaml:"title"`
	Subhead  string `yaml:"subhead"`
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
	Image    Image  `yaml:"image"`
}

// MailtoHref is the target of the contact email link.
func (c Contact) MailtoHref() string {
	return "mailto:" + c.Email
}

type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Lang        string `yaml:"lang"`
}

// Content is the whole page. It owns every group by value.
type Content struct {
	Brand         string     `yaml:"brand"`
	Meta          Meta       `yaml:"meta"`
	Nav           []NavEntry `yaml:"nav"`
	Hero          Hero       `yaml:"hero"`
	About         About      `yaml:"about"`
	Experience    Experience `yaml:"experience"`
	Focus         Focus      `yaml:"focus"`
	Partners      Partners   `yaml:"partners"`
	DealChecklist Checklist  `yaml:"deal_checklist"`
	Contact       Contact    `yaml:"contact"`
	Footer        string     `yaml:"footer"`
}

// Clone returns a deep copy so callers never share slices with the source.
func (c Content) Clone() Content {
	out := c
	out.Nav = append([]NavEntry(nil), c.Nav...)
	out.About.Tiles = append([]Tile(nil), c.About.Tiles...)
	out.Experience.Bullets = append([]string(nil), c.Experience.Bullets...)
	out.Focus.Items = append([]LabeledValue(nil), c.Focus.Items...)
	out.Partners.Lines = append([]LabeledValue(nil), c.Partners.Lines...)
	out.DealChecklist.Items = append([]string(nil), c.DealChecklist.Items...)
	return out
}
