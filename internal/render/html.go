package render

import (
	"fmt"
	"html"
	"io"
	"net/url"
	"strconv"
	"strings"

	"turforlag/internal/lang"
	"turforlag/internal/models"
	"turforlag/internal/services"
	"turforlag/internal/tabs"

	"github.com/microcosm-cc/bluemonday"
)

type HTMLRenderer struct {
	text *bluemonday.Policy
	ugc  *bluemonday.Policy
}

func NewHTMLRenderer() *HTMLRenderer {
	ugc := bluemonday.UGCPolicy()
	ugc.AllowElements("img")
	ugc.AllowAttrs("src", "alt").OnElements("img")
	return &HTMLRenderer{text: bluemonday.StrictPolicy(), ugc: ugc}
}

func (r *HTMLRenderer) Render(w io.Writer, p Page) error {
	if p.View == nil {
		return fmt.Errorf("render: empty view")
	}
	var b strings.Builder
	if p.Editing {
		r.editList(&b, p)
	} else {
		r.tabs(&b, p)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// plain: summary раздела без разметки для заголовков вкладок.
func (r *HTMLRenderer) plain(s string) string {
	return strings.TrimSpace(r.text.Sanitize(s))
}

func (r *HTMLRenderer) tabs(b *strings.Builder, p Page) {
	sections := p.View.Sections

	fmt.Fprintf(b, `<div id="turforlag_wrapper"><div id="tabs" class="turforlag" data-courseid="%d" data-active="%d">`,
		p.View.Course.ID, p.State.Top)

	b.WriteString(`<ul class="turforlag_tabs">`)
	for i, sec := range sections {
		class := "progress_" + sec.Status.ProgressClass()
		if i == p.State.Top {
			class += " ui-tabs-active"
		}
		fmt.Fprintf(b, `<li class="%s" data-turtab="%d"><a href="#tabs-%d">%s</a></li>`,
			class, i, i, r.plain(sec.Section))
	}
	b.WriteString(`</ul>`)

	style := backgroundStyle(p.BackgroundURL)
	for i, sec := range sections {
		fmt.Fprintf(b, `<div class="turforlag_cf_content" id="tabs-%d"`, i)
		if style != "" {
			fmt.Fprintf(b, ` style="%s"`, html.EscapeString(style))
		}
		if i != p.State.Top {
			b.WriteString(` hidden`)
		}
		b.WriteString(`>`)
		fmt.Fprintf(b, `<h3>%s</h3>`, r.plain(sec.Section))

		switch {
		case sec.IsIntro():
			r.intro(b, p.View)
		case len(sec.Parts) > 0:
			sub := tabs.Collapsed
			if i == p.State.Top {
				sub = p.State.Sub
			}
			r.subtabs(b, p.SiteURL, i, sec, sub)
		default:
			noParts(b)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div></div>`)
}

func (r *HTMLRenderer) intro(b *strings.Builder, v *services.CourseView) {
	b.WriteString(`<div class="turforlag_intro">`)
	if v.IntroImageURL != "" {
		fmt.Fprintf(b, `<img class="turforlag_intro_image" src="%s" alt="">`, html.EscapeString(v.IntroImageURL))
	}
	if v.Intro != "" {
		b.WriteString(r.ugc.Sanitize(v.Intro))
	}
	b.WriteString(`</div>`)
}

func (r *HTMLRenderer) subtabs(b *strings.Builder, siteURL string, i int, sec models.Section, active int) {
	fmt.Fprintf(b, `<div id="subtabs-%d" class="turforlag_subtabs" data-active="%d">`, i, active)

	b.WriteString(`<ul class="turforlag_subtabs">`)
	for j, part := range sec.Parts {
		class := "turforlag_cf_progress_" + part.Status.ProgressClass()
		href := fmt.Sprintf("#subtabs-%d-%d", i, j)
		if tabs.IsDirectLink(part) {
			class += " turforlag_directlink"
			href = services.ModuleURL(siteURL, part.Type, part.ModuleID)
		}
		if j == active {
			class += " ui-tabs-active"
		}
		fmt.Fprintf(b, `<li class="%s" data-tursubtab="%d"><a href="%s">%s</a></li>`,
			class, j, html.EscapeString(href), html.EscapeString(part.Name))
	}
	b.WriteString(`</ul>`)

	for j, part := range sec.Parts {
		if tabs.IsDirectLink(part) {
			continue
		}
		fmt.Fprintf(b, `<div class="turforlag_cf_subcontent" id="subtabs-%d-%d"`, i, j)
		if j != active {
			b.WriteString(` hidden`)
		}
		b.WriteString(`><ul>`)
		for _, m := range part.Modules {
			fmt.Fprintf(b, `<li class="turforlag_cf_progress_%s"><a href="%s">%s</a></li>`,
				m.Status.ProgressClass(),
				html.EscapeString(services.ModuleURL(siteURL, m.Type, m.ModuleID)),
				html.EscapeString(m.Name))
		}
		b.WriteString(`</ul></div>`)
	}

	b.WriteString(`</div>`)
}

// noParts: раздел без активностей, занятие вождения с инструктором.
func noParts(b *strings.Builder) {
	fmt.Fprintf(b, `<div class="turforlag_noparts"><h4>%s</h4><p>%s</p><p>%s</p></div>`,
		html.EscapeString(lang.Get("no-section-parts-0")),
		html.EscapeString(lang.Get("no-section-parts-1")),
		html.EscapeString(lang.Get("no-section-parts-2")))
}

func (r *HTMLRenderer) editList(b *strings.Builder, p Page) {
	fmt.Fprintf(b, `<h2 class="accesshide">%s</h2>`, html.EscapeString(lang.Get("topicoutline")))
	b.WriteString(`<div class="course-content"><ul class="turforlag">`)

	for _, sec := range p.View.EditSections {
		class := "section main"
		if sec.Current {
			class += " current"
		}
		if !sec.Visible {
			class += " hidden"
		}
		move := lang.Get("movesection", sec.Number)
		fmt.Fprintf(b, `<li class="%s" id="section-%d">`, class, sec.Number)
		fmt.Fprintf(b, `<div class="left"><span class="section-handle"><img class="icon" alt="%s" title="%s"></span></div>`,
			html.EscapeString(move), html.EscapeString(move))
		b.WriteString(`<div class="content">`)
		fmt.Fprintf(b, `<h3 class="sectionname"><a href="%s">%s</a></h3>`,
			html.EscapeString(sec.URL), html.EscapeString(sec.Name))
		fmt.Fprintf(b, `<div class="summary">%s</div>`, r.ugc.Sanitize(sec.Summary))
		if sec.Number != 0 {
			highlightControl(b, sec)
		}
		b.WriteString(`<div class="section_add_menus"></div>`)
		b.WriteString(`</div></li>`)
	}

	b.WriteString(`</ul></div>`)
}

// highlightControl: переключатель "текущий раздел"; marker=0 снимает отметку.
func highlightControl(b *strings.Builder, sec services.EditSection) {
	marker, key := sec.Number, "markthistopic"
	if sec.Current {
		marker, key = 0, "markedthistopic"
	}

	link := sec.URL
	if u, err := url.Parse(sec.URL); err == nil {
		q := u.Query()
		q.Set("marker", strconv.Itoa(marker))
		u.RawQuery = q.Encode()
		link = u.String()
	}
	fmt.Fprintf(b, `<a class="editing_highlight" href="%s" title="%s"></a>`,
		html.EscapeString(link), html.EscapeString(lang.Get(key)))
}

func backgroundStyle(imageURL string) string {
	if imageURL == "" {
		return ""
	}
	styles := [][2]string{
		{"background-image", "url(" + imageURL + ")"},
		{"background-position", "right bottom"},
		{"background-repeat", "no-repeat"},
	}
	var sb strings.Builder
	for _, s := range styles {
		sb.WriteString(s[0] + ": " + s[1] + ";")
	}
	return sb.String()
}
