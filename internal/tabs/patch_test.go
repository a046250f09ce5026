package tabs

import (
	"fmt"
	"strings"
	"testing"

	"turforlag/internal/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionList(t *testing.T, n int, current int) *goquery.Document {
	t.Helper()
	var b strings.Builder
	b.WriteString(`<div class="course-content"><ul class="turforlag">`)
	for i := 0; i < n; i++ {
		class := "section"
		if i == current {
			class += " current"
		}
		fmt.Fprintf(&b, `<li class="%s" id="section-%d">`+
			`<div class="left"><span class="section-handle"><img alt="Move section %d" title="Move section %d"></span></div>`+
			`<h3 class="sectionname">Old %d</h3>`+
			`<div class="section_add_menus">menu %d</div></li>`, class, i, i, i, i, i)
	}
	b.WriteString(`</ul></div>`)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func titles(n int) map[int]string {
	m := make(map[int]string, n)
	for i := 0; i < n; i++ {
		m[i] = fmt.Sprintf("Topic %d", i)
	}
	return m
}

func names(doc *goquery.Document) []string {
	var out []string
	doc.Find(SectionSelector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Find(".sectionname").Text())
	})
	return out
}

func TestApplyReorder_NormalizesRange(t *testing.T) {
	for _, r := range [][2]int{{5, 2}, {2, 5}} {
		doc := sectionList(t, 7, -1)
		resp := &models.ReorderResponse{SectionTitles: titles(7), Current: -1, Action: "move"}

		ApplyReorder(doc, resp, r[0], r[1])

		assert.Equal(t,
			[]string{"Old 0", "Old 1", "Topic 2", "Topic 3", "Topic 4", "Topic 5", "Old 6"},
			names(doc), "from=%d to=%d", r[0], r[1])
	}
}

func TestApplyReorder_KeepsTitleLink(t *testing.T) {
	doc := sectionList(t, 3, -1)
	doc.Find(SectionSelector).Eq(1).Find(".sectionname").
		SetHtml(`<a href="https://x/course/view.php?id=3#section-1">Old 1</a>`)

	ApplyReorder(doc, &models.ReorderResponse{SectionTitles: titles(3), Current: -1, Action: "move"}, 1, 2)

	list := doc.Find(SectionSelector)
	link := list.Eq(1).Find(".sectionname a")
	require.Equal(t, 1, link.Length())
	assert.Equal(t, "Topic 1", link.Text())
	assert.Equal(t, "https://x/course/view.php?id=3#section-1", link.AttrOr("href", ""))
	assert.Equal(t, "Topic 2", list.Eq(2).Find(".sectionname").Text())
}

func TestApplyReorder_RelabelsMoveIcon(t *testing.T) {
	doc := sectionList(t, 4, -1)
	// после перемещения раздел 3 оказался на месте 1 со старой подписью
	doc.Find(SectionSelector).Eq(1).Find("img").SetAttr("alt", "Move section 3")

	ApplyReorder(doc, &models.ReorderResponse{SectionTitles: titles(4), Current: -1, Action: "move"}, 3, 1)

	img := doc.Find(SectionSelector).Eq(1).Find("img")
	alt, _ := img.Attr("alt")
	title, _ := img.Attr("title")
	assert.Equal(t, "Move section 1", alt)
	assert.Equal(t, "Move section 1", title)
}

func TestApplyReorder_HighlightExclusive(t *testing.T) {
	doc := sectionList(t, 6, 0)

	ApplyReorder(doc, &models.ReorderResponse{SectionTitles: titles(6), Current: 3, Action: "move"}, 2, 4)

	var current []int
	doc.Find(SectionSelector).Each(func(i int, s *goquery.Selection) {
		if s.HasClass(CurrentClass) {
			current = append(current, i)
		}
	})
	assert.Equal(t, []int{3}, current)
}

func TestApplyReorder_ClearsCurrentInRange(t *testing.T) {
	doc := sectionList(t, 4, 2)

	ApplyReorder(doc, &models.ReorderResponse{SectionTitles: titles(4), Current: -1, Action: "move"}, 1, 2)

	assert.Equal(t, 0, doc.Find(SectionSelector+".current").Length())
}

func TestApplyReorder_OutOfRangeIsNoop(t *testing.T) {
	doc := sectionList(t, 3, -1)

	assert.NotPanics(t, func() {
		ApplyReorder(doc, &models.ReorderResponse{SectionTitles: titles(10), Current: 8, Action: "move"}, 1, 9)
	})
	assert.Equal(t, []string{"Old 0", "Topic 1", "Topic 2"}, names(doc))
	assert.Equal(t, 0, doc.Find(SectionSelector+".current").Length())
}

func TestApplyReorder_IgnoresOtherActions(t *testing.T) {
	doc := sectionList(t, 3, -1)
	ApplyReorder(doc, &models.ReorderResponse{SectionTitles: titles(3), Current: 1, Action: "delete"}, 0, 2)
	ApplyReorder(doc, nil, 0, 2)
	assert.Equal(t, []string{"Old 0", "Old 1", "Old 2"}, names(doc))
}

func TestRelabelMoveIcon(t *testing.T) {
	assert.Equal(t, "Move section 7", RelabelMoveIcon("Move section 4", 7))
	assert.Equal(t, "Flyt afsnit 12", RelabelMoveIcon("Flyt afsnit 3", 12))
	assert.Equal(t, "7", RelabelMoveIcon("4", 7))
	assert.Equal(t, "Move", RelabelMoveIcon("Move", 5))
	assert.Equal(t, "Move section", RelabelMoveIcon("Move section", 5))
	assert.Equal(t, "", RelabelMoveIcon("", 5))
}

func TestSwapSections(t *testing.T) {
	doc := sectionList(t, 3, -1)

	SwapSections(doc, 0, 2)

	list := doc.Find(SectionSelector)
	assert.Equal(t, "menu 2", list.Eq(0).Find(".section_add_menus").Text())
	assert.Equal(t, "menu 0", list.Eq(2).Find(".section_add_menus").Text())
	assert.Equal(t, "menu 1", list.Eq(1).Find(".section_add_menus").Text())

	assert.NotPanics(t, func() { SwapSections(doc, 0, 10) })
}
