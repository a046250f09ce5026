package tabs

import (
	"strconv"
	"strings"

	"turforlag/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// Селекторы списка разделов в режиме редактирования.
const (
	SectionSelector  = ".course-content li.section"
	SectionNameClass = "sectionname"
	MoveIconSelector = ".left .section-handle img"
	CurrentClass     = "current"
	AddMenusClass    = "section_add_menus"
)

// ApplyReorder обновляет разделы from..to (в любом порядке) по ответу сервера:
// заголовок, подпись иконки перемещения и подсветку текущего раздела.
// Индексы вне отрисованного списка пропускаются.
func ApplyReorder(doc *goquery.Document, resp *models.ReorderResponse, from, to int) {
	if resp == nil || resp.Action != models.ActionMove {
		return
	}
	if from > to {
		from, to = to, from
	}

	list := doc.Find(SectionSelector)
	for i := from; i <= to; i++ {
		if i < 0 || i >= list.Length() {
			continue
		}
		sec := list.Eq(i)

		if title, ok := resp.SectionTitles[i]; ok {
			setSectionTitle(sec.Find("." + SectionNameClass).First(), title)
		}

		icon := sec.Find(MoveIconSelector).First()
		if alt, ok := icon.Attr("alt"); ok {
			label := RelabelMoveIcon(alt, i)
			icon.SetAttr("alt", label)
			icon.SetAttr("title", label)
		}

		sec.RemoveClass(CurrentClass)
	}

	if resp.Current != -1 {
		list.RemoveClass(CurrentClass)
		if resp.Current >= 0 && resp.Current < list.Length() {
			list.Eq(resp.Current).AddClass(CurrentClass)
		}
	}
}

// setSectionTitle меняет текст ссылки заголовка, а без ссылки сам заголовок.
func setSectionTitle(name *goquery.Selection, title string) {
	if link := name.Find("a").First(); link.Length() > 0 {
		link.SetText(title)
		return
	}
	name.SetText(title)
}

// RelabelMoveIcon заменяет номер в конце подписи номером раздела:
// "Move section 4", 7 → "Move section 7". Подпись без номера в конце не меняется.
func RelabelMoveIcon(label string, index int) string {
	idx := strings.LastIndex(label, " ")
	if _, err := strconv.Atoi(label[idx+1:]); err != nil {
		return label
	}
	return label[:idx+1] + strconv.Itoa(index)
}

// SwapSections меняет местами меню добавления активностей двух разделов.
func SwapSections(doc *goquery.Document, a, b int) {
	list := doc.Find(SectionSelector)
	if a == b || a < 0 || b < 0 || a >= list.Length() || b >= list.Length() {
		return
	}
	menuA := list.Eq(a).Find("." + AddMenusClass).First()
	menuB := list.Eq(b).Find("." + AddMenusClass).First()
	if menuA.Length() == 0 || menuB.Length() == 0 {
		return
	}

	htmlA, errA := menuA.Html()
	htmlB, errB := menuB.Html()
	if errA != nil || errB != nil {
		return
	}
	menuA.SetHtml(htmlB)
	menuB.SetHtml(htmlA)
}
