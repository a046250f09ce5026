// Package tabs хранит состояние вкладок курса: открытый раздел и открытую часть,
// сохранение состояния между загрузками страницы и правку списка разделов после
// перемещения раздела.
//
// Состояние лежит в двух cookie курса (turtab{id}, tursubtab{id}).
// Восстановление из фрагмента URL (#subtabs-{top}-{sub}) не поддерживается.
package tabs

import (
	"strconv"

	"turforlag/internal/models"
	"turforlag/internal/services"
)

// Collapsed: ни одна вкладка второго уровня не открыта.
const Collapsed = -1

// Hook: точка, в которой вкладка второго уровня может быть активирована.
type Hook int

const (
	HookCreate Hook = iota
	HookBeforeLoad
	HookBeforeActivate
)

func (h Hook) String() string {
	switch h {
	case HookCreate:
		return "create"
	case HookBeforeLoad:
		return "beforeLoad"
	case HookBeforeActivate:
		return "beforeActivate"
	}
	return "unknown"
}

type State struct {
	Top int `json:"top"`
	Sub int `json:"sub"`
}

// Store хранит состояние между загрузками страницы.
type Store interface {
	Get(name string) (string, bool)
	Set(name, value string)
}

// Navigator уводит браузер по адресу.
type Navigator interface {
	Navigate(url string)
}

type NavigatorFunc func(url string)

func (f NavigatorFunc) Navigate(url string) { f(url) }

type SubTab struct {
	Href       string
	DirectLink bool
}

type TopTab struct {
	Subs []SubTab
}

func TopCookie(courseID int) string { return "turtab" + strconv.Itoa(courseID) }
func SubCookie(courseID int) string { return "tursubtab" + strconv.Itoa(courseID) }

// FromStructure строит вкладки из дерева курса. Часть без подмодулей с тестом или
// SCORM: прямая ссылка на активность.
func FromStructure(siteURL string, sections []models.Section) []TopTab {
	out := make([]TopTab, len(sections))
	for i, sec := range sections {
		for _, p := range sec.Parts {
			out[i].Subs = append(out[i].Subs, subTabFor(siteURL, p))
		}
	}
	return out
}

func subTabFor(siteURL string, p models.Part) SubTab {
	if len(p.Modules) == 0 && p.ModuleID != 0 && (p.Type == models.ModuleQuiz || p.Type == models.ModuleScorm) {
		return SubTab{Href: services.ModuleURL(siteURL, p.Type, p.ModuleID), DirectLink: true}
	}
	return SubTab{}
}

// IsDirectLink: у части нет своей панели, вкладка ведёт прямо на активность.
func IsDirectLink(p models.Part) bool {
	return subTabFor("", p).DirectLink
}

type Controller struct {
	courseID int
	tabs     []TopTab
	store    Store
	nav      Navigator
	state    State
}

// New восстанавливает состояние из store: по умолчанию первая вкладка и свернутые подвкладки.
func New(courseID int, tabs []TopTab, store Store, nav Navigator) *Controller {
	c := &Controller{courseID: courseID, tabs: tabs, store: store, nav: nav}
	c.state = State{Top: c.restore(TopCookie(courseID), 0), Sub: c.restore(SubCookie(courseID), Collapsed)}

	if c.state.Top < 0 || c.state.Top >= len(tabs) {
		c.state.Top = 0
	}
	if c.state.Sub != Collapsed && !c.Create(c.state.Sub) {
		c.state.Sub = Collapsed
	}
	return c
}

func (c *Controller) restore(name string, def int) int {
	if c.store == nil {
		return def
	}
	raw, ok := c.store.Get(name)
	if !ok || raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func (c *Controller) State() State { return c.state }

func (c *Controller) subTab(i int) (SubTab, bool) {
	if c.state.Top < 0 || c.state.Top >= len(c.tabs) {
		return SubTab{}, false
	}
	subs := c.tabs[c.state.Top].Subs
	if i < 0 || i >= len(subs) {
		return SubTab{}, false
	}
	return subs[i], true
}

// allow проверяет все три хука одинаково: прямая ссылка никогда не активируется на месте.
func (c *Controller) allow(h Hook, i int) bool {
	tab, ok := c.subTab(i)
	if !ok {
		return false
	}
	if !tab.DirectLink {
		return true
	}
	if h == HookBeforeActivate && c.nav != nil {
		c.nav.Navigate(tab.Href)
	}
	return false
}

// Create: подвкладку i можно открыть при построении вкладок.
func (c *Controller) Create(i int) bool { return c.allow(HookCreate, i) }

// BeforeLoad: панель подвкладки i можно загрузить.
func (c *Controller) BeforeLoad(i int) bool { return c.allow(HookBeforeLoad, i) }

// BeforeActivate: подвкладку i можно активировать; для прямой ссылки вызывает Navigator.
func (c *Controller) BeforeActivate(i int) bool { return c.allow(HookBeforeActivate, i) }

// ActivateTop открывает вкладку раздела. Возвращает false для несуществующего индекса.
func (c *Controller) ActivateTop(i int) bool {
	if i < 0 || i >= len(c.tabs) {
		return false
	}
	c.state.Top = i
	c.save(TopCookie(c.courseID), i)

	// открытая подвкладка относится к прежнему разделу
	if c.state.Sub != Collapsed && !c.Create(c.state.Sub) {
		c.state.Sub = Collapsed
		c.save(SubCookie(c.courseID), Collapsed)
	}
	return true
}

// ActivateSub открывает подвкладку в текущем разделе; повторная активация
// открытой подвкладки её сворачивает.
func (c *Controller) ActivateSub(i int) bool {
	if !c.BeforeActivate(i) {
		return false
	}
	if c.state.Sub == i {
		c.state.Sub = Collapsed
		c.save(SubCookie(c.courseID), Collapsed)
		return true
	}
	c.state.Sub = i
	c.save(SubCookie(c.courseID), i)
	return true
}

func (c *Controller) save(name string, v int) {
	if c.store == nil {
		return
	}
	if v == Collapsed {
		c.store.Set(name, "")
		return
	}
	c.store.Set(name, strconv.Itoa(v))
}
