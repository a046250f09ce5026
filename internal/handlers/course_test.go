package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"turforlag/internal/render"
	"turforlag/internal/services"
	"turforlag/internal/tabs"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructure(t *testing.T) {
	fs := &fakeStructure{sections: testSections()}
	r := newRouter(fs, &fakeView{}, &fakeReorder{}, "student")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses/3/structure", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, fs.lastUserID)

	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Intro", body.Data[0]["section"])
	assert.Equal(t, float64(3), body.Data[0]["courseid"])
	assert.NotContains(t, body.Data[0], "parts")
	assert.Equal(t, "inprogress", body.Data[1]["status"])
}

func TestStructure_Error(t *testing.T) {
	r := newRouter(&fakeStructure{err: errors.New("db down")}, &fakeView{}, &fakeReorder{}, "student")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses/3/structure", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func viewRouter(fv *fakeView, role string) http.Handler {
	course := NewCourseHandler(&fakeStructure{}, fv, render.NewHTMLRenderer(), "https://lms", "")
	return newRouterWith(course, NewTabsHandler(&fakeStructure{}, ""), NewSectionHandler(&fakeReorder{}), role)
}

func TestView_RestoresTabsFromCookies(t *testing.T) {
	fv := &fakeView{view: &services.CourseView{Course: testCourse(), Sections: testSections()}}

	req := httptest.NewRequest(http.MethodGet, "/courses/3", nil)
	req.AddCookie(&http.Cookie{Name: tabs.TopCookie(3), Value: "1"})
	req.AddCookie(&http.Cookie{Name: tabs.SubCookie(3), Value: "1"})
	rec := httptest.NewRecorder()
	viewRouter(fv, "student").ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.False(t, fv.lastEditing)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	active := doc.Find("ul.turforlag_tabs li.ui-tabs-active")
	require.Equal(t, 1, active.Length())
	assert.Equal(t, "1", active.AttrOr("data-turtab", ""))
	assert.Equal(t, "1", doc.Find("#subtabs-1 li.ui-tabs-active").AttrOr("data-tursubtab", ""))
}

func TestView_DirectLinkCookieCollapses(t *testing.T) {
	fv := &fakeView{view: &services.CourseView{Course: testCourse(), Sections: testSections()}}

	req := httptest.NewRequest(http.MethodGet, "/courses/3", nil)
	req.AddCookie(&http.Cookie{Name: tabs.TopCookie(3), Value: "1"})
	req.AddCookie(&http.Cookie{Name: tabs.SubCookie(3), Value: "0"})
	rec := httptest.NewRecorder()
	viewRouter(fv, "student").ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("#subtabs-1 li.ui-tabs-active").Length())
}

func TestView_EditingNeedsRole(t *testing.T) {
	fv := &fakeView{view: &services.CourseView{Course: testCourse(), Sections: testSections()}}

	rec := httptest.NewRecorder()
	viewRouter(fv, "student").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/3?edit=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, fv.lastEditing)

	rec = httptest.NewRecorder()
	viewRouter(fv, "editingteacher").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/3?edit=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, fv.lastEditing)
}

func TestView_NotFound(t *testing.T) {
	fv := &fakeView{view: &services.CourseView{Course: testCourse()}}

	rec := httptest.NewRecorder()
	viewRouter(fv, "student").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/4", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
