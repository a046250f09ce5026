package handlers

import (
	"context"
	"net/http"

	"turforlag/internal/models"
	"turforlag/internal/reqctx"
	"turforlag/internal/repository"
	"turforlag/internal/services"

	"github.com/gorilla/mux"
)

type fakeStructure struct {
	sections   []models.Section
	err        error
	lastUserID int
}

func (f *fakeStructure) Build(_ context.Context, _, userID int) ([]models.Section, error) {
	f.lastUserID = userID
	return f.sections, f.err
}

type fakeView struct {
	view        *services.CourseView
	err         error
	lastEditing bool
}

func (f *fakeView) Load(_ context.Context, courseID, _ int, editing bool) (*services.CourseView, error) {
	f.lastEditing = editing
	if f.err != nil {
		return nil, f.err
	}
	if f.view == nil || f.view.Course.ID != courseID {
		return nil, repository.ErrNotFound
	}
	return f.view, nil
}

type fakeReorder struct {
	resp     *models.ReorderResponse
	err      error
	from, to int
}

func (f *fakeReorder) Move(_ context.Context, _, from, to int) (*models.ReorderResponse, error) {
	f.from, f.to = from, to
	return f.resp, f.err
}

// withUser подставляет личность так же, как это делает middleware.Identity.
func withUser(userID int, role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := reqctx.WithUserID(r.Context(), userID)
		ctx = reqctx.WithRole(ctx, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func testSections() []models.Section {
	return []models.Section{
		{Section: "Intro", Number: 0, CourseID: 3},
		{Section: "Lesson", Number: 1, Status: models.StatusInProgress, Parts: []models.Part{
			{Name: "Quiz", Type: models.ModuleQuiz, ModuleID: 10},
			{Name: "Part", Type: models.ModuleLabel, ModuleID: 11, Modules: []models.SubModule{
				{Name: "Sub", Type: models.ModuleScorm, ModuleID: 12},
			}},
		}},
	}
}

func newRouter(structure StructureBuilder, view ViewLoader, reorder Reorderer, role string) *mux.Router {
	course := NewCourseHandler(structure, view, nil, "https://lms", "")
	return newRouterWith(course, NewTabsHandler(structure, "https://lms"), NewSectionHandler(reorder), role)
}

func newRouterWith(course *CourseHandler, tabsH *TabsHandler, section *SectionHandler, role string) *mux.Router {
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return withUser(5, role, next) })
	r.HandleFunc("/api/courses/{id:[0-9]+}/structure", course.Structure).Methods(http.MethodGet)
	r.HandleFunc("/api/courses/{id:[0-9]+}/sections/move", section.Move).Methods(http.MethodPost)
	r.HandleFunc("/courses/{id:[0-9]+}", course.View).Methods(http.MethodGet)
	r.HandleFunc("/courses/{id:[0-9]+}/tabs/top/{index:[0-9]+}", tabsH.ActivateTop).Methods(http.MethodPost)
	r.HandleFunc("/courses/{id:[0-9]+}/tabs/sub/{index:[0-9]+}", tabsH.ActivateSub).Methods(http.MethodPost)
	return r
}

func testCourse() *models.Course {
	return &models.Course{ID: 3, FullName: "Kørekort B", ShortName: "B"}
}
