package services

import (
	"context"

	"turforlag/internal/models"
	"turforlag/internal/repository"
)

// Мок-репозиторий курса
type mockCourseRepo struct {
	courses  map[int]*models.Course
	sections map[int][]models.SectionRecord
	modules  map[int]models.ModuleRecord
	introCtx map[int]int // module id -> context id
	intro    map[int]string
	files    map[int]string
	options  map[int]map[string]int

	optionsCalls int
	lastUserID   int
	err          error
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{
		courses:  map[int]*models.Course{},
		sections: map[int][]models.SectionRecord{},
		modules:  map[int]models.ModuleRecord{},
		introCtx: map[int]int{},
		intro:    map[int]string{},
		files:    map[int]string{},
		options:  map[int]map[string]int{},
	}
}

var _ repository.CourseRepo = (*mockCourseRepo)(nil)

func (m *mockCourseRepo) GetCourse(_ context.Context, courseID int) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.courses[courseID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (m *mockCourseRepo) ListVisibleSections(_ context.Context, courseID int) ([]models.SectionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.SectionRecord
	for _, s := range m.sections[courseID] {
		if s.Visible && s.Summary != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockCourseRepo) ListSections(_ context.Context, courseID int) ([]models.SectionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sections[courseID], nil
}

// ListModules отдаёт строки в обратном порядке: как будто БД вернула их как попало.
func (m *mockCourseRepo) ListModules(_ context.Context, userID int, ids []int) ([]models.ModuleRecord, error) {
	m.lastUserID = userID
	var out []models.ModuleRecord
	for i := len(ids) - 1; i >= 0; i-- {
		if mod, ok := m.modules[ids[i]]; ok {
			out = append(out, mod)
		}
	}
	return out, nil
}

func (m *mockCourseRepo) IntroModuleContextID(_ context.Context, ids []int) (*int, error) {
	for _, id := range ids {
		if ctxID, ok := m.introCtx[id]; ok {
			return &ctxID, nil
		}
	}
	return nil, nil
}

func (m *mockCourseRepo) GetCourseIntro(_ context.Context, courseID int) (string, error) {
	return m.intro[courseID], nil
}

func (m *mockCourseRepo) GetIntroFileName(_ context.Context, contextID int) (string, error) {
	return m.files[contextID], nil
}

func (m *mockCourseRepo) GetFormatOptions(_ context.Context, courseID int) (map[string]int, error) {
	m.optionsCalls++
	return m.options[courseID], nil
}
