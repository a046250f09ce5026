package services

import (
	"context"

	"turforlag/internal/config"
	"turforlag/internal/logger"
	"turforlag/internal/models"
	"turforlag/internal/repository"

	"go.uber.org/zap"
)

type ReorderService struct {
	repo     repository.CourseRepo
	defaults models.FormatOptions
	siteURL  string
}

func NewReorderService(repo repository.CourseRepo, cfg *config.Config) *ReorderService {
	return &ReorderService{repo: repo, defaults: DefaultFormatOptions(cfg), siteURL: cfg.SiteURL}
}

// Move собирает ответ после перемещения раздела: заголовки всех разделов курса
// и номер текущего раздела (-1, если его нет). Порядок уже сохранён вызывающей стороной.
func (s *ReorderService) Move(ctx context.Context, courseID, from, to int) (*models.ReorderResponse, error) {
	log := logger.WithCtx(ctx).With(zap.Int("course_id", courseID))
	log.Info("reorder: перемещение раздела", zap.Int("from", from), zap.Int("to", to))

	course, err := s.repo.GetCourse(ctx, courseID)
	if err != nil {
		log.Warn("reorder: курс не найден или ошибка выборки", zap.Error(err))
		return nil, err
	}
	format := NewCourseFormat(s.repo, course, s.defaults, s.siteURL)

	sections, err := s.repo.ListSections(ctx, courseID)
	if err != nil {
		log.Error("reorder: ошибка чтения разделов", zap.Error(err))
		return nil, err
	}

	resp := &models.ReorderResponse{
		SectionTitles: make(map[int]string, len(sections)),
		Current:       -1,
		Action:        models.ActionMove,
	}
	for _, sec := range sections {
		resp.SectionTitles[sec.Number] = format.SectionName(sec)
		if format.IsSectionCurrent(sec.Number) {
			resp.Current = sec.Number
		}
	}

	log.Info("reorder: заголовки пересчитаны",
		zap.Int("sections", len(sections)), zap.Int("current", resp.Current))
	return resp, nil
}
