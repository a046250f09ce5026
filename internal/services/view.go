package services

import (
	"context"
	"fmt"
	"net/url"

	"turforlag/internal/config"
	"turforlag/internal/logger"
	"turforlag/internal/models"
	"turforlag/internal/repository"

	"go.uber.org/zap"
)

// EditSection: раздел в режиме редактирования (список с перемещением).
type EditSection struct {
	Number  int
	Name    string
	URL     string
	Summary string
	Visible bool
	Current bool
}

// CourseView: всё, что нужно рендереру для страницы курса.
type CourseView struct {
	Course        *models.Course
	Options       models.FormatOptions
	Sections      []models.Section
	EditSections  []EditSection
	Intro         string
	IntroImageURL string
}

type ViewService struct {
	repo      repository.CourseRepo
	structure *StructureService
	defaults  models.FormatOptions
	siteURL   string
}

func NewViewService(repo repository.CourseRepo, structure *StructureService, cfg *config.Config) *ViewService {
	return &ViewService{
		repo:      repo,
		structure: structure,
		defaults:  DefaultFormatOptions(cfg),
		siteURL:   cfg.SiteURL,
	}
}

// Load собирает страницу курса. editing добавляет список разделов для перемещения.
func (s *ViewService) Load(ctx context.Context, courseID, userID int, editing bool) (*CourseView, error) {
	log := logger.WithCtx(ctx).With(zap.Int("course_id", courseID))

	course, err := s.repo.GetCourse(ctx, courseID)
	if err != nil {
		log.Warn("view: курс не найден или ошибка выборки", zap.Error(err))
		return nil, err
	}
	format := NewCourseFormat(s.repo, course, s.defaults, s.siteURL)

	opts, err := format.Options(ctx)
	if err != nil {
		log.Error("view: ошибка чтения опций формата", zap.Error(err))
		return nil, err
	}

	sections, err := s.structure.Build(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}

	v := &CourseView{Course: course, Options: opts, Sections: sections}

	if v.Intro, err = s.repo.GetCourseIntro(ctx, courseID); err != nil {
		log.Error("view: ошибка чтения intro", zap.Error(err))
		return nil, err
	}
	for _, sec := range sections {
		if sec.IsIntro() && sec.IntroModuleContextID != nil {
			if v.IntroImageURL, err = s.introImageURL(ctx, *sec.IntroModuleContextID); err != nil {
				log.Error("view: ошибка чтения файла intro", zap.Error(err))
				return nil, err
			}
		}
	}

	if editing {
		if v.EditSections, err = s.editSections(ctx, format, opts); err != nil {
			log.Error("view: ошибка чтения разделов для редактирования", zap.Error(err))
			return nil, err
		}
	}

	log.Debug("view: страница собрана",
		zap.Int("sections", len(v.Sections)), zap.Bool("editing", editing))
	return v, nil
}

func (s *ViewService) introImageURL(ctx context.Context, contextID int) (string, error) {
	name, err := s.repo.GetIntroFileName(ctx, contextID)
	if err != nil || name == "" {
		return "", err
	}
	return fmt.Sprintf("%s/pluginfile.php/%d/mod_resource/content/0/%s",
		s.siteURL, contextID, url.PathEscape(name)), nil
}

// editSections: разделы 0..numsections; разделы выше numsections осиротевшие и не показываются.
func (s *ViewService) editSections(ctx context.Context, format *CourseFormat, opts models.FormatOptions) ([]EditSection, error) {
	records, err := s.repo.ListSections(ctx, format.Course().ID)
	if err != nil {
		return nil, err
	}

	out := make([]EditSection, 0, len(records))
	for _, rec := range records {
		if rec.Number > opts.NumSections {
			continue
		}
		number := rec.Number
		link, err := format.ViewURL(ctx, &number, ViewURLOptions{})
		if err != nil {
			return nil, err
		}
		out = append(out, EditSection{
			Number:  rec.Number,
			Name:    format.SectionName(rec),
			URL:     link,
			Summary: rec.Summary,
			Visible: rec.Visible,
			Current: format.IsSectionCurrent(rec.Number),
		})
	}
	return out, nil
}
