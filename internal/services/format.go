package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"turforlag/internal/config"
	"turforlag/internal/lang"
	"turforlag/internal/models"
	"turforlag/internal/repository"
)

// DefaultFormatOptions: опции формата из конфигурации сайта.
func DefaultFormatOptions(cfg *config.Config) models.FormatOptions {
	return models.FormatOptions{
		NumSections:   cfg.DefaultNumSections,
		CourseDisplay: cfg.DefaultCourseDisplay,
	}
}

// CourseFormat: формат конкретного курса в рамках одного запроса.
// Опции читаются из БД один раз и кэшируются только на время жизни значения.
type CourseFormat struct {
	repo     repository.CourseRepo
	course   *models.Course
	defaults models.FormatOptions
	siteURL  string

	optsOnce sync.Once
	opts     models.FormatOptions
	optsErr  error
}

func NewCourseFormat(repo repository.CourseRepo, course *models.Course, defaults models.FormatOptions, siteURL string) *CourseFormat {
	return &CourseFormat{repo: repo, course: course, defaults: defaults, siteURL: siteURL}
}

func (f *CourseFormat) Course() *models.Course { return f.course }

// Options: опции курса поверх дефолтов сайта.
func (f *CourseFormat) Options(ctx context.Context) (models.FormatOptions, error) {
	f.optsOnce.Do(func() {
		opts := f.defaults
		stored, err := f.repo.GetFormatOptions(ctx, f.course.ID)
		if err != nil {
			f.optsErr = err
			return
		}
		if v, ok := stored["numsections"]; ok {
			opts.NumSections = v
		}
		if v, ok := stored["coursedisplay"]; ok {
			opts.CourseDisplay = v
		}
		f.opts = opts
	})
	return f.opts, f.optsErr
}

// SectionName возвращает имя раздела: заданное пользователем, иначе "General" для 0 и "Topic N".
func (f *CourseFormat) SectionName(sec models.SectionRecord) string {
	if sec.Name != "" {
		return sec.Name
	}
	if sec.Number == 0 {
		return lang.Get("section0name")
	}
	return lang.Get("topic") + " " + strconv.Itoa(sec.Number)
}

// IsSectionCurrent: раздел отмечен преподавателем как текущий. Раздел 0 текущим не бывает.
func (f *CourseFormat) IsSectionCurrent(number int) bool {
	return number != 0 && f.course.Marker == number
}

// ViewURLOptions повторяет опции ссылки на курс:
// SR: раздел, на который вернуться в многостраничном режиме,
// Navigation: вернуть "", если у раздела нет своей страницы.
type ViewURLOptions struct {
	SR         *int
	Navigation bool
}

// ViewURL: ссылка на страницу курса с разделом section (nil, если без раздела).
func (f *CourseFormat) ViewURL(ctx context.Context, section *int, o ViewURLOptions) (string, error) {
	u, err := url.Parse(f.siteURL + "/course/view.php")
	if err != nil {
		return "", fmt.Errorf("view url: %w", err)
	}
	q := url.Values{}
	q.Set("id", strconv.Itoa(f.course.ID))

	if section != nil {
		sectionNo := *section
		var display int
		if o.SR != nil {
			if *o.SR != 0 {
				display = models.CourseDisplayMulti
				sectionNo = *o.SR
			} else {
				display = models.CourseDisplaySingle
			}
		} else {
			opts, err := f.Options(ctx)
			if err != nil {
				return "", err
			}
			display = opts.CourseDisplay
		}

		if sectionNo != 0 && display == models.CourseDisplayMulti {
			q.Set("section", strconv.Itoa(sectionNo))
		} else {
			if o.Navigation {
				return "", nil
			}
			u.Fragment = "section-" + strconv.Itoa(sectionNo)
		}
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ModuleURL: ссылка на просмотр активности.
func ModuleURL(siteURL string, kind models.ModuleType, moduleID int) string {
	return fmt.Sprintf("%s/mod/%s/view.php?id=%d", siteURL, url.PathEscape(string(kind)), moduleID)
}
