package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"turforlag/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

// contextlevel модуля в таблице context
const contextLevelModule = 70

const introResourceName = "_introduction"

type CourseRepo interface {
	GetCourse(ctx context.Context, courseID int) (*models.Course, error)
	ListVisibleSections(ctx context.Context, courseID int) ([]models.SectionRecord, error)
	ListSections(ctx context.Context, courseID int) ([]models.SectionRecord, error)
	ListModules(ctx context.Context, userID int, moduleIDs []int) ([]models.ModuleRecord, error)
	IntroModuleContextID(ctx context.Context, moduleIDs []int) (*int, error)
	GetCourseIntro(ctx context.Context, courseID int) (string, error)
	GetIntroFileName(ctx context.Context, contextID int) (string, error)
	GetFormatOptions(ctx context.Context, courseID int) (map[string]int, error)
}

type courseRepo struct {
	db     *pgxpool.Pool
	tables *strings.Replacer
}

// NewCourseRepo: prefix это префикс таблиц LMS (обычно "mdl_").
func NewCourseRepo(db *pgxpool.Pool, prefix string) CourseRepo {
	return &courseRepo{db: db, tables: tableReplacer(prefix)}
}

var tableNames = []string{
	"course", "course_sections", "course_modules", "course_format_options", "modules",
	"label", "quiz", "quiz_attempts", "scorm", "scorm_scoes_track",
	"resource", "context", "files",
}

// tableReplacer разворачивает {table} в имя таблицы с префиксом.
func tableReplacer(prefix string) *strings.Replacer {
	pairs := make([]string, 0, len(tableNames)*2)
	for _, t := range tableNames {
		pairs = append(pairs, "{"+t+"}", prefix+t)
	}
	return strings.NewReplacer(pairs...)
}

func (r *courseRepo) sql(q string) string { return r.tables.Replace(q) }

func (r *courseRepo) GetCourse(ctx context.Context, courseID int) (*models.Course, error) {
	var c models.Course
	err := r.db.QueryRow(ctx,
		r.sql(`SELECT id, fullname, shortname, marker FROM {course} WHERE id = $1`),
		courseID,
	).Scan(&c.ID, &c.FullName, &c.ShortName, &c.Marker)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get course %d: %w", courseID, err)
	}
	return &c, nil
}

// ListVisibleSections: видимые разделы с непустым summary, по номеру раздела.
func (r *courseRepo) ListVisibleSections(ctx context.Context, courseID int) ([]models.SectionRecord, error) {
	q := r.sql(`
SELECT id, section, COALESCE(name, ''), COALESCE(summary, ''), COALESCE(sequence, ''), visible = 1
  FROM {course_sections}
 WHERE course = $1 AND visible = 1 AND COALESCE(summary, '') <> ''
 ORDER BY section`)
	return r.querySections(ctx, q, courseID)
}

// ListSections: все разделы курса (для заголовков после перемещения).
func (r *courseRepo) ListSections(ctx context.Context, courseID int) ([]models.SectionRecord, error) {
	q := r.sql(`
SELECT id, section, COALESCE(name, ''), COALESCE(summary, ''), COALESCE(sequence, ''), visible = 1
  FROM {course_sections}
 WHERE course = $1
 ORDER BY section`)
	return r.querySections(ctx, q, courseID)
}

func (r *courseRepo) querySections(ctx context.Context, q string, courseID int) ([]models.SectionRecord, error) {
	rows, err := r.db.Query(ctx, q, courseID)
	if err != nil {
		return nil, fmt.Errorf("list sections of course %d: %w", courseID, err)
	}
	defer rows.Close()

	var out []models.SectionRecord
	for rows.Next() {
		var s models.SectionRecord
		if err := rows.Scan(&s.ID, &s.Number, &s.Name, &s.Summary, &s.Sequence, &s.Visible); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListModules возвращает видимые модули по id с именем и сырым статусом для userID.
// Порядок строк не гарантирован: сортировка по sequence на стороне сервиса.
// Из нескольких попыток теста берётся завершённая, иначе последняя.
func (r *courseRepo) ListModules(ctx context.Context, userID int, moduleIDs []int) ([]models.ModuleRecord, error) {
	if len(moduleIDs) == 0 {
		return nil, nil
	}

	q := r.sql(`
SELECT cm.id, cm.indent, m.name,
       COALESCE(l.name, ''),
       COALESCE(q.name, ''), COALESCE(qa.state, ''),
       COALESCE(s.name, ''), COALESCE(sst.value, '')
  FROM {course_modules} cm
  JOIN {modules} m ON m.id = cm.module
  LEFT JOIN {label} l ON (l.id = cm.instance AND m.name = 'label')
  LEFT JOIN {quiz} q ON (q.id = cm.instance AND m.name = 'quiz')
  LEFT JOIN LATERAL (
        SELECT a.state
          FROM {quiz_attempts} a
         WHERE a.quiz = q.id AND a.userid = $2
         ORDER BY (a.state = 'finished') DESC, a.attempt DESC
         LIMIT 1
  ) qa ON true
  LEFT JOIN {scorm} s ON (s.id = cm.instance AND m.name = 'scorm')
  LEFT JOIN LATERAL (
        SELECT t.value
          FROM {scorm_scoes_track} t
         WHERE t.scormid = s.id AND t.userid = $2
           AND t.element = 'cmi.core.lesson_status'
         ORDER BY t.timemodified DESC
         LIMIT 1
  ) sst ON true
 WHERE cm.id = ANY($1) AND cm.visible = 1`)

	rows, err := r.db.Query(ctx, q, moduleIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer rows.Close()

	var out []models.ModuleRecord
	for rows.Next() {
		var m models.ModuleRecord
		if err := rows.Scan(&m.ID, &m.Indent, &m.Kind,
			&m.LabelName, &m.QuizName, &m.QuizState, &m.ScormName, &m.ScormValue); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// IntroModuleContextID: context id ресурса "_introduction" среди moduleIDs, nil если нет.
func (r *courseRepo) IntroModuleContextID(ctx context.Context, moduleIDs []int) (*int, error) {
	if len(moduleIDs) == 0 {
		return nil, nil
	}

	q := r.sql(`
SELECT c.id
  FROM {context} c
  JOIN {course_modules} cm ON cm.id = c.instanceid
  JOIN {modules} m ON m.id = cm.module
  JOIN {resource} res ON res.id = cm.instance
 WHERE c.contextlevel = $1
   AND m.name = 'resource'
   AND res.name = $2
   AND c.instanceid = ANY($3)
 ORDER BY c.id
 LIMIT 1`)

	var id int
	err := r.db.QueryRow(ctx, q, contextLevelModule, introResourceName, moduleIDs).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("intro module context: %w", err)
	}
	return &id, nil
}

// GetCourseIntro: текст intro ресурса "_introduction" курса, "" если нет.
func (r *courseRepo) GetCourseIntro(ctx context.Context, courseID int) (string, error) {
	var intro string
	err := r.db.QueryRow(ctx,
		r.sql(`SELECT COALESCE(intro, '') FROM {resource} WHERE course = $1 AND name = $2 ORDER BY id LIMIT 1`),
		courseID, introResourceName,
	).Scan(&intro)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("course intro %d: %w", courseID, err)
	}
	return intro, nil
}

// GetIntroFileName: имя последнего файла ресурса в контексте, "" если нет или это каталог ".".
func (r *courseRepo) GetIntroFileName(ctx context.Context, contextID int) (string, error) {
	var name string
	err := r.db.QueryRow(ctx,
		r.sql(`
SELECT filename
  FROM {files}
 WHERE contextid = $1 AND component = 'mod_resource' AND filearea = 'content' AND itemid = 0
 ORDER BY sortorder DESC, filepath DESC, filename DESC
 LIMIT 1`),
		contextID,
	).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("intro file of context %d: %w", contextID, err)
	}
	if name == "." {
		return "", nil
	}
	return name, nil
}

// GetFormatOptions: опции формата курса, сохранённые для курса (без дефолтов).
func (r *courseRepo) GetFormatOptions(ctx context.Context, courseID int) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		r.sql(`
SELECT name, value
  FROM {course_format_options}
 WHERE courseid = $1 AND format = 'turforlag' AND sectionid = 0`),
		courseID,
	)
	if err != nil {
		return nil, fmt.Errorf("format options %d: %w", courseID, err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
			// нечисловые значения пропускаем: в форме они только целые
			continue
		}
		out[name] = n
	}
	return out, rows.Err()
}
