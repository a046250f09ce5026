package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"turforlag/internal/logger"
	"turforlag/internal/models"
	"turforlag/internal/repository"

	"go.uber.org/zap"
)

type StructureService struct {
	repo repository.CourseRepo
}

func NewStructureService(repo repository.CourseRepo) *StructureService {
	return &StructureService{repo: repo}
}

// Build строит дерево разделов курса со статусами прохождения для userID.
// Неизвестный курс даёт пустой список, не ошибку.
func (s *StructureService) Build(ctx context.Context, courseID, userID int) ([]models.Section, error) {
	log := logger.WithCtx(ctx).With(zap.Int("course_id", courseID))

	records, err := s.repo.ListVisibleSections(ctx, courseID)
	if err != nil {
		log.Error("structure: ошибка чтения разделов", zap.Error(err))
		return nil, err
	}

	out := make([]models.Section, 0, len(records))
	for _, rec := range records {
		sec := models.Section{Section: rec.Summary, Number: rec.Number}

		if rec.Number == 0 {
			sec.CourseID = courseID
			if ids, ok := ParseSequence(rec.Sequence); ok {
				ctxID, err := s.repo.IntroModuleContextID(ctx, ids)
				if err != nil {
					log.Error("structure: ошибка поиска intro-ресурса", zap.Error(err))
					return nil, err
				}
				sec.IntroModuleContextID = ctxID
			}
			out = append(out, sec)
			continue
		}

		ids, ok := ParseSequence(rec.Sequence)
		if ok {
			mods, err := s.repo.ListModules(ctx, userID, ids)
			if err != nil {
				log.Error("structure: ошибка чтения модулей раздела",
					zap.Int("section", rec.Number), zap.Error(err))
				return nil, err
			}
			sortBySequence(mods, ids)
			sec.Parts = buildParts(mods, log.With(zap.Int("section", rec.Number)))
		} else if strings.TrimSpace(rec.Sequence) != "" {
			log.Warn("structure: некорректный sequence раздела",
				zap.Int("section", rec.Number), zap.String("sequence", rec.Sequence))
		}

		if len(sec.Parts) > 0 {
			statuses := make([]models.Status, len(sec.Parts))
			for i, p := range sec.Parts {
				statuses[i] = p.Status
			}
			sec.Status, _ = models.Rollup(statuses)
		}

		out = append(out, sec)
	}

	log.Debug("structure: дерево построено", zap.Int("sections", len(out)))
	return out, nil
}

// ParseSequence разбирает "12,15,18" в id модулей.
// Пустая строка или любой нечисловой элемент: ok == false.
func ParseSequence(seq string) ([]int, bool) {
	seq = strings.TrimSpace(seq)
	if seq == "" {
		return nil, false
	}

	parts := strings.Split(seq, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || id <= 0 {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// sortBySequence упорядочивает строки как в sequence раздела.
func sortBySequence(mods []models.ModuleRecord, ids []int) {
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		if _, seen := pos[id]; !seen {
			pos[id] = i
		}
	}
	sort.SliceStable(mods, func(a, b int) bool {
		return pos[mods[a].ID] < pos[mods[b].ID]
	})
}

// buildParts делит модули на части по отступу: 0 открывает новую часть,
// ≥1 добавляется подмодулем к последней части. Подмодуль до первой части отбрасывается.
func buildParts(mods []models.ModuleRecord, log *zap.Logger) []models.Part {
	var parts []models.Part
	for _, m := range mods {
		if m.Indent == 0 {
			parts = append(parts, newPart(len(parts), m))
			continue
		}

		sub, ok := newSubModule(m)
		if !ok {
			continue
		}
		if len(parts) == 0 {
			log.Debug("structure: подмодуль без родительской части отброшен", zap.Int("module_id", m.ID))
			continue
		}
		last := &parts[len(parts)-1]
		last.Modules = append(last.Modules, sub)
	}

	for i := range parts {
		if len(parts[i].Modules) == 0 {
			continue
		}
		statuses := make([]models.Status, len(parts[i].Modules))
		for j, sub := range parts[i].Modules {
			statuses[j] = sub.Status
		}
		parts[i].Status, _ = models.Rollup(statuses)
	}
	return parts
}

// newPart: часть верхнего уровня. Модуль неизвестного вида даёт часть без имени и статуса.
func newPart(pos int, m models.ModuleRecord) models.Part {
	p := models.Part{Position: pos}
	switch {
	case m.LabelName != "":
		p.Name, p.Type, p.ModuleID = m.LabelName, models.ModuleLabel, m.ID
	case m.QuizName != "":
		p.Name, p.Type, p.ModuleID = m.QuizName, models.ModuleQuiz, m.ID
		p.Status = models.QuizStatus(m.QuizState)
	case m.ScormName != "":
		p.Name, p.Type, p.ModuleID = m.ScormName, models.ModuleScorm, m.ID
		p.Status = models.ScormStatus(m.ScormValue)
	}
	return p
}

func newSubModule(m models.ModuleRecord) (models.SubModule, bool) {
	switch {
	case m.QuizName != "":
		return models.SubModule{
			Name: m.QuizName, Type: models.ModuleQuiz, ModuleID: m.ID,
			Status: models.QuizStatus(m.QuizState),
		}, true
	case m.ScormName != "":
		return models.SubModule{
			Name: m.ScormName, Type: models.ModuleScorm, ModuleID: m.ID,
			Status: models.ScormStatus(m.ScormValue),
		}, true
	}
	return models.SubModule{}, false
}
