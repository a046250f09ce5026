package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"turforlag/internal/logger"
	"turforlag/internal/middleware"
	"turforlag/internal/render"
	"turforlag/internal/repository"
	"turforlag/internal/tabs"
	"turforlag/internal/utils/helpers"

	"go.uber.org/zap"
)

type CourseHandler struct {
	structure     StructureBuilder
	view          ViewLoader
	renderer      render.Renderer
	siteURL       string
	backgroundURL string
}

func NewCourseHandler(structure StructureBuilder, view ViewLoader, renderer render.Renderer, siteURL, backgroundURL string) *CourseHandler {
	return &CourseHandler{
		structure:     structure,
		view:          view,
		renderer:      renderer,
		siteURL:       siteURL,
		backgroundURL: backgroundURL,
	}
}

// Structure godoc
// @Summary Структура курса с прогрессом пользователя
// @Tags course
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID курса"
// @Success 200 {array} models.Section
// @Failure 400 {string} string "Некорректный ID"
// @Failure 500 {string} string "Ошибка построения структуры"
// @Router /api/courses/{id}/structure [get]
func (h *CourseHandler) Structure(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	courseID, err := pathInt(r, "id")
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Некорректный ID курса")
		return
	}

	sections, err := h.structure.Build(r.Context(), courseID, userID(r))
	if err != nil {
		log.Error("Ошибка построения структуры курса", zap.Int("course_id", courseID), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка построения структуры")
		return
	}

	log.Info("Структура курса получена", zap.Int("course_id", courseID), zap.Int("sections", len(sections)))
	helpers.JSON(w, http.StatusOK, sections)
}

// View godoc
// @Summary Страница курса (вкладки или список разделов в режиме редактирования)
// @Tags course
// @Security ApiKeyAuth
// @Produce html
// @Param id path int true "ID курса"
// @Param edit query int false "1: режим редактирования (editingteacher/manager)"
// @Success 200 {string} string "HTML"
// @Failure 404 {string} string "Курс не найден"
// @Router /courses/{id} [get]
func (h *CourseHandler) View(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	courseID, err := pathInt(r, "id")
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Некорректный ID курса")
		return
	}
	editing := r.URL.Query().Get("edit") == "1" && middleware.CanEdit(r)

	view, err := h.view.Load(r.Context(), courseID, userID(r), editing)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Курс не найден", zap.Int("course_id", courseID))
		helpers.Error(w, http.StatusNotFound, "Курс не найден")
		return
	}
	if err != nil {
		log.Error("Ошибка загрузки страницы курса", zap.Int("course_id", courseID), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка загрузки курса")
		return
	}

	ctrl := tabs.New(courseID, tabs.FromStructure(h.siteURL, view.Sections), tabs.NewCookieStore(w, r, "/"), nil)

	var buf bytes.Buffer
	page := render.Page{
		View:          view,
		Editing:       editing,
		State:         ctrl.State(),
		SiteURL:       h.siteURL,
		BackgroundURL: h.backgroundURL,
	}
	if err := h.renderer.Render(&buf, page); err != nil {
		log.Error("Ошибка рендера страницы курса", zap.Int("course_id", courseID), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка рендера")
		return
	}

	helpers.HTML(w, http.StatusOK, buf.Bytes())
}
