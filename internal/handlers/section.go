package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"turforlag/internal/logger"
	"turforlag/internal/models"
	"turforlag/internal/repository"
	"turforlag/internal/tabs"
	"turforlag/internal/utils/helpers"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type SectionHandler struct {
	reorder  Reorderer
	validate *validator.Validate
}

func NewSectionHandler(reorder Reorderer) *SectionHandler {
	return &SectionHandler{reorder: reorder, validate: validator.New()}
}

type moveSectionResponse struct {
	*models.ReorderResponse
	Markup string `json:"markup,omitempty"`
}

// Move godoc
// @Summary Ответ на перемещение раздела (editingteacher/manager)
// @Description Возвращает заголовки разделов и текущий раздел. Если передан markup
// @Description списка разделов, он возвращается уже исправленным.
// @Tags sections
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID курса"
// @Param input body models.MoveSectionRequest true "Откуда и куда"
// @Success 200 {object} moveSectionResponse
// @Failure 400 {string} string "Ошибка запроса"
// @Failure 404 {string} string "Курс не найден"
// @Router /api/courses/{id}/sections/move [post]
func (h *SectionHandler) Move(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	courseID, err := pathInt(r, "id")
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Некорректный ID курса")
		return
	}

	var req models.MoveSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при перемещении раздела", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Warn("Невалидный запрос перемещения раздела", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Поля from и to обязательны и не меньше 0")
		return
	}
	from, to := *req.From, *req.To

	resp, err := h.reorder.Move(r.Context(), courseID, from, to)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.Error(w, http.StatusNotFound, "Курс не найден")
		return
	}
	if err != nil {
		log.Error("Ошибка перемещения раздела", zap.Int("course_id", courseID), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка перемещения раздела")
		return
	}

	out := moveSectionResponse{ReorderResponse: resp}
	if req.Markup != "" {
		if out.Markup, err = patchMarkup(req.Markup, resp, from, to); err != nil {
			log.Warn("Не удалось разобрать markup", zap.Error(err))
			helpers.Error(w, http.StatusBadRequest, "Некорректный markup")
			return
		}
	}

	helpers.JSON(w, http.StatusOK, out)
}

// patchMarkup меняет местами меню добавления и применяет ответ к списку разделов.
func patchMarkup(markup string, resp *models.ReorderResponse, from, to int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	tabs.SwapSections(doc, from, to)
	tabs.ApplyReorder(doc, resp, from, to)
	return doc.Find("body").Html()
}
