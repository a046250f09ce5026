package handlers

import (
	"net/http"

	"turforlag/internal/logger"
	"turforlag/internal/tabs"
	"turforlag/internal/utils/helpers"

	"go.uber.org/zap"
)

type TabsHandler struct {
	structure StructureBuilder
	siteURL   string
}

func NewTabsHandler(structure StructureBuilder, siteURL string) *TabsHandler {
	return &TabsHandler{structure: structure, siteURL: siteURL}
}

type tabStateResponse struct {
	State    *tabs.State `json:"state,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

// ActivateTop godoc
// @Summary Открыть вкладку раздела
// @Tags tabs
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID курса"
// @Param index path int true "Индекс вкладки"
// @Success 200 {object} tabStateResponse
// @Failure 404 {string} string "Вкладка не найдена"
// @Router /courses/{id}/tabs/top/{index} [post]
func (h *TabsHandler) ActivateTop(w http.ResponseWriter, r *http.Request) {
	h.activate(w, r, func(c *tabs.Controller, i int) bool { return c.ActivateTop(i) })
}

// ActivateSub godoc
// @Summary Открыть (или свернуть) подвкладку в текущем разделе
// @Description Для прямой ссылки (тест или SCORM без подмодулей) вместо состояния возвращается redirect.
// @Tags tabs
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID курса"
// @Param index path int true "Индекс подвкладки"
// @Success 200 {object} tabStateResponse
// @Failure 404 {string} string "Вкладка не найдена"
// @Router /courses/{id}/tabs/sub/{index} [post]
func (h *TabsHandler) ActivateSub(w http.ResponseWriter, r *http.Request) {
	h.activate(w, r, func(c *tabs.Controller, i int) bool { return c.ActivateSub(i) })
}

func (h *TabsHandler) activate(w http.ResponseWriter, r *http.Request, fn func(*tabs.Controller, int) bool) {
	log := logger.WithCtx(r.Context())

	courseID, err := pathInt(r, "id")
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Некорректный ID курса")
		return
	}
	index, err := pathInt(r, "index")
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Некорректный индекс вкладки")
		return
	}

	sections, err := h.structure.Build(r.Context(), courseID, userID(r))
	if err != nil {
		log.Error("Ошибка построения структуры курса", zap.Int("course_id", courseID), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка построения структуры")
		return
	}

	var redirect string
	nav := tabs.NavigatorFunc(func(url string) { redirect = url })
	ctrl := tabs.New(courseID, tabs.FromStructure(h.siteURL, sections), tabs.NewCookieStore(w, r, "/"), nav)

	ok := fn(ctrl, index)
	if redirect != "" {
		log.Info("Прямая ссылка на активность", zap.Int("course_id", courseID), zap.String("url", redirect))
		helpers.JSON(w, http.StatusOK, tabStateResponse{Redirect: redirect})
		return
	}
	if !ok {
		log.Warn("Вкладка не найдена", zap.Int("course_id", courseID), zap.Int("index", index))
		helpers.Error(w, http.StatusNotFound, "Вкладка не найдена")
		return
	}

	state := ctrl.State()
	helpers.JSON(w, http.StatusOK, tabStateResponse{State: &state})
}
