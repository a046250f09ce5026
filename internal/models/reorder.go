package models

const ActionMove = "move"

// ReorderResponse: ответ ajax-перемещения раздела.
type ReorderResponse struct {
	SectionTitles map[int]string `json:"sectiontitles"`
	Current       int            `json:"current"`
	Action        string         `json:"action"`
}

// MoveSectionRequest: тело запроса перемещения.
// Markup: необязательная разметка списка разделов, к которой сервер применит патч.
type MoveSectionRequest struct {
	From   *int   `json:"from"   validate:"required,gte=0"`
	To     *int   `json:"to"     validate:"required,gte=0"`
	Markup string `json:"markup,omitempty"`
}
