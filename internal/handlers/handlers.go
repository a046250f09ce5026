package handlers

import (
	"context"
	"net/http"
	"strconv"

	"turforlag/internal/models"
	"turforlag/internal/reqctx"
	"turforlag/internal/services"

	"github.com/gorilla/mux"
)

// StructureBuilder строит дерево разделов курса для пользователя.
type StructureBuilder interface {
	Build(ctx context.Context, courseID, userID int) ([]models.Section, error)
}

// ViewLoader собирает данные страницы курса.
type ViewLoader interface {
	Load(ctx context.Context, courseID, userID int, editing bool) (*services.CourseView, error)
}

// Reorderer пересчитывает заголовки после перемещения раздела.
type Reorderer interface {
	Move(ctx context.Context, courseID, from, to int) (*models.ReorderResponse, error)
}

func pathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

func userID(r *http.Request) int {
	id, _ := reqctx.GetUserID(r.Context())
	return id
}
