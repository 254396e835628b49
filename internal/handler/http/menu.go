package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mealroll/console-backend-go/internal/domain/menu"
	"github.com/mealroll/console-backend-go/internal/handler/http/response"
)

type MenuHandler interface {
	ListMenus(w http.ResponseWriter, r *http.Request)
	CreateMenu(w http.ResponseWriter, r *http.Request)
	UpdateMenu(w http.ResponseWriter, r *http.Request)
	DeleteMenu(w http.ResponseWriter, r *http.Request)
}

type menuHandlerImpl struct {
	menuService menu.MenuService
}

func NewMenuHandler(menuService menu.MenuService) MenuHandler {
	return &menuHandlerImpl{
		menuService: menuService,
	}
}

// ListMenus implements MenuHandler
func (h *menuHandlerImpl) ListMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.menuService.ListMenus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, menus)
}

// CreateMenu implements MenuHandler
func (h *menuHandlerImpl) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var req menu.CreateMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.menuService.CreateMenu(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Food menu created", created)
}

// UpdateMenu implements MenuHandler
func (h *menuHandlerImpl) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Menu ID must be a number", nil)
		return
	}

	var req menu.UpdateMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.menuService.UpdateMenu(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Food menu updated", updated)
}

// DeleteMenu implements MenuHandler
func (h *menuHandlerImpl) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Menu ID must be a number", nil)
		return
	}

	if err := h.menuService.DeleteMenu(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Food menu deleted", nil)
}
