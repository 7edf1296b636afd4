package menu_items

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/menu"
	"github.com/m04kA/SMC-ReservationService/internal/service/menu/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMenuID      = "некорректный ID меню"
	msgInvalidInput       = "название обязательно, длительность должна быть больше 0, цена не может быть отрицательной"
	msgMenuNotFound       = "меню не найдено"
	msgMenuInUse          = "нельзя удалить меню, на которое есть бронирования"
)

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/menu-items
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /menu-items - Failed to list menu: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// Create POST /api/v1/admin/menu-items
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.MenuItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/menu-items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/menu-items", err)
		return
	}

	h.logger.Info("POST /admin/menu-items - Menu item created: id=%s", item.ID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}

// Update PUT /api/v1/admin/menu-items/{menuId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["menuId"])
	if err != nil {
		h.logger.Warn("PUT /admin/menu-items/{id} - Invalid menu ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	var req models.MenuItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/menu-items/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/menu-items/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/menu-items/{id} - Menu item updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, item)
}

// Delete DELETE /api/v1/admin/menu-items/{menuId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["menuId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/menu-items/{id} - Invalid menu ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /admin/menu-items/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/menu-items/{id} - Menu item deleted: id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, menu.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, menu.ErrMenuItemNotFound):
		h.logger.Warn("%s - Menu item not found", route)
		handlers.RespondNotFound(w, msgMenuNotFound)

	case errors.Is(err, menu.ErrMenuItemInUse):
		h.logger.Warn("%s - Menu item in use", route)
		handlers.RespondConflict(w, msgMenuInUse)

	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
