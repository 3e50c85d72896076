package http

import (
	"net/http"

	"github.com/c-senju/ponto-fazenda/internal/domain/holiday"
	"github.com/c-senju/ponto-fazenda/internal/handler/http/response"
	"github.com/c-senju/ponto-fazenda/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	GetYear(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.Service
}

func NewHolidayHandler(holidayService holiday.Service) HolidayHandler {
	return &holidayHandlerImpl{
		holidayService: holidayService,
	}
}

// GetYear implements HolidayHandler.
func (h *holidayHandlerImpl) GetYear(w http.ResponseWriter, r *http.Request) {
	year, ok := validator.IsValidYear(chi.URLParam(r, "year"))
	if !ok {
		response.BadRequest(w, "Year must be a four digit number", nil)
		return
	}

	response.Success(w, h.holidayService.Resolve(r.Context(), year))
}
