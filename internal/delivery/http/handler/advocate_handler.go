package handler

import (
	"net/http"

	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/infrastructure/breaker"
	"advocate-directory/internal/usecase"
	"advocate-directory/pkg/pagination"
	"advocate-directory/pkg/response"
	"advocate-directory/pkg/validator"
)

type AdvocateHandler struct {
	advocateUsecase usecase.AdvocateUsecase
	validator       *validator.CustomValidator
	pageDefaults    pagination.Defaults
}

func NewAdvocateHandler(
	advocateUsecase usecase.AdvocateUsecase,
	validator *validator.CustomValidator,
	pageDefaults pagination.Defaults,
) *AdvocateHandler {
	return &AdvocateHandler{
		advocateUsecase: advocateUsecase,
		validator:       validator,
		pageDefaults:    pageDefaults,
	}
}

// SearchAdvocates handles the advocate directory search
// @Summary Search advocates
// @Description Filter advocates by a free-text term with pagination
// @Tags Advocates
// @Produce json
// @Param search query string false "Matches name, city, degree, specialties or exact years of experience"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /advocates [get]
func (h *AdvocateHandler) SearchAdvocates(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	params := pagination.Parse(values, h.pageDefaults)

	query := dto.SearchAdvocatesQuery{
		Search: values.Get("search"),
		Page:   params.Page,
		Limit:  params.Limit,
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.advocateUsecase.SearchAdvocates(r.Context(), &query)
	if err != nil {
		if breaker.IsOpen(err) {
			response.ServiceUnavailable(w, "Advocate directory is temporarily unavailable")
			return
		}
		response.InternalServerError(w, "Failed to search advocates")
		return
	}

	meta := &response.Pagination{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}

	response.SuccessWithPagination(w, http.StatusOK, "Advocates retrieved successfully", result.Advocates, meta)
}
