package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/usecase"
	"clinic-appointment-service/pkg/response"
	"clinic-appointment-service/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentTypeHandler struct {
	typeUsecase usecase.AppointmentTypeUsecase
	validator   *validator.CustomValidator
}

func NewAppointmentTypeHandler(typeUsecase usecase.AppointmentTypeUsecase, validator *validator.CustomValidator) *AppointmentTypeHandler {
	return &AppointmentTypeHandler{
		typeUsecase: typeUsecase,
		validator:   validator,
	}
}

func (h *AppointmentTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointmentType, err := h.typeUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrAppointmentTypeExists {
			response.Conflict(w, "Appointment type already exists")
			return
		}
		response.InternalServerError(w, "Failed to create appointment type")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment type created successfully", appointmentType)
}

func (h *AppointmentTypeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	appointmentTypes, err := h.typeUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointment types")
		return
	}

	response.Success(w, http.StatusOK, "Appointment types retrieved successfully", appointmentTypes)
}

func (h *AppointmentTypeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	typeID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment type ID", nil)
		return
	}

	appointmentType, err := h.typeUsecase.GetByID(r.Context(), typeID)
	if err != nil {
		if err == usecase.ErrAppointmentTypeNotFound {
			response.NotFound(w, "Appointment type not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment type")
		return
	}

	response.Success(w, http.StatusOK, "Appointment type retrieved successfully", appointmentType)
}

func (h *AppointmentTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	typeID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment type ID", nil)
		return
	}

	var req dto.UpdateAppointmentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointmentType, err := h.typeUsecase.Update(r.Context(), typeID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentTypeNotFound:
			response.NotFound(w, "Appointment type not found")
		case usecase.ErrAppointmentTypeExists:
			response.Conflict(w, "Appointment type already exists")
		default:
			response.InternalServerError(w, "Failed to update appointment type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment type updated successfully", appointmentType)
}

func (h *AppointmentTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	typeID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment type ID", nil)
		return
	}

	if err := h.typeUsecase.Delete(r.Context(), typeID); err != nil {
		if err == usecase.ErrAppointmentTypeNotFound {
			response.NotFound(w, "Appointment type not found")
			return
		}
		response.InternalServerError(w, "Failed to delete appointment type")
		return
	}

	response.Success(w, http.StatusOK, "Appointment type deleted successfully", nil)
}
