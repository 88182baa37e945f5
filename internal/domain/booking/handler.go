package booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medibook/medibook/internal/platform/auth"
	"github.com/medibook/medibook/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "doctor", "patient"))
	read.GET("/appointments/:id", h.GetAppointment)
	read.GET("/appointments", h.ListAppointments)

	write := api.Group("", auth.RequireRole("admin", "patient"))
	write.POST("/appointments", h.BookAppointment)
}

// httpStatus maps booking failures to response codes: a taken slot is a
// conflict, a rejected amount or time is unprocessable, a missing referenced
// record is not found, unparseable fields are a plain bad request. Anything
// unclassified is a storage or lookup fault and stays a 500.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, ErrSlotAlreadyBooked):
		return http.StatusConflict
	case errors.Is(err, ErrOutsideAvailability), errors.Is(err, ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUpstreamLookup):
		return http.StatusNotFound
	case errors.Is(err, ErrMalformedSchedule):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) BookAppointment(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appt, err := h.svc.Book(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(httpStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appt, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrAppointmentNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appt)
}

// ListAppointments filters by patient_id or doctor_id when given, otherwise
// returns the full paginated ledger. The doctor listing accepts an optional
// hospital_id restriction.
func (h *Handler) ListAppointments(c echo.Context) error {
	ctx := c.Request().Context()
	pg := pagination.FromContext(c)

	if raw := c.QueryParam("patient_id"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		items, total, err := h.svc.ListByPatient(ctx, patientID, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
	}

	if raw := c.QueryParam("doctor_id"); raw != "" {
		doctorID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
		}
		var hospitalID *uuid.UUID
		if rawHosp := c.QueryParam("hospital_id"); rawHosp != "" {
			id, err := uuid.Parse(rawHosp)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid hospital_id")
			}
			hospitalID = &id
		}
		items, err := h.svc.ListByDoctor(ctx, doctorID, hospitalID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, items)
	}

	items, total, err := h.svc.List(ctx, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
