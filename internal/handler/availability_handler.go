package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/candidatehub/interview-availability/internal/domain"
	"github.com/candidatehub/interview-availability/internal/service/availability"
)

type availabilityResolver interface {
	ResolveTemplate(ctx context.Context, templateID int64, now time.Time) (*availability.Result, error)
}

type AvailabilityHandler struct {
	resolver availabilityResolver
}

func NewAvailabilityHandler(resolver availabilityResolver) *AvailabilityHandler {
	return &AvailabilityHandler{resolver: resolver}
}

type interviewerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type slotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type availabilityResponse struct {
	InterviewID     int64                 `json:"interviewId"`
	Name            string                `json:"name"`
	DurationMinutes int                   `json:"durationMinutes"`
	Interviewers    []interviewerResponse `json:"interviewers"`
	AvailableSlots  []slotResponse        `json:"availableSlots"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HandleAvailability serves GET /api/v1/interviews/:id/availability. The
// optional from query parameter substitutes a virtual now, which keeps the
// endpoint reproducible for debugging and testing.
func (h *AvailabilityHandler) HandleAvailability(c *gin.Context) {
	ctx := c.Request.Context()

	templateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || templateID <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: "interview id must be a positive integer",
		})
		return
	}

	var now time.Time
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "bad_request",
				Message: "invalid from time format, expected RFC3339",
			})
			return
		}
		now = parsed.UTC()
		slog.InfoContext(ctx, "using virtual time",
			slog.Time("virtual_now", now),
		)
	} else {
		now = time.Now().UTC()
	}

	result, err := h.resolver.ResolveTemplate(ctx, templateID, now)
	if err != nil {
		respondResolutionError(c, ctx, templateID, err)
		return
	}

	c.JSON(http.StatusOK, toAvailabilityResponse(result))
}

func respondResolutionError(c *gin.Context, ctx context.Context, templateID int64, err error) {
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: "interview template not found",
		})
	case errors.Is(err, domain.ErrInvalidDuration):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error:   "invalid_duration",
			Message: "interview duration must be a positive number of minutes",
		})
	case errors.Is(err, domain.ErrProviderUnavailable), errors.Is(err, domain.ErrMalformedBusyData):
		slog.ErrorContext(ctx, "availability resolution failed upstream",
			slog.Int64("template_id", templateID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusBadGateway, errorResponse{
			Error:   "upstream_error",
			Message: "could not obtain interviewer busy data",
		})
	default:
		slog.ErrorContext(ctx, "availability resolution failed",
			slog.Int64("template_id", templateID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "internal_error",
			Message: "failed to resolve availability",
		})
	}
}

func toAvailabilityResponse(result *availability.Result) availabilityResponse {
	interviewers := make([]interviewerResponse, 0, len(result.Template.Interviewers))
	for _, iv := range result.Template.Interviewers {
		interviewers = append(interviewers, interviewerResponse{
			ID:   iv.ID,
			Name: iv.Name,
		})
	}

	slots := make([]slotResponse, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, slotResponse{
			Start: s.Start.UTC().Format(time.RFC3339),
			End:   s.End.UTC().Format(time.RFC3339),
		})
	}

	return availabilityResponse{
		InterviewID:     result.Template.ID,
		Name:            result.Template.Name,
		DurationMinutes: result.Template.DurationMinutes,
		Interviewers:    interviewers,
		AvailableSlots:  slots,
	}
}
