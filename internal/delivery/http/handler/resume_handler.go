package handler

import (
	"errors"
	"strconv"

	"resume-forge/internal/delivery/http/dto"
	"resume-forge/internal/delivery/http/middleware"
	"resume-forge/internal/pkg/response"
	"resume-forge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	generate usecase.GenerateUsecase
	history  usecase.HistoryUsecase
}

func NewResumeHandler(generate usecase.GenerateUsecase, history usecase.HistoryUsecase) *ResumeHandler {
	return &ResumeHandler{generate: generate, history: history}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/resume")
	grp.Post("/generate", h.Generate)
	grp.Get("/generations", h.ListGenerations)
}

func (h *ResumeHandler) Generate(c fiber.Ctx) error {
	var req dto.GenerateResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.generate.Generate(c.Context(), req.ToDomain())
	if err != nil {
		return mapPipelineError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GenerateResumeResponse{
		Status: "success",
		PdfURL: res.URL,
	})
}

func (h *ResumeHandler) ListGenerations(c fiber.Ctx) error {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	items, err := h.history.RecentGenerations(c.Context(), limit)
	if err != nil {
		if errors.Is(err, usecase.ErrHistoryUnavailable) {
			return middleware.NewAppError(fiber.StatusNotFound, "Generation history is not enabled", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.GenerationResponse, 0, len(items))
	for _, g := range items {
		res = append(res, dto.GenerationResponse{
			ID:         g.ID.String(),
			Filename:   g.Filename,
			PublicURL:  g.PublicURL,
			Status:     g.Status,
			ErrorKind:  g.ErrorKind,
			DurationMS: g.DurationMS,
			CreatedAt:  g.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

// mapPipelineError turns pipeline failure kinds into transport errors.
// Validation faults are the client's; everything else reports as a server
// failure. Compiler log text rides along in Data because it only reflects
// the submitted content.
func mapPipelineError(err error) error {
	pe, ok := usecase.AsPipelineError(err)
	if !ok {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	switch pe.Kind {
	case usecase.KindValidationError:
		return middleware.NewAppError(fiber.StatusBadRequest, pe.Message, fiber.Map{"kind": pe.Kind}, err)
	case usecase.KindCompileError, usecase.KindTimeout, usecase.KindArtifactMissing:
		data := fiber.Map{"kind": pe.Kind}
		if pe.Detail != "" {
			data["compiler_log"] = pe.Detail
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, pe.Message, data, err)
	case usecase.KindUploadError:
		return middleware.NewAppError(fiber.StatusInternalServerError, pe.Message, fiber.Map{"kind": pe.Kind}, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
