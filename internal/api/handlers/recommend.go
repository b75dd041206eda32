package handlers

import (
	"career-guidance-service/internal/api/dto"
	"career-guidance-service/internal/services"
	"errors"
	"log/slog"
	"net/http"
)

type RecommendHandler struct {
	Recommender *services.Recommender
}

// Recommend turns quiz answers into career and course suggestions, with
// nearby institutions when the caller shares a location.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.RecommendRequest
	if !decodeBody(w, r, &req) {
		return
	}

	svcReq := services.RecommendRequest{Answers: req.Answers}
	if p, ok := req.Location.Point(); ok {
		svcReq.Location = &p
	}

	res, err := h.Recommender.Recommend(r.Context(), svcReq)
	if err != nil {
		var moe *services.ModelOutputError
		switch {
		case errors.Is(err, services.ErrNoAnswers):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.As(err, &moe):
			writeError(w, r, http.StatusInternalServerError, moe.Error())
		default:
			slog.ErrorContext(r.Context(), "recommend failed", "err", err)
			writeError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}
