package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"verniti/internal/app"
	"verniti/internal/domain"
)

type Handlers struct {
	Hotels  *app.HotelService
	Reviews *app.ReviewService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/hotels", func(r chi.Router) {
		r.Get("/", h.listHotels)
		r.Post("/", h.createHotel)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getHotel)
			r.Put("/", h.updateHotel)
			r.Delete("/", h.deleteHotel)
			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.listReviews)
				r.Post("/", h.createReview)
				r.Get("/{rid}", h.getReview)
				r.Put("/{rid}", h.updateReview)
				r.Delete("/{rid}", h.deleteReview)
			})
		})
	})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError maps the domain error taxonomy onto status codes. Anything not
// in the taxonomy is a store/driver failure: logged, reported as a plain 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		invalidID *domain.InvalidIDError
		malformed *domain.MalformedBodyError
		missing   *domain.MissingFieldError
		invalid   *domain.InvalidFieldError
	)
	switch {
	case errors.As(err, &invalidID),
		errors.As(err, &malformed),
		errors.As(err, &missing),
		errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	default:
		log.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeBody(r *http.Request) (domain.Document, error) {
	var doc domain.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		return nil, &domain.MalformedBodyError{Err: err}
	}
	if doc == nil {
		return nil, &domain.MalformedBodyError{}
	}
	return doc, nil
}

// ---- hotels ----

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := app.HotelQuery{
		City: r.URL.Query().Get("city"),
		Name: r.URL.Query().Get("name"),
	}
	if rs := r.URL.Query().Get("rating"); rs != "" {
		n, err := strconv.Atoi(rs)
		if err != nil {
			writeError(w, &domain.InvalidFieldError{Field: "rating", Reason: "must be an integer"})
			return
		}
		q.Rating = &n
	}
	out, err := h.Hotels.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Hotels.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Hotels.Create(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Hotels.Update(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Hotels.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "hotel deleted"})
}

// ---- reviews ----

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reviews.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getReview(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Reviews.Get(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "rid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Reviews.Create(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (h *Handlers) updateReview(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Reviews.Update(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "rid"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.Reviews.Delete(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "rid")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}
