package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/Bryan-Quispe/Computer-Parts/internal/converter"
	"github.com/Bryan-Quispe/Computer-Parts/internal/model"
	"github.com/Bryan-Quispe/Computer-Parts/platform/logger"
	partsv1 "github.com/Bryan-Quispe/Computer-Parts/pkg/api/parts/v1"
)

const (
	detailNotFound          = "Part not found"
	detailNotFoundUnchanged = "Part not found or data unchanged"
	detailDuplicate         = "A part with this ID already exists"
	detailNegativeStock     = "Stock cannot be negative"
	detailInvalidBody       = "invalid request body"
	detailInternal          = "internal error"
)

type PartService interface {
	ListParts(ctx context.Context) ([]*model.Part, error)
	PartByCustomID(ctx context.Context, id model.CustomID) (*model.Part, error)
	PartByGeneratedID(ctx context.Context, id model.GeneratedID) (*model.Part, error)
	Create(ctx context.Context, p model.Part) (model.GeneratedID, error)
	UpdateByCustomID(ctx context.Context, id model.CustomID, upd model.PartUpdate) (int64, error)
	DeleteByCustomID(ctx context.Context, id model.CustomID) (int64, error)
	UpdateByGeneratedID(ctx context.Context, id model.GeneratedID, p model.Part) (int64, error)
	DeleteByGeneratedID(ctx context.Context, id model.GeneratedID) (int64, error)
}

type handler struct {
	svc PartService
}

func NewPartHandler(service PartService) *handler {
	return &handler{svc: service}
}

// Routes registers the parts API on r. The static mongo segment wins over
// the {id} wildcard, so a custom id can never shadow the generated id routes.
func (h *handler) Routes(r chi.Router) {
	r.Route("/parts", func(r chi.Router) {
		r.Get("/", h.ListParts)
		r.Post("/", h.CreatePart)

		r.Route("/mongo/{id}", func(r chi.Router) {
			r.Get("/", h.GetPartByGeneratedID)
			r.Put("/", h.UpdatePartByGeneratedID)
			r.Delete("/", h.DeletePartByGeneratedID)
		})

		r.Get("/{id}", h.GetPart)
		r.Put("/{id}", h.UpdatePart)
		r.Delete("/{id}", h.DeletePart)
	})
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.ListParts(r.Context())
	if err != nil {
		writeError(w, r, err, detailNotFound)
		return
	}

	render.JSON(w, r, converter.PartsToAPI(parts))
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.PartByCustomID(r.Context(), customIDParam(r))
	if err != nil {
		writeError(w, r, err, detailNotFound)
		return
	}

	render.JSON(w, r, converter.PartToAPIWithStatus(p))
}

func (h *handler) CreatePart(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePart(w, r)
	if !ok {
		return
	}

	id, err := h.svc.Create(r.Context(), p)
	if err != nil {
		writeError(w, r, err, detailNotFound)
		return
	}

	render.JSON(w, r, converter.InsertedToAPI(id))
}

func (h *handler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePart(w, r)
	if !ok {
		return
	}

	n, err := h.svc.UpdateByCustomID(r.Context(), customIDParam(r), p.AsUpdate())
	if err != nil {
		writeError(w, r, err, detailNotFoundUnchanged)
		return
	}
	if n == 0 {
		writeDetail(w, r, http.StatusNotFound, detailNotFoundUnchanged)
		return
	}

	render.JSON(w, r, converter.PartUpdatedMessage())
}

func (h *handler) DeletePart(w http.ResponseWriter, r *http.Request) {
	id := customIDParam(r)

	n, err := h.svc.DeleteByCustomID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, detailNotFound)
		return
	}
	if n == 0 {
		writeDetail(w, r, http.StatusNotFound, detailNotFound)
		return
	}

	render.JSON(w, r, converter.PartDeletedMessage(id))
}

func (h *handler) GetPartByGeneratedID(w http.ResponseWriter, r *http.Request) {
	id, ok := generatedIDParam(w, r)
	if !ok {
		return
	}

	p, err := h.svc.PartByGeneratedID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, detailNotFound)
		return
	}

	render.JSON(w, r, converter.PartToAPIWithStatus(p))
}

func (h *handler) UpdatePartByGeneratedID(w http.ResponseWriter, r *http.Request) {
	id, ok := generatedIDParam(w, r)
	if !ok {
		return
	}
	p, ok := decodePart(w, r)
	if !ok {
		return
	}

	n, err := h.svc.UpdateByGeneratedID(r.Context(), id, p)
	if err != nil {
		writeError(w, r, err, detailNotFound)
		return
	}
	if n == 0 {
		writeDetail(w, r, http.StatusNotFound, detailNotFound)
		return
	}

	render.JSON(w, r, converter.PartUpdatedMessage())
}

func (h *handler) DeletePartByGeneratedID(w http.ResponseWriter, r *http.Request) {
	id, ok := generatedIDParam(w, r)
	if !ok {
		return
	}

	n, err := h.svc.DeleteByGeneratedID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, detailNotFound)
		return
	}
	if n == 0 {
		writeDetail(w, r, http.StatusNotFound, detailNotFound)
		return
	}

	render.JSON(w, r, converter.PartDeletedByGeneratedIDMessage(id))
}

// chi matches on RawPath when it is set, so the param is still escaped only
// in that case.
func customIDParam(r *http.Request) model.CustomID {
	raw := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return model.CustomID(raw)
	}
	if s, err := url.PathUnescape(raw); err == nil {
		raw = s
	}
	return model.CustomID(raw)
}

func generatedIDParam(w http.ResponseWriter, r *http.Request) (model.GeneratedID, bool) {
	id, err := model.ParseGeneratedID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, detailNotFound)
		return model.GeneratedID{}, false
	}
	return id, true
}

func decodePart(w http.ResponseWriter, r *http.Request) (model.Part, bool) {
	var req partsv1.PartRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		logger.Warn(r.Context(), "decode part body", logger.ErrorF(err))
		writeDetail(w, r, http.StatusBadRequest, detailInvalidBody)
		return model.Part{}, false
	}

	p, err := model.NewPart(converter.PartRequestToInput(&req))
	if err != nil {
		writeError(w, r, err, detailNotFound)
		return model.Part{}, false
	}
	return p, true
}

// writeError translates a service or validation error into a status code and
// error body. notFound is the detail used for ErrPartNotFound.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, model.ErrPartNotFound):
		writeDetail(w, r, http.StatusNotFound, notFound)
	case errors.Is(err, model.ErrDuplicatePartID):
		writeDetail(w, r, http.StatusBadRequest, detailDuplicate)
	case errors.Is(err, model.ErrNegativeStock):
		writeDetail(w, r, http.StatusBadRequest, detailNegativeStock)
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrInvalidArgument):
		writeDetail(w, r, http.StatusBadRequest, err.Error())
	default:
		logger.Error(r.Context(), "unexpected error",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
		writeDetail(w, r, http.StatusInternalServerError, detailInternal)
	}
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	render.Status(r, status)
	render.JSON(w, r, partsv1.ErrorResponse{Detail: detail})
}
