package employee

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"employees/internal/app/server/api/http/apierror"
	"employees/internal/domain/employee"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    employee.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service employee.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	list, err := h.service.List(ctx)
	if err != nil {
		return nil, apierror.Internal()
	}

	return &listOutput{Body: list}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*findOutput, error) {
	e, err := h.service.Find(ctx, input.ID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return &findOutput{Status: http.StatusNotFound}, nil
		}
		return nil, apierror.Internal()
	}

	body, err := json.Marshal(e)
	if err != nil {
		h.log.Error("failed to encode employee", "id", input.ID, "error", err)
		return nil, apierror.Internal()
	}

	return &findOutput{
		Status:      http.StatusOK,
		ContentType: "application/json",
		Body:        body,
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	id, err := h.service.Create(ctx, input.Body.patch())
	if err != nil {
		return nil, apierror.BadRequest(err)
	}

	return &createOutput{
		Location: basePath + "/" + strconv.FormatInt(int64(id), 10),
	}, nil
}

// update answers 204 whether or not a row matched.
func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	if _, err := h.service.Update(ctx, input.ID, input.Body.patch()); err != nil {
		return nil, apierror.BadRequest(err)
	}

	return &updateOutput{}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*deleteOutput, error) {
	affected, err := h.service.Delete(ctx, input.ID)
	if err != nil {
		return nil, apierror.Internal()
	}

	if affected == 0 {
		return &deleteOutput{Status: http.StatusNotFound}, nil
	}
	return &deleteOutput{Status: http.StatusNoContent}, nil
}
