package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskhive/backend/api/transport"
	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/pkg/httpcontext"
	"github.com/taskhive/backend/repository"
	taskUC "github.com/taskhive/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) ListTasks(ctx *fasthttp.RequestCtx) {
	ownerID := h.subjectID(ctx)
	if ownerID == "" {
		return
	}

	filter, ok := h.parseFilter(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.List(stdCtx, ownerID, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	filter.Normalize()
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(tasks, transport.PageMeta{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}))
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	ownerID := h.subjectID(ctx)
	if ownerID == "" {
		return
	}

	var req transport.CreateTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Title == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	input := taskUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.DueDate != "" {
		due, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid due date", nil))
			return
		}
		input.DueDate = &due
	}
	if req.Status != "" {
		status, err := domain.ParseTaskStatus(req.Status)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), err.Error(), nil))
			return
		}
		input.Status = status
	}
	if req.Priority != "" {
		priority, err := domain.ParseTaskPriority(req.Priority)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), err.Error(), nil))
			return
		}
		input.Priority = priority
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, ownerID, input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Get task by id
// @Tags tasks
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	ownerID := h.subjectID(ctx)
	if ownerID == "" {
		return
	}

	taskID, _ := ctx.UserValue("id").(string)
	if taskID == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Get(stdCtx, ownerID, taskID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	ownerID := h.subjectID(ctx)
	if ownerID == "" {
		return
	}

	taskID, _ := ctx.UserValue("id").(string)
	if taskID == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	var req transport.UpdateTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	patch, ok := h.parsePatch(ctx, req)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, ownerID, taskID, patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if !updated {
		h.respondJSON(ctx, http.StatusNotFound, transport.NewError(string(domain.ErrCodeNotFound), "task not found", nil))
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	ownerID := h.subjectID(ctx)
	if ownerID == "" {
		return
	}

	taskID, _ := ctx.UserValue("id").(string)
	if taskID == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.uc.Delete(stdCtx, ownerID, taskID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if !deleted {
		h.respondJSON(ctx, http.StatusNotFound, transport.NewError(string(domain.ErrCodeNotFound), "task not found", nil))
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *TaskHandler) parseFilter(ctx *fasthttp.RequestCtx) (repository.TaskFilter, bool) {
	filter := repository.TaskFilter{
		Page:     parseInt(string(ctx.QueryArgs().Peek("page")), 1),
		PageSize: parseInt(string(ctx.QueryArgs().Peek("page_size")), repository.DefaultPageSize),
	}

	if raw := string(ctx.QueryArgs().Peek("status")); raw != "" {
		status, err := domain.ParseTaskStatus(raw)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), err.Error(), nil))
			return filter, false
		}
		filter.Status = &status
	}
	if raw := string(ctx.QueryArgs().Peek("priority")); raw != "" {
		priority, err := domain.ParseTaskPriority(raw)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), err.Error(), nil))
			return filter, false
		}
		filter.Priority = &priority
	}
	if raw := string(ctx.QueryArgs().Peek("due_date")); raw != "" {
		due, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid due date", nil))
			return filter, false
		}
		filter.DueDate = &due
	}

	return filter, true
}

func (h *TaskHandler) parsePatch(ctx *fasthttp.RequestCtx, req transport.UpdateTaskRequest) (taskUC.Patch, bool) {
	patch := taskUC.Patch{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.DueDate != nil {
		due, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid due date", nil))
			return patch, false
		}
		patch.DueDate = &due
	}
	if req.Status != nil {
		status, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), err.Error(), nil))
			return patch, false
		}
		patch.Status = &status
	}
	if req.Priority != nil {
		priority, err := domain.ParseTaskPriority(*req.Priority)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), err.Error(), nil))
			return patch, false
		}
		patch.Priority = &priority
	}

	return patch, true
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
