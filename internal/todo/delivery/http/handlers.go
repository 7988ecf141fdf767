package http

import (
	"github.com/gin-gonic/gin"

	"todo-backend/internal/middleware"
	"todo-backend/internal/model"
	"todo-backend/pkg/response"
)

// List godoc
// @Summary     List todos
// @Description Returns the caller's todos filtered and sorted per query parameters.
// @Tags        Todo
// @Produce     json
// @Param       filter   query string false "Completion filter (all/active/completed)"
// @Param       category query string false "Category id filter"
// @Param       search   query string false "Case-insensitive substring over title, description and tags"
// @Param       sort_by  query string false "Sort key (created_at/due_date/priority/title)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get todo detail
// @Description Returns a single todo by its ID.
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Create godoc
// @Summary     Create a todo
// @Description Creates a new todo for the caller. ID and timestamps are server-assigned.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Update godoc
// @Summary     Update a todo
// @Description Applies a partial update. Omitted fields keep their current values.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Todo ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a todo
// @Description Permanently removes a todo by ID.
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips the completed flag of a todo. Counts as an update, so updated_at moves.
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} updateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.ToggleComplete(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleComplete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Stats godoc
// @Summary     Todo statistics
// @Description Returns derived counts over the caller's todos, computed against wall-clock time.
// @Tags        Todo
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/todos/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Categories godoc
// @Summary     List categories
// @Description Returns the fixed category set shipped with the app.
// @Tags        Todo
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	response.OK(c, categoriesResp{Categories: model.Categories})
}
