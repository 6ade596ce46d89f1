package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"todo_api"
	"todo_api/internal/repository"

	"github.com/gin-gonic/gin"
)

// Static reasons returned to clients. The cause is only logged.
const (
	errConnectDB    = "Error Connecting to database"
	errPrepareDB    = "Error preparing database"
	errFetchItems   = "Error fetching todo items"
	errInsertItem   = "Error inserting"
	errDeleteItem   = "Error deleting"
	errNotFound     = "not found"
	errInvalidBody  = "invalid body: expected a JSON string"
	helloWorld      = "Hello, world!"
	statusOK        = "ok"
	fmtRowsInserted = "%d rows inserted"
	fmtRowDeleted   = "%d row deleted"
)

// storageReason picks the client-facing reason for a failed storage call.
// Connection and statement failures share one reason across operations;
// anything later in the call uses the operation's own reason.
func storageReason(err error, opReason string) string {
	var se *repository.StorageError
	if errors.As(err, &se) {
		switch se.Stage {
		case repository.StageConnect:
			return errConnectDB
		case repository.StagePrepare:
			return errPrepareDB
		}
	}
	return opReason
}

var (
	errNullBody     = errors.New("body is null")
	errTrailingData = errors.New("unexpected data after JSON value")
)

// bindJSONString decodes a body holding exactly one JSON string. null and
// anything after the string other than whitespace are rejected.
func bindJSONString(c *gin.Context) (string, error) {
	if c.Request.Body == nil {
		return "", io.ErrUnexpectedEOF
	}
	dec := json.NewDecoder(c.Request.Body)

	var item *string
	if err := dec.Decode(&item); err != nil {
		return "", err
	}
	if item == nil {
		return "", errNullBody
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return "", errTrailingData
	}
	return *item, nil
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", requestID(c)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, todo_api.ErrorResponse{Error: userMsg})
}

// @Summary      Greeting
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string  "Hello, world!"
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	c.String(http.StatusOK, helloWorld)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List todo items
// @Tags         todo
// @Produce      json
// @Success      200  {object}  todo_api.TodoList
// @Failure      500  {object}  todo_api.ErrorResponse
// @Router       /todo [get]
func (h *Handler) listTodoItems(c *gin.Context) {
	items, err := h.services.TodoList.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, storageReason(err, errFetchItems), "todo_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, todo_api.TodoList{Items: items})
}

// @Summary      Create a todo item
// @Description  The body is a bare JSON string, e.g. "Buy milk".
// @Tags         todo
// @Accept       json
// @Produce      json
// @Param        body  body      string  true  "Item text"
// @Success      200   {object}  todo_api.StatusMessage
// @Failure      400   {object}  todo_api.ErrorResponse
// @Failure      415   {object}  todo_api.ErrorResponse
// @Failure      500   {object}  todo_api.ErrorResponse
// @Router       /todo [post]
func (h *Handler) createTodoItem(c *gin.Context) {
	item, err := bindJSONString(c)
	if err != nil {
		if h.log != nil {
			h.log.Infow("todo_bad_request_body", "err", err, "request_id", requestID(c))
		}
		c.JSON(http.StatusBadRequest, todo_api.ErrorResponse{Error: errInvalidBody})
		return
	}

	n, err := h.services.TodoList.Create(c.Request.Context(), item)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, storageReason(err, errInsertItem), "todo_insert_failed", err)
		return
	}
	c.JSON(http.StatusOK, todo_api.StatusMessage{Message: fmt.Sprintf(fmtRowsInserted, n)})
}

// @Summary      Delete a todo item
// @Description  A missing id is not an error: the response reports 0 rows.
// @Tags         todo
// @Produce      json
// @Param        id   path      int  true  "Item id"
// @Success      200  {object}  todo_api.StatusMessage
// @Failure      404  {object}  todo_api.ErrorResponse
// @Failure      500  {object}  todo_api.ErrorResponse
// @Router       /todo/{id} [delete]
func (h *Handler) deleteTodoItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// only integer ids are routable
		c.JSON(http.StatusNotFound, todo_api.ErrorResponse{Error: errNotFound})
		return
	}

	n, err := h.services.TodoList.Delete(c.Request.Context(), id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, storageReason(err, errDeleteItem), "todo_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, todo_api.StatusMessage{Message: fmt.Sprintf(fmtRowDeleted, n)})
}
