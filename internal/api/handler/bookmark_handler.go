package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/linkstash/bookmarks-api/internal/core/ports"
)

// BookmarkHandler handles the authenticated bookmark CRUD endpoints. The
// owning user id always comes from the request context set by the Auth
// middleware, never from the payload.
type BookmarkHandler struct {
	service ports.BookmarkService
}

func NewBookmarkHandler(service ports.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

func bookmarkID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid bookmark id")
	}
	return uint(id), nil
}

// List returns every bookmark owned by the caller.
//
// @Summary      List bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookmarkResponse
// @Failure      401  {object}  errorResponse
// @Router       /bookmarks [get]
func (h *BookmarkHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	bookmarks, err := h.service.ListBookmarks(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookmarkListResponse(bookmarks))
}

// Get returns a single bookmark owned by the caller.
//
// @Summary      Get a bookmark
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Bookmark id"
// @Success      200  {object}  bookmarkResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookmarks/{id} [get]
func (h *BookmarkHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := bookmarkID(c)
	if err != nil {
		return err
	}

	bookmark, err := h.service.GetBookmark(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookmarkResponse(bookmark))
}

// Create stores a new bookmark owned by the caller.
//
// @Summary      Create a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookmarkRequest  true  "Bookmark fields"
// @Success      201   {object}  bookmarkResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /bookmarks [post]
func (h *BookmarkHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateBookmark(c.Request().Context(), user.ID, toCreateBookmarkInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBookmarkResponse(created))
}

// Edit applies a partial update to a bookmark owned by the caller.
//
// @Summary      Edit a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Bookmark id"
// @Param        body  body      editBookmarkRequest  true  "Fields to change"
// @Success      200   {object}  bookmarkResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /bookmarks/{id} [patch]
func (h *BookmarkHandler) Edit(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := bookmarkID(c)
	if err != nil {
		return err
	}

	var req editBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.EditBookmark(c.Request().Context(), user.ID, id, toEditBookmarkInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookmarkResponse(updated))
}

// Delete permanently removes a bookmark owned by the caller.
//
// @Summary      Delete a bookmark
// @Tags         bookmarks
// @Security     BearerAuth
// @Param        id  path  int  true  "Bookmark id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := bookmarkID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteBookmark(c.Request().Context(), user.ID, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
