package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/cache"
	"github.com/shashiranjanraj/bistro/pkg/response"
	"github.com/shashiranjanraj/bistro/pkg/storage"
)

const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute

	maxImageBytes = 5 << 20
)

type MenuController struct {
	menu *repositories.MenuRepository
}

func NewMenuController(menu *repositories.MenuRepository) *MenuController {
	return &MenuController{menu: menu}
}

// Index returns the full menu. Public, cached; writes invalidate the cache.
func (c *MenuController) Index(w http.ResponseWriter, r *http.Request) {
	var cached []models.MenuItem
	if cache.Get(menuCacheKey, &cached) {
		response.Success(w, cached)
		return
	}

	items, err := c.menu.All(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load menu")
		return
	}
	cache.Set(menuCacheKey, items, menuCacheTTL)
	response.Success(w, items)
}

// Show returns a single menu item by either id shape.
func (c *MenuController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := c.menu.FindByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load menu item")
		return
	}
	if item == nil {
		response.NotFound(w)
		return
	}
	response.Success(w, item)
}

// Store adds a menu item. Admin only.
func (c *MenuController) Store(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	errs, err := bind.JSON(r, &item)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}
	item.ID = nil

	id, err := c.menu.Insert(r.Context(), &item)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not save menu item")
		return
	}
	cache.Forget(menuCacheKey)
	response.Created(w, map[string]any{"insertedId": id, "item": item})
}

// Update overwrites a menu item's editable fields. Admin only.
func (c *MenuController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var item models.MenuItem
	errs, err := bind.JSON(r, &item)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	matched, err := c.menu.Update(r.Context(), id, &item)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not update menu item")
		return
	}
	if matched == 0 {
		response.NotFound(w)
		return
	}
	cache.Forget(menuCacheKey)
	response.SuccessMessage(w, "menu item updated", map[string]int64{"matchedCount": matched})
}

// Destroy removes a menu item by either id shape. Admin only.
func (c *MenuController) Destroy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := c.menu.Delete(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete menu item")
		return
	}
	if deleted == 0 {
		response.NotFound(w)
		return
	}
	cache.Forget(menuCacheKey)
	response.SuccessMessage(w, "menu item deleted", map[string]int64{"deletedCount": deleted})
}

// UploadImage stores an item photo on the configured disk and saves its
// public URL on the item. Admin only. Multipart field name: "image".
func (c *MenuController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := c.menu.FindByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load menu item")
		return
	}
	if item == nil {
		response.NotFound(w)
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.Error(w, http.StatusUnprocessableEntity, "unsupported image type")
		return
	}

	path := fmt.Sprintf("menu/%s-%d%s", repositories.MenuItemKey(*item), time.Now().UnixNano(), ext)
	if err := storage.PutStream(path, io.LimitReader(file, maxImageBytes)); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not store image")
		return
	}

	url := storage.URL(path)
	if _, err := c.menu.SetImage(r.Context(), id, url); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not save image url")
		return
	}
	cache.Forget(menuCacheKey)
	response.Success(w, map[string]string{"image": url})
}
