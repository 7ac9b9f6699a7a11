// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/abgdnv/catalog/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const productIDParam = "productId"

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the catalog API with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/get/product/by/{"+productIDParam+"}", h.handle(h.GetByID))
	r.Post("/create/product", h.handle(h.Create))
	r.Post("/delete/product/{"+productIDParam+"}", h.handle(h.Delete))
	r.Post("/update/product", h.handle(h.Update))
	r.Post("/product/list", h.handle(h.ListByCategory))
	r.Get("/product/category/list", h.handle(h.ListCategories))

	r.Get("/healthz", h.HealthCheck)
}

// handlerFunc is an HTTP handler that leaves error responses to the error handler.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.handleError(w, r, err)
		}
	}
}

// handleError is the single place where service errors become HTTP responses.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	mLogger := h.loggerWithReqID(r)
	var status int
	switch {
	case errors.Is(err, perrors.ErrProductNotFound):
		status = http.StatusNotFound
		web.RespondError(w, mLogger, status, perrors.ErrProductNotFound.Error())
	case errors.Is(err, perrors.ErrInvalidProduct):
		status = http.StatusBadRequest
		web.RespondError(w, mLogger, status, err.Error())
	default:
		status = http.StatusInternalServerError
		w.WriteHeader(status)
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	mLogger.Log(r.Context(), level, "Request failed",
		"status", status,
		"error_type", errorType(err),
		"cause", err.Error(),
	)
}

// GetByID retrieves a product by its ID.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseInt64Param(w, r, mLogger, productIDParam)
	if !ok {
		return nil
	}
	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)

	found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return err
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
	return nil
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	var req service.CreateProductRequest
	if !web.DecodeJSON(w, r, mLogger, &req) || !web.ValidateBody(w, r, mLogger, h.validate, req) {
		return nil
	}
	mLogger.DebugContext(r.Context(), "Received request to create product", "product", req)

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		return err
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Category", created.Category)
	web.RespondJSON(w, mLogger, http.StatusOK, created)
	return nil
}

// Delete removes a product by its ID and answers with true.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseInt64Param(w, r, mLogger, productIDParam)
	if !ok {
		return nil
	}
	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)

	if err := h.service.Delete(r.Context(), id); err != nil {
		return err
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, true)
	return nil
}

// Update overwrites category and name of an existing product.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	var req service.UpdateProductRequest
	if !web.DecodeJSON(w, r, mLogger, &req) || !web.ValidateBody(w, r, mLogger, h.validate, req) {
		return nil
	}
	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", req.ID)

	updated, err := h.service.Update(r.Context(), req)
	if err != nil {
		return err
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Category", updated.Category)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
	return nil
}

// ListByCategory returns one page of products in a category.
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	var req service.ListProductsRequest
	if !web.DecodeJSON(w, r, mLogger, &req) || !web.ValidateBody(w, r, mLogger, h.validate, req) {
		return nil
	}
	mLogger.DebugContext(r.Context(), "Received request to list products", "category", req.Category, "page", req.Page, "size", req.Size)

	list, err := h.service.ListByCategory(r.Context(), req)
	if err != nil {
		return err
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list.Items), "total", list.TotalElements)
	web.RespondJSON(w, mLogger, http.StatusOK, list)
	return nil
}

// ListCategories returns the distinct categories of all products.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	categories, err := h.service.ListUniqueCategories(r.Context())
	if err != nil {
		return err
	}
	web.RespondJSON(w, mLogger, http.StatusOK, categories)
	return nil
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	return h.logger.With("request_id", web.RequestID(r.Context()))
}

// errorType names the innermost wrapped error type.
func errorType(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return fmt.Sprintf("%T", err)
		}
		err = next
	}
}
