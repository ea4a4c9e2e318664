package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"marketx/internal/domain"
)

type ProductHandler struct {
	svc domain.ProductService
}

func NewProductHandler(svc domain.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Index(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	if products == nil {
		products = []*domain.Product{}
	}

	JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Show(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.svc.GetByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			JSONMessage(w, http.StatusNotFound, "Product not found")
			return
		}

		JSONError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Store(w http.ResponseWriter, r *http.Request) {
	var req domain.ProductSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.Create(r.Context(), req); err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to add product")
		return
	}

	JSONMessage(w, http.StatusOK, "Product added successfully")
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req domain.ProductSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.Update(r.Context(), req, productID); err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	JSONMessage(w, http.StatusOK, "Product updated successfully")
}

func (h *ProductHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.svc.Delete(r.Context(), productID); err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	JSONMessage(w, http.StatusOK, "Product deleted successfully")
}
