package transport

import (
	"errors"
	"net/http"

	"sialkot-shop/internal/domain"
	"sialkot-shop/internal/media"
	"sialkot-shop/internal/middleware"
	"sialkot-shop/internal/service"
	"sialkot-shop/internal/share"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UpdateProductRequest represents the owner product edit payload. Omitted
// fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Price       *string `json:"price" validate:"omitempty,max=32"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

// ReviewRequest represents a customer review submission
type ReviewRequest struct {
	Author  string `json:"author" validate:"required,notblank,max=255"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,notblank,max=2000"`
}

// ProductResponse is a product with its review summary
type ProductResponse struct {
	*domain.Product
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// ProductShareResponse is the share payload and per-platform links for a product
type ProductShareResponse struct {
	share.Payload
	Links []share.Link `json:"links"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		Product:       p,
		AverageRating: p.AverageRating(),
		ReviewCount:   len(p.Reviews),
	}
}

// CatalogHandler handles HTTP requests for categories and products
type CatalogHandler struct {
	catalogService service.CatalogService
	sharer         share.Sharer
	uploadMaxBytes int64
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, sharer share.Sharer, uploadMaxBytes int64, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		sharer:         sharer,
		uploadMaxBytes: uploadMaxBytes,
		logger:         logger,
	}
}

// RegisterRoutes registers all catalog routes. generateLimiter guards the
// routes that call the content generation service.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, generateLimiter func(http.Handler) http.Handler) {
	r.Get("/api/categories", h.ListCategories)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetProduct)
			r.Patch("/", h.UpdateProduct)
			r.Put("/image", h.ReplaceImage)
			r.Post("/reviews", h.AddReview)
			r.Get("/share", h.ShareProduct)
			r.With(orPassThrough(generateLimiter)).Post("/description", h.GenerateDescription)
		})
	})
}

// ListCategories returns the storefront categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.Categories(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to list categories")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// ListProducts returns the catalog filtered by ?category= and ?q=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	products, err := h.catalogService.List(r.Context(), query.Get("category"), query.Get("q"))
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to list products")
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = newProductResponse(p)
	}
	middleware.RespondWithJSON(w, http.StatusOK, response)
}

// GetProduct returns a single product
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogService.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to get product")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, newProductResponse(product))
}

// CreateProduct adds a placeholder product from a multipart "image" upload
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	imageURL, ok := h.readImage(w, r)
	if !ok {
		return
	}

	product, err := h.catalogService.CreateFromImage(r.Context(), imageURL)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to create product")
		return
	}

	h.logger.Info("Product created", zap.String("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, newProductResponse(product))
}

// UpdateProduct applies an owner edit
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	product, err := h.catalogService.Update(r.Context(), pathParam(r, "id"), service.ProductUpdate{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to update product")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, newProductResponse(product))
}

// ReplaceImage swaps the product image for a multipart "image" upload
func (h *CatalogHandler) ReplaceImage(w http.ResponseWriter, r *http.Request) {
	imageURL, ok := h.readImage(w, r)
	if !ok {
		return
	}

	product, err := h.catalogService.Update(r.Context(), pathParam(r, "id"), service.ProductUpdate{ImageURL: &imageURL})
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to update product image")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, newProductResponse(product))
}

// AddReview records a customer review
func (h *CatalogHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	review, err := h.catalogService.AddReview(r.Context(), pathParam(r, "id"), service.ReviewInput{
		Author:  req.Author,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to add review")
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, review)
}

// GenerateDescription replaces the product description with generated copy
func (h *CatalogHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogService.GenerateDescription(r.Context(), pathParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to generate description")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, newProductResponse(product))
}

// ShareProduct returns the share payload for a product page
func (h *CatalogHandler) ShareProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogService.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to get product")
		return
	}

	payload := h.sharer.Product(product)
	middleware.RespondWithJSON(w, http.StatusOK, ProductShareResponse{
		Payload: payload,
		Links:   share.Links(payload.URL, payload.Text),
	})
}

func (h *CatalogHandler) readImage(w http.ResponseWriter, r *http.Request) (string, bool) {
	limit := h.uploadMaxBytes
	if limit <= 0 {
		limit = media.DefaultMaxBytes
	}
	// leave room for the multipart envelope around the file
	r.Body = http.MaxBytesReader(w, r.Body, limit+1<<20)

	file, _, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.RespondWithError(w, http.StatusRequestEntityTooLarge, media.ErrTooLarge.Error())
			return "", false
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "multipart field \"image\" is required")
		return "", false
	}
	defer file.Close()

	imageURL, err := media.ImageDataURL(file, limit)
	if err != nil {
		h.logger.Debug("Rejected image upload", zap.Error(err))
		respondWithServiceError(w, h.logger, err, "failed to read image")
		return "", false
	}
	return imageURL, true
}
