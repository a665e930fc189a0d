package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"maison-decor/libs"
	"maison-decor/models"
	"maison-decor/repositories"
)

type ProductController struct {
	repo *repositories.ProductRepository
}

func NewProductController(repo *repositories.ProductRepository) *ProductController {
	return &ProductController{repo: repo}
}

func productCacheKey(page, limit int, category, search string) string {
	return fmt.Sprintf("products_list_p%d_l%d_c%s_s%s", page, limit, category, search)
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get all categories
// @Description Get list of active categories
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.repo.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load categories"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Get all products
// @Description Get paginated list of active products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param category query string false "Category slug"
// @Param search query string false "Search by name"
// @Success 200 {object} models.PaginationResponse
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}

	category := c.Query("category")
	search := c.Query("search")

	cacheKey := productCacheKey(page, limit, category, search)
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp models.PaginationResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				c.JSON(200, resp)
				return
			}
		}
	}

	products, total, err := ctrl.repo.List(ctx, page, limit, category, search)
	if err != nil {
		log.Println("Product query error:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products"})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	resp := models.PaginationResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}

	if models.RedisClient != nil {
		if raw, err := json.Marshal(resp); err == nil {
			models.RedisClient.Set(ctx, cacheKey, raw, 5*time.Minute)
		}
	}

	c.JSON(200, resp)
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Create product
// @Description Create a catalog product, optionally with an image upload (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param request formData models.CreateProductRequest true "Product"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsFeatured:  req.IsFeatured,
		IsActive:    req.IsActive,
	}

	if file, err := c.FormFile("image"); err == nil {
		localPath, err := libs.SaveUploadedFile(c, file, "./tmp")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		url, publicID, err := libs.UploadProductImage(localPath)
		if err != nil {
			log.Println("Image upload failed:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to upload image"})
			return
		}
		product.ImageURL = url
		product.CloudinaryID = publicID
	}

	if err := ctrl.repo.Create(c.Request.Context(), product); err != nil {
		log.Println("Product create error:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	invalidateProductCache()
	c.JSON(201, gin.H{"success": true, "message": "Product created", "data": product})
}

// @Summary Update product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param id path string true "Product ID"
// @Param request formData models.UpdateProductRequest true "Product"
// @Param image formData file false "Product image"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	product, err := ctrl.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.CategoryID != 0 {
		product.CategoryID = req.CategoryID
	}
	if req.Price != 0 {
		product.Price = req.Price
	}
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	product.IsFeatured = req.IsFeatured
	product.IsActive = req.IsActive

	if file, err := c.FormFile("image"); err == nil {
		localPath, err := libs.SaveUploadedFile(c, file, "./tmp")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		url, publicID, err := libs.UploadProductImage(localPath)
		if err != nil {
			log.Println("Image upload failed:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to upload image"})
			return
		}
		if product.CloudinaryID != "" {
			if err := libs.DeleteProductImage(product.CloudinaryID); err != nil {
				log.Println("Failed to delete old image:", err)
			}
		}
		product.ImageURL = url
		product.CloudinaryID = publicID
	}

	if err := ctrl.repo.Update(c.Request.Context(), product); err != nil {
		log.Println("Product update error:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	invalidateProductCache()
	c.JSON(200, gin.H{"success": true, "message": "Product updated", "data": product})
}

// @Summary Delete product
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	product, err := ctrl.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if err := ctrl.repo.Delete(c.Request.Context(), product.ID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	if product.CloudinaryID != "" {
		if err := libs.DeleteProductImage(product.CloudinaryID); err != nil {
			log.Println("Failed to delete image:", err)
		}
	}

	invalidateProductCache()
	c.JSON(200, gin.H{"success": true, "message": "Product deleted"})
}
