package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"maison-decor/models"
	"maison-decor/services"
)

const sessionCookie = "cart_session"

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// cartSession resolves the session id from the cookie or header, issuing a
// fresh one on first contact so the stored snapshot is keyed before any
// mutation lands.
func cartSession(c *gin.Context) string {
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(sessionCookie, sid, 30*24*3600, "/", "", false, true)
	return sid
}

// @Summary Get cart
// @Description Get the session's enquiry cart with derived totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	state, err := ctrl.service.GetCart(c.Request.Context(), cartSession(c))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": state})
}

// @Summary Add cart item
// @Description Add a product to the enquiry cart; an existing product gains quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	item := models.CartItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Category: req.Category,
	}

	state, err := ctrl.service.AddItem(c.Request.Context(), cartSession(c), item)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": state})
}

// @Summary Update item quantity
// @Description Set a cart item's quantity; zero removes the item
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} models.Response
// @Router /api/cart/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	state, err := ctrl.service.UpdateQuantity(c.Request.Context(), cartSession(c), c.Param("id"), req.Quantity)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": state})
}

// @Summary Remove cart item
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /api/cart/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	state, err := ctrl.service.RemoveItem(c.Request.Context(), cartSession(c), c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart", "data": state})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	state, err := ctrl.service.ClearCart(c.Request.Context(), cartSession(c))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": state})
}

// @Summary Get wishlist
// @Tags Wishlist
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/wishlist [get]
func (ctrl *CartController) GetWishlist(c *gin.Context) {
	state, err := ctrl.service.GetWishlist(c.Request.Context(), cartSession(c))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load wishlist"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Wishlist retrieved", "data": state})
}

// @Summary Add wishlist item
// @Description Bookmark a product; adding an already-present product is a no-op
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/wishlist [post]
func (ctrl *CartController) AddWishlistItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	item := models.WishlistItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Category: req.Category,
	}

	state, err := ctrl.service.AddWishlistItem(c.Request.Context(), cartSession(c), item)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update wishlist"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item added to wishlist", "data": state})
}

// @Summary Remove wishlist item
// @Tags Wishlist
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /api/wishlist/{id} [delete]
func (ctrl *CartController) RemoveWishlistItem(c *gin.Context) {
	state, err := ctrl.service.RemoveWishlistItem(c.Request.Context(), cartSession(c), c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update wishlist"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item removed from wishlist", "data": state})
}

// @Summary Clear wishlist
// @Tags Wishlist
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/wishlist [delete]
func (ctrl *CartController) ClearWishlist(c *gin.Context) {
	state, err := ctrl.service.ClearWishlist(c.Request.Context(), cartSession(c))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear wishlist"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Wishlist cleared", "data": state})
}
