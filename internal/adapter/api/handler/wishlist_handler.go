package handler

import (
	"net/http"

	"dressly/internal/usecase"
	"dressly/pkg/errors"
	"dressly/pkg/response"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

type addWishlistRequest struct {
	Code   string                   `json:"code" validate:"required"`
	Name   string                   `json:"name"`
	Price  map[string]interface{}   `json:"price"`
	Images []map[string]interface{} `json:"images"`
}

type wishlistItemsResponse struct {
	Items interface{} `json:"items"`
}

func (h *WishlistHandler) Add(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req addWishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.wishlistUseCase.Add(c.Request().Context(), userID, usecase.AddWishlistInput{
		Code:   req.Code,
		Name:   req.Name,
		Price:  req.Price,
		Images: req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, message)
}

func (h *WishlistHandler) List(c echo.Context) error {
	userID := c.Get("uid").(string)

	products, err := h.wishlistUseCase.List(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, wishlistItemsResponse{Items: products})
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	userID := c.Get("uid").(string)
	productCode := c.Param("code")

	if productCode == "" {
		return response.Error(c, errors.BadRequest("Product code is required", nil))
	}

	if err := h.wishlistUseCase.Remove(c.Request().Context(), userID, productCode); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Item removed from wishlist")
}
