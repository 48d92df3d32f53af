package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wet-dev/wet/internal/services"
	"github.com/wet-dev/wet/internal/types"
)

// Suffix appended to the address so the keyword search targets places to eat.
const foodQuerySuffix = " 맛집"

type LikeRequest struct {
	UserID     uint             `json:"userId" binding:"required"`
	Restaurant types.Restaurant `json:"restaurant" binding:"required"`
}

type RestaurantHandler struct {
	kakao       *services.KakaoMapClient
	restaurants *services.RestaurantService
}

func NewRestaurantHandler(kakao *services.KakaoMapClient, restaurants *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		kakao:       kakao,
		restaurants: restaurants,
	}
}

func (h *RestaurantHandler) Search(ctx *gin.Context) {
	address := ctx.Query("address")

	if strings.TrimSpace(address) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	records := h.kakao.Search(address + foodQuerySuffix)

	ctx.JSON(http.StatusOK, records)
}

func (h *RestaurantHandler) ToggleLike(ctx *gin.Context) {
	var req LikeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Restaurant.ID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "restaurant id is required"})
		return
	}

	liked, err := h.restaurants.ToggleLike(req.UserID, req.Restaurant)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, services.ErrLikeConflict):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Like was modified concurrently"})
		default:
			log.Printf("Failed to toggle like for user %d: %v", req.UserID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		}
		return
	}

	if liked {
		ctx.String(http.StatusOK, "Liked")
	} else {
		ctx.String(http.StatusOK, "Unliked")
	}
}

func (h *RestaurantHandler) ListLikes(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Query("userId"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	records, err := h.restaurants.ListLiked(uint(userID))

	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to list likes for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve likes"})
		return
	}

	ctx.JSON(http.StatusOK, records)
}
