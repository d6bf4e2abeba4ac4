package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contenthub-api/middleware"
	"contenthub-api/models"
	"contenthub-api/services"
	"contenthub-api/utils"
)

type RatingController struct {
	ratingService *services.RatingService
}

func NewRatingController(ratingService *services.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

type RatingRequest struct {
	ID     string `json:"id"`
	PostID string `json:"post_id" binding:"required"`
}

func (rc *RatingController) CreateRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating := &models.Rating{ID: req.ID, PostID: req.PostID}
	rating, err := rc.ratingService.Create(rating, middleware.IdentityFrom(c))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (rc *RatingController) UpdateRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating := &models.Rating{ID: c.Param("id"), UserID: middleware.IdentityFrom(c).UserID, PostID: req.PostID}
	rating, err := rc.ratingService.Update(rating)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (rc *RatingController) GetRatings(c *gin.Context) {
	opts, err := listOptionsFromQuery(c)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	ratings, err := rc.ratingService.FindAllPaged(opts)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (rc *RatingController) GetRating(c *gin.Context) {
	rating, err := rc.ratingService.FindByID(c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// GetRatingCountForPost returns how many ratings a post has received.
func (rc *RatingController) GetRatingCountForPost(c *gin.Context) {
	count, err := rc.ratingService.CountByPostID(c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post_id": c.Param("id"), "count": count})
}

// GetRatedPostsByUser lists the posts a user has rated, in rating order.
func (rc *RatingController) GetRatedPostsByUser(c *gin.Context) {
	limit, offset, err := pageFromQuery(c)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := rc.ratingService.FindRatedPostsByUserID(c.Param("id"), limit, offset)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (rc *RatingController) DeleteRating(c *gin.Context) {
	if err := rc.ratingService.DeleteByID(c.Param("id")); err != nil {
		sendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, "Rating deleted", nil)
}

// DeleteAllRatings wipes the collection; wired for admin/test environments only.
func (rc *RatingController) DeleteAllRatings(c *gin.Context) {
	if err := rc.ratingService.DeleteAll(); err != nil {
		sendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, "All ratings deleted", nil)
}
