package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contenthub-api/middleware"
	"contenthub-api/models"
	"contenthub-api/services"
	"contenthub-api/utils"
)

type CommentController struct {
	commentService *services.CommentService
}

func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type CommentRequest struct {
	ID        string        `json:"id"`
	PostID    string        `json:"post_id"`
	CommentID string        `json:"comment_id"`
	Text      string        `json:"text"`
	Nodes     []models.Node `json:"nodes"`
}

func (req *CommentRequest) toModel() *models.Comment {
	return &models.Comment{
		ID:        req.ID,
		PostID:    req.PostID,
		CommentID: req.CommentID,
		Text:      req.Text,
		Nodes:     req.Nodes,
	}
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.commentService.Create(req.toModel(), middleware.IdentityFrom(c))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) UpdateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")

	comment, err := cc.commentService.Update(req.toModel(), middleware.IdentityFrom(c))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (cc *CommentController) GetComments(c *gin.Context) {
	opts, err := listOptionsFromQuery(c)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	comments, err := cc.commentService.FindAllPaged(opts)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (cc *CommentController) GetComment(c *gin.Context) {
	comment, err := cc.commentService.FindByID(c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (cc *CommentController) GetCommentsByUser(c *gin.Context) {
	limit, offset, err := pageFromQuery(c)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	comments, err := cc.commentService.FindAllByUserID(c.Param("id"), limit, offset)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	if err := cc.commentService.DeleteByID(c.Param("id"), middleware.IdentityFrom(c)); err != nil {
		sendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, "Comment deleted", nil)
}

// DeleteAllComments wipes the collection; wired for admin/test environments only.
func (cc *CommentController) DeleteAllComments(c *gin.Context) {
	if err := cc.commentService.DeleteAll(); err != nil {
		sendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, "All comments deleted", nil)
}
