package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contenthub-api/middleware"
	"contenthub-api/models"
	"contenthub-api/services"
	"contenthub-api/utils"
)

type PostController struct {
	postService *services.PostService
}

func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

type PostRequest struct {
	ID     string             `json:"id"`
	Title  string             `json:"title"`
	Source string             `json:"source"`
	Tags   models.StringSlice `json:"tags"`
	Status models.PostStatus  `json:"status"`
	Nodes  []models.Node      `json:"nodes"`
}

func (req *PostRequest) toModel() *models.Post {
	return &models.Post{
		ID:     req.ID,
		Title:  req.Title,
		Source: req.Source,
		Tags:   req.Tags,
		Status: req.Status,
		Nodes:  req.Nodes,
	}
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.postService.Create(req.toModel(), middleware.IdentityFrom(c))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")

	post, err := pc.postService.Update(req.toModel())
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) GetPosts(c *gin.Context) {
	if title := c.Query("title"); title != "" {
		posts, err := pc.postService.FindAllByTitle(title)
		if err != nil {
			sendServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
		return
	}

	opts, err := listOptionsFromQuery(c)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := pc.postService.FindAllPaged(opts)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	post, err := pc.postService.FindByID(c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) GetPostsByUser(c *gin.Context) {
	limit, offset, err := pageFromQuery(c)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := pc.postService.FindAllByUserID(c.Param("id"), limit, offset)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	if err := pc.postService.DeleteByID(c.Param("id")); err != nil {
		sendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, "Post deleted", nil)
}

// DeleteAllPosts wipes the collection; wired for admin/test environments only.
func (pc *PostController) DeleteAllPosts(c *gin.Context) {
	if err := pc.postService.DeleteAll(); err != nil {
		sendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, "All posts deleted", nil)
}
