package services

import (
	"fmt"
	"time"

	"contenthub-api/models"
	"contenthub-api/utils"
)

// CommentStore is the comment collection handle the lifecycle service needs.
type CommentStore interface {
	ExistsByID(id string) (bool, error)
	FindByID(id string) (*models.Comment, error)
	FindAll() ([]models.Comment, error)
	FindAllByUserID(userID string) ([]models.Comment, error)
	Save(comment *models.Comment) error
	DeleteByID(id string) error
	DeleteAll() error
}

var commentSortFields = map[string]comparator[models.Comment]{
	"id":               func(a, b models.Comment) int { return compareStrings(a.ID, b.ID) },
	"text":             func(a, b models.Comment) int { return compareStrings(a.Text, b.Text) },
	"userId":           func(a, b models.Comment) int { return compareStrings(a.UserID, b.UserID) },
	"postId":           func(a, b models.Comment) int { return compareStrings(a.PostID, b.PostID) },
	"createdDate":      func(a, b models.Comment) int { return compareTimes(a.CreatedDate, b.CreatedDate) },
	"modificationDate": func(a, b models.Comment) int { return compareTimes(a.ModificationDate, b.ModificationDate) },
}

type CommentService struct {
	comments CommentStore
	posts    PostStore
	nodes    *NodeService
}

func NewCommentService(comments CommentStore, posts PostStore, nodes *NodeService) *CommentService {
	return &CommentService{comments: comments, posts: posts, nodes: nodes}
}

// Create validates and stores a new comment for the acting identity, then
// persists its content nodes under the stored comment's id.
func (s *CommentService) Create(comment *models.Comment, identity models.Identity) (*models.Comment, error) {
	if len(comment.ID) < minIDLength {
		comment.ID = utils.NewID()
	}
	// A short parent-comment id means the caller left it unset.
	if len(comment.CommentID) < minIDLength {
		comment.CommentID = ""
	}
	if err := s.validateOnCreate(comment); err != nil {
		return nil, err
	}

	now := time.Now()
	comment.UserID = identity.UserID
	comment.CreatedDate = now
	comment.ModificationDate = now

	nodes := comment.Nodes
	comment.Nodes = nil
	if err := s.comments.Save(comment); err != nil {
		return nil, err
	}
	if err := s.nodes.Attach(comment.ID, models.ParentTypeComment, nodes); err != nil {
		return nil, err
	}
	comment.Nodes = nodes
	return comment, nil
}

func (s *CommentService) validateOnCreate(comment *models.Comment) error {
	postExists, err := s.posts.ExistsByID(comment.PostID)
	if err != nil {
		return err
	}
	if !postExists {
		return fmt.Errorf("%w: post with id %s", ErrNotFound, comment.PostID)
	}
	if comment.CommentID != "" {
		parentExists, err := s.comments.ExistsByID(comment.CommentID)
		if err != nil {
			return err
		}
		if !parentExists {
			return fmt.Errorf("%w: comment with id %s", ErrNotFound, comment.CommentID)
		}
	}
	return nil
}

// Update merges the candidate into the stored comment after attaching any
// new nodes, and only persists when the acting identity owns the comment or
// carries the admin capability.
func (s *CommentService) Update(comment *models.Comment, identity models.Identity) (*models.Comment, error) {
	if comment.ID == "" {
		return nil, fmt.Errorf("%w: parameter 'comment.id' can't be empty on update", ErrIllegalArgument)
	}

	stored, err := s.comments.FindByID(comment.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: comment with id %s", ErrNotFound, comment.ID)
	}

	if len(comment.Nodes) > 0 {
		if err := s.nodes.Attach(stored.ID, models.ParentTypeComment, comment.Nodes); err != nil {
			return nil, err
		}
	}

	if !CanMutate(identity, stored.UserID) {
		return nil, fmt.Errorf("%w: the operation is forbidden", ErrAccessDenied)
	}

	stored.Text = comment.Text
	if len(comment.CommentID) >= minIDLength {
		stored.CommentID = comment.CommentID
	} else {
		stored.CommentID = ""
	}
	stored.ModificationDate = time.Now()
	if err := s.comments.Save(stored); err != nil {
		return nil, err
	}
	stored.Nodes = comment.Nodes
	return stored, nil
}

// FindAll returns every comment with its node list re-attached.
func (s *CommentService) FindAll() ([]models.Comment, error) {
	comments, err := s.comments.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range comments {
		nodes, err := s.nodes.FetchChildren(comments[i].ID)
		if err != nil {
			return nil, err
		}
		comments[i].Nodes = nodes
	}
	return comments, nil
}

// FindAllPaged returns a sorted, direction-aware page of all comments.
func (s *CommentService) FindAllPaged(opts ListOptions) ([]models.Comment, error) {
	comments, err := s.FindAll()
	if err != nil {
		return nil, err
	}
	return listPage(comments, opts, commentSortFields)
}

func (s *CommentService) FindByID(id string) (*models.Comment, error) {
	comment, err := s.comments.FindByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, fmt.Errorf("%w: comment with id %s", ErrNotFound, id)
	}
	nodes, err := s.nodes.FetchChildren(id)
	if err != nil {
		return nil, err
	}
	comment.Nodes = nodes
	return comment, nil
}

// FindAllByUserID lists a user's comments in store order with raw skip/limit.
func (s *CommentService) FindAllByUserID(userID string, limit, offset *int) ([]models.Comment, error) {
	comments, err := s.comments.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	return slicePage(comments, limit, offset)
}

// DeleteByID removes a comment if the acting identity owns it or is an admin.
func (s *CommentService) DeleteByID(id string, identity models.Identity) error {
	stored, err := s.comments.FindByID(id)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: comment with id %s", ErrNotFound, id)
	}
	if !CanMutate(identity, stored.UserID) {
		return fmt.Errorf("%w: the operation is forbidden", ErrAccessDenied)
	}
	return s.comments.DeleteByID(id)
}

// DeleteAll wipes the comment collection. Administrative and test use only;
// it performs no authorization check.
func (s *CommentService) DeleteAll() error {
	return s.comments.DeleteAll()
}
