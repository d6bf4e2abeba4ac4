package services

import (
	"fmt"
	"time"

	"contenthub-api/models"
	"contenthub-api/utils"
)

// PostStore is the post collection handle the lifecycle service needs.
type PostStore interface {
	ExistsByID(id string) (bool, error)
	FindByID(id string) (*models.Post, error)
	FindAll() ([]models.Post, error)
	FindAllByUserID(userID string) ([]models.Post, error)
	FindAllByTitle(title string) ([]models.Post, error)
	Save(post *models.Post) error
	DeleteByID(id string) error
	DeleteAll() error
}

// postSortFields maps the recognized post sort keys to their comparators.
var postSortFields = map[string]comparator[models.Post]{
	"id":        func(a, b models.Post) int { return compareStrings(a.ID, b.ID) },
	"title":     func(a, b models.Post) int { return compareStrings(a.Title, b.Title) },
	"source":    func(a, b models.Post) int { return compareStrings(a.Source, b.Source) },
	"userId":    func(a, b models.Post) int { return compareStrings(a.UserID, b.UserID) },
	"published": func(a, b models.Post) int { return compareTimes(a.Published, b.Published) },
	"changed":   func(a, b models.Post) int { return compareTimes(a.Changed, b.Changed) },
	"status":    func(a, b models.Post) int { return a.Status.Rank() - b.Status.Rank() },
}

type PostService struct {
	posts PostStore
	nodes *NodeService
}

func NewPostService(posts PostStore, nodes *NodeService) *PostService {
	return &PostService{posts: posts, nodes: nodes}
}

// Create validates and stores a new post for the acting identity, then
// persists its content nodes under the stored post's id. The returned post
// carries the node list; the persisted record does not inline it.
func (s *PostService) Create(post *models.Post, identity models.Identity) (*models.Post, error) {
	if len(post.ID) < minIDLength {
		post.ID = utils.NewID()
	}
	if err := s.validateOnCreate(post); err != nil {
		return nil, err
	}

	now := time.Now()
	post.UserID = identity.UserID
	post.Status = models.StatusDraft
	post.Published = now
	post.Changed = now

	nodes := post.Nodes
	post.Nodes = nil
	if err := s.posts.Save(post); err != nil {
		return nil, err
	}
	if err := s.nodes.Attach(post.ID, models.ParentTypePost, nodes); err != nil {
		return nil, err
	}
	post.Nodes = nodes
	return post, nil
}

func (s *PostService) validateOnCreate(post *models.Post) error {
	exists, err := s.posts.ExistsByID(post.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: post with id %s", ErrAlreadyExists, post.ID)
	}
	if len(post.Title) < 1 {
		return fmt.Errorf("%w: post title is empty", ErrIllegalArgument)
	}
	return nil
}

// Update replaces the mutable fields of an existing post with the candidate's
// values. The owner and publication date are immutable after creation.
func (s *PostService) Update(post *models.Post) (*models.Post, error) {
	if post.ID == "" {
		return nil, fmt.Errorf("%w: parameter 'post.id' can't be empty on update", ErrIllegalArgument)
	}
	stored, err := s.posts.FindByID(post.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: post with id %s", ErrNotFound, post.ID)
	}

	if len(post.Nodes) > 0 {
		if err := s.nodes.Attach(stored.ID, models.ParentTypePost, post.Nodes); err != nil {
			return nil, err
		}
	}

	stored.Title = post.Title
	stored.Source = post.Source
	stored.Tags = post.Tags
	stored.Status = post.Status
	stored.Changed = time.Now()
	if err := s.posts.Save(stored); err != nil {
		return nil, err
	}
	stored.Nodes = post.Nodes
	return stored, nil
}

// FindAll returns every post with its node tree re-attached.
func (s *PostService) FindAll() ([]models.Post, error) {
	posts, err := s.posts.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		nodes, err := s.nodes.FetchChildren(posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].Nodes = nodes
	}
	return posts, nil
}

// FindAllPaged returns a sorted, direction-aware page of all posts.
func (s *PostService) FindAllPaged(opts ListOptions) ([]models.Post, error) {
	posts, err := s.FindAll()
	if err != nil {
		return nil, err
	}
	return listPage(posts, opts, postSortFields)
}

func (s *PostService) FindByID(id string) (*models.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("%w: post with id %s", ErrNotFound, id)
	}
	nodes, err := s.nodes.FetchChildren(id)
	if err != nil {
		return nil, err
	}
	post.Nodes = nodes
	return post, nil
}

// FindAllByUserID lists a user's posts in store order with raw skip/limit.
func (s *PostService) FindAllByUserID(userID string, limit, offset *int) ([]models.Post, error) {
	posts, err := s.posts.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	return slicePage(posts, limit, offset)
}

func (s *PostService) FindAllByTitle(title string) ([]models.Post, error) {
	return s.posts.FindAllByTitle(title)
}

func (s *PostService) DeleteByID(id string) error {
	exists, err := s.posts.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: post with id %s", ErrNotFound, id)
	}
	return s.posts.DeleteByID(id)
}

// DeleteAll wipes the post collection. Administrative and test use only;
// it performs no authorization check.
func (s *PostService) DeleteAll() error {
	return s.posts.DeleteAll()
}
