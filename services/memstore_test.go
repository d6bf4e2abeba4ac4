package services

import (
	"errors"

	"contenthub-api/models"
)

// In-memory store fakes. They preserve insertion order, upsert on Save, and
// stand in for the gorm repositories in every service test.

type memPostStore struct {
	posts []models.Post
}

func (s *memPostStore) indexOf(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *memPostStore) ExistsByID(id string) (bool, error) {
	return s.indexOf(id) >= 0, nil
}

func (s *memPostStore) FindByID(id string) (*models.Post, error) {
	if i := s.indexOf(id); i >= 0 {
		p := s.posts[i]
		return &p, nil
	}
	return nil, nil
}

func (s *memPostStore) FindAll() ([]models.Post, error) {
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *memPostStore) FindAllByUserID(userID string) ([]models.Post, error) {
	var out []models.Post
	for _, p := range s.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memPostStore) FindAllByTitle(title string) ([]models.Post, error) {
	var out []models.Post
	for _, p := range s.posts {
		if p.Title == title {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memPostStore) Save(post *models.Post) error {
	if i := s.indexOf(post.ID); i >= 0 {
		s.posts[i] = *post
		return nil
	}
	s.posts = append(s.posts, *post)
	return nil
}

func (s *memPostStore) DeleteByID(id string) error {
	if i := s.indexOf(id); i >= 0 {
		s.posts = append(s.posts[:i], s.posts[i+1:]...)
	}
	return nil
}

func (s *memPostStore) DeleteAll() error {
	s.posts = nil
	return nil
}

type memCommentStore struct {
	comments []models.Comment
}

func (s *memCommentStore) indexOf(id string) int {
	for i := range s.comments {
		if s.comments[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *memCommentStore) ExistsByID(id string) (bool, error) {
	return s.indexOf(id) >= 0, nil
}

func (s *memCommentStore) FindByID(id string) (*models.Comment, error) {
	if i := s.indexOf(id); i >= 0 {
		c := s.comments[i]
		return &c, nil
	}
	return nil, nil
}

func (s *memCommentStore) FindAll() ([]models.Comment, error) {
	out := make([]models.Comment, len(s.comments))
	copy(out, s.comments)
	return out, nil
}

func (s *memCommentStore) FindAllByUserID(userID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range s.comments {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memCommentStore) Save(comment *models.Comment) error {
	if i := s.indexOf(comment.ID); i >= 0 {
		s.comments[i] = *comment
		return nil
	}
	s.comments = append(s.comments, *comment)
	return nil
}

func (s *memCommentStore) DeleteByID(id string) error {
	if i := s.indexOf(id); i >= 0 {
		s.comments = append(s.comments[:i], s.comments[i+1:]...)
	}
	return nil
}

func (s *memCommentStore) DeleteAll() error {
	s.comments = nil
	return nil
}

type memNodeStore struct {
	nodes []models.Node

	// when > 0, Save fails once this many nodes have been persisted
	failAfter int
}

var errStoreDown = errors.New("store down")

func (s *memNodeStore) indexOf(id string) int {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *memNodeStore) FindAllByParentID(parentID string) ([]models.Node, error) {
	var out []models.Node
	for _, n := range s.nodes {
		if n.ParentID == parentID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *memNodeStore) FindAll() ([]models.Node, error) {
	out := make([]models.Node, len(s.nodes))
	copy(out, s.nodes)
	return out, nil
}

func (s *memNodeStore) Save(node *models.Node) error {
	if s.failAfter > 0 && len(s.nodes) >= s.failAfter {
		return errStoreDown
	}
	if i := s.indexOf(node.ID); i >= 0 {
		s.nodes[i] = *node
		return nil
	}
	s.nodes = append(s.nodes, *node)
	return nil
}

func (s *memNodeStore) DeleteByID(id string) error {
	if i := s.indexOf(id); i >= 0 {
		s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
	}
	return nil
}

func (s *memNodeStore) DeleteAll() error {
	s.nodes = nil
	return nil
}

type memRatingStore struct {
	ratings []models.Rating
}

func (s *memRatingStore) indexOf(id string) int {
	for i := range s.ratings {
		if s.ratings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *memRatingStore) ExistsByID(id string) (bool, error) {
	return s.indexOf(id) >= 0, nil
}

func (s *memRatingStore) FindByID(id string) (*models.Rating, error) {
	if i := s.indexOf(id); i >= 0 {
		r := s.ratings[i]
		return &r, nil
	}
	return nil, nil
}

func (s *memRatingStore) FindAll() ([]models.Rating, error) {
	out := make([]models.Rating, len(s.ratings))
	copy(out, s.ratings)
	return out, nil
}

func (s *memRatingStore) FindAllByUserID(userID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range s.ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memRatingStore) FindAllByPostID(postID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range s.ratings {
		if r.PostID == postID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memRatingStore) FindByUserIDAndPostID(userID, postID string) (*models.Rating, error) {
	for _, r := range s.ratings {
		if r.UserID == userID && r.PostID == postID {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memRatingStore) Save(rating *models.Rating) error {
	if i := s.indexOf(rating.ID); i >= 0 {
		s.ratings[i] = *rating
		return nil
	}
	s.ratings = append(s.ratings, *rating)
	return nil
}

func (s *memRatingStore) DeleteByID(id string) error {
	if i := s.indexOf(id); i >= 0 {
		s.ratings = append(s.ratings[:i], s.ratings[i+1:]...)
	}
	return nil
}

func (s *memRatingStore) DeleteAll() error {
	s.ratings = nil
	return nil
}
