package services

import (
	"fmt"
	"time"

	"contenthub-api/models"
	"contenthub-api/utils"
)

// RatingStore is the rating collection handle the lifecycle service needs.
type RatingStore interface {
	ExistsByID(id string) (bool, error)
	FindByID(id string) (*models.Rating, error)
	FindAll() ([]models.Rating, error)
	FindAllByUserID(userID string) ([]models.Rating, error)
	FindAllByPostID(postID string) ([]models.Rating, error)
	FindByUserIDAndPostID(userID, postID string) (*models.Rating, error)
	Save(rating *models.Rating) error
	DeleteByID(id string) error
	DeleteAll() error
}

var ratingSortFields = map[string]comparator[models.Rating]{
	"id":        func(a, b models.Rating) int { return compareStrings(a.ID, b.ID) },
	"published": func(a, b models.Rating) int { return compareTimes(a.Published, b.Published) },
}

type RatingService struct {
	ratings RatingStore
	posts   PostStore
}

func NewRatingService(ratings RatingStore, posts PostStore) *RatingService {
	return &RatingService{ratings: ratings, posts: posts}
}

// Create stores a rating by the acting identity on a post. A user holds at
// most one live rating per post: an earlier rating on the same post is
// deleted before the new one is saved.
func (s *RatingService) Create(rating *models.Rating, identity models.Identity) (*models.Rating, error) {
	if len(rating.ID) < minIDLength {
		rating.ID = utils.NewID()
	} else {
		exists, err := s.ratings.ExistsByID(rating.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: rating with id %s", ErrAlreadyExists, rating.ID)
		}
	}

	postExists, err := s.posts.ExistsByID(rating.PostID)
	if err != nil {
		return nil, err
	}
	if !postExists {
		return nil, fmt.Errorf("%w: post with id %s", ErrNotFound, rating.PostID)
	}

	rating.UserID = identity.UserID
	rating.Published = time.Now()

	prior, err := s.ratings.FindByUserIDAndPostID(rating.UserID, rating.PostID)
	if err != nil {
		return nil, err
	}
	if prior != nil {
		if err := s.ratings.DeleteByID(prior.ID); err != nil {
			return nil, err
		}
	}

	if err := s.ratings.Save(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// Update replaces the mutable fields of an existing rating with the
// candidate's values. The publication date is kept from the stored record.
func (s *RatingService) Update(rating *models.Rating) (*models.Rating, error) {
	if rating.ID == "" {
		return nil, fmt.Errorf("%w: parameter 'rating.id' can't be empty on update", ErrIllegalArgument)
	}
	stored, err := s.ratings.FindByID(rating.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: rating with id %s", ErrNotFound, rating.ID)
	}

	stored.UserID = rating.UserID
	stored.PostID = rating.PostID
	if err := s.ratings.Save(stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *RatingService) FindAll() ([]models.Rating, error) {
	return s.ratings.FindAll()
}

// FindAllPaged returns a sorted, direction-aware page of all ratings.
func (s *RatingService) FindAllPaged(opts ListOptions) ([]models.Rating, error) {
	ratings, err := s.ratings.FindAll()
	if err != nil {
		return nil, err
	}
	return listPage(ratings, opts, ratingSortFields)
}

func (s *RatingService) FindByID(id string) (*models.Rating, error) {
	rating, err := s.ratings.FindByID(id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, fmt.Errorf("%w: rating with id %s", ErrNotFound, id)
	}
	return rating, nil
}

func (s *RatingService) DeleteByID(id string) error {
	exists, err := s.ratings.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: rating with id %s", ErrNotFound, id)
	}
	return s.ratings.DeleteByID(id)
}

// DeleteAll wipes the rating collection. Administrative and test use only;
// it performs no authorization check.
func (s *RatingService) DeleteAll() error {
	return s.ratings.DeleteAll()
}

// CountByPostID returns how many ratings reference the given post. An
// existing post with no ratings yields zero, not an error.
func (s *RatingService) CountByPostID(postID string) (int, error) {
	exists, err := s.posts.ExistsByID(postID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%w: post with id %s", ErrNotFound, postID)
	}
	ratings, err := s.ratings.FindAllByPostID(postID)
	if err != nil {
		return 0, err
	}
	return len(ratings), nil
}

// FindRatedPostsByUserID resolves every rating by the user to its post, in
// the insertion order of the user's ratings, and applies raw skip/limit.
// A user with no ratings at all is reported as not found.
func (s *RatingService) FindRatedPostsByUserID(userID string, limit, offset *int) ([]models.Post, error) {
	ratings, err := s.ratings.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, fmt.Errorf("%w: no ratings by user with id %s", ErrNotFound, userID)
	}

	posts := make([]models.Post, 0, len(ratings))
	for _, r := range ratings {
		post, err := s.posts.FindByID(r.PostID)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, fmt.Errorf("%w: post with id %s", ErrNotFound, r.PostID)
		}
		posts = append(posts, *post)
	}
	return slicePage(posts, limit, offset)
}
