package repositories

import (
	"errors"

	"gorm.io/gorm"

	"contenthub-api/models"
)

// PostRepository is the gorm-backed post collection handle.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) ExistsByID(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindByID returns nil without error when no post has the given id;
// the services decide whether that is a not-found condition.
func (r *PostRepository) FindByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) FindAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Find(&posts).Error
	return posts, err
}

func (r *PostRepository) FindAllByUserID(userID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("user_id = ?", userID).Find(&posts).Error
	return posts, err
}

func (r *PostRepository) FindAllByTitle(title string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("title = ?", title).Find(&posts).Error
	return posts, err
}

func (r *PostRepository) Save(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *PostRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.Post{}, "id = ?", id).Error
}

func (r *PostRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Post{}).Error
}
