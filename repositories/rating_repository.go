package repositories

import (
	"errors"

	"gorm.io/gorm"

	"contenthub-api/models"
)

// RatingRepository is the gorm-backed rating collection handle.
type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) ExistsByID(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RatingRepository) FindByID(id string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.First(&rating, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) FindAll() ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) FindAllByUserID(userID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("user_id = ?", userID).Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) FindAllByPostID(postID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("post_id = ?", postID).Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) FindByUserIDAndPostID(userID, postID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.First(&rating, "user_id = ? AND post_id = ?", userID, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) Save(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

func (r *RatingRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.Rating{}, "id = ?", id).Error
}

func (r *RatingRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Rating{}).Error
}
