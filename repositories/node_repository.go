package repositories

import (
	"gorm.io/gorm"

	"contenthub-api/models"
)

// NodeRepository is the gorm-backed node collection handle.
type NodeRepository struct {
	db *gorm.DB
}

func NewNodeRepository(db *gorm.DB) *NodeRepository {
	return &NodeRepository{db: db}
}

func (r *NodeRepository) FindAllByParentID(parentID string) ([]models.Node, error) {
	var nodes []models.Node
	err := r.db.Where("parent_id = ?", parentID).Find(&nodes).Error
	return nodes, err
}

func (r *NodeRepository) FindAll() ([]models.Node, error) {
	var nodes []models.Node
	err := r.db.Find(&nodes).Error
	return nodes, err
}

func (r *NodeRepository) Save(node *models.Node) error {
	return r.db.Save(node).Error
}

func (r *NodeRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.Node{}, "id = ?", id).Error
}

func (r *NodeRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Node{}).Error
}
