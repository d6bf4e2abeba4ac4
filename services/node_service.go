package services

import (
	"time"

	"contenthub-api/models"
	"contenthub-api/utils"
)

// NodeStore is the node collection handle the composition service needs.
type NodeStore interface {
	FindAllByParentID(parentID string) ([]models.Node, error)
	FindAll() ([]models.Node, error)
	Save(node *models.Node) error
	DeleteByID(id string) error
	DeleteAll() error
}

// NodeService creates and re-attaches the content blocks owned by posts and
// comments. Nodes are never created standalone; they only exist as a side
// effect of creating or updating their parent entity.
type NodeService struct {
	nodes NodeStore
}

func NewNodeService(nodes NodeStore) *NodeService {
	return &NodeService{nodes: nodes}
}

// Attach links each node to the given parent, assigns identifiers where the
// caller supplied none, and persists them in input order. Nested children are
// attached recursively under their node's id. Persistence is best-effort: a
// failure partway through leaves the nodes saved so far in place.
func (s *NodeService) Attach(parentID string, parentType models.ParentType, nodes []models.Node) error {
	for i := range nodes {
		n := &nodes[i]
		n.ParentID = parentID
		n.ParentType = parentType
		if len(n.ID) < minIDLength {
			n.ID = utils.NewID()
		}
		if n.Published.IsZero() {
			n.Published = time.Now()
		}

		record := *n
		record.Nodes = nil
		if err := s.nodes.Save(&record); err != nil {
			return err
		}

		if len(n.Nodes) > 0 {
			if err := s.Attach(n.ID, models.ParentTypeNode, n.Nodes); err != nil {
				return err
			}
		}
	}
	return nil
}

// FetchChildren returns the direct child nodes of the given parent in store
// order.
func (s *NodeService) FetchChildren(parentID string) ([]models.Node, error) {
	return s.nodes.FindAllByParentID(parentID)
}

// DeleteByParentID removes every direct child node of the given parent.
// Used by the orphan cleanup job; deeper descendants are picked up on
// subsequent sweeps once their own parent is gone.
func (s *NodeService) DeleteByParentID(parentID string) error {
	children, err := s.nodes.FindAllByParentID(parentID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.nodes.DeleteByID(child.ID); err != nil {
			return err
		}
	}
	return nil
}
