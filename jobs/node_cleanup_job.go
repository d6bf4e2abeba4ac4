package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"contenthub-api/models"
	"contenthub-api/repositories"
)

// NodeCleanupJob periodically removes content nodes whose parent entity no
// longer exists. The store does not cascade deletes, so recreating or
// deleting a post's node list orphans the previous nodes; this sweep is the
// explicit compensation.
type NodeCleanupJob struct {
	posts    *repositories.PostRepository
	comments *repositories.CommentRepository
	nodes    *repositories.NodeRepository
	ticker   *time.Ticker
	done     chan bool
}

// NewNodeCleanupJob creates a new orphan-node cleanup job
func NewNodeCleanupJob(db *gorm.DB, interval time.Duration) *NodeCleanupJob {
	return &NodeCleanupJob{
		posts:    repositories.NewPostRepository(db),
		comments: repositories.NewCommentRepository(db),
		nodes:    repositories.NewNodeRepository(db),
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
	}
}

// Start begins the cleanup job
func (j *NodeCleanupJob) Start() {
	fmt.Println("Orphan node cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Orphan node cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *NodeCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *NodeCleanupJob) cleanup() {
	removed, err := j.sweep()
	if err != nil {
		fmt.Printf("Error during orphan node cleanup: %v\n", err)
		return
	}
	if removed > 0 {
		fmt.Printf("Orphan node cleanup removed %d nodes\n", removed)
	}
}

// sweep deletes every node whose parent is gone. Nodes nested under a removed
// node are picked up on later sweeps, once their own parent has vanished.
func (j *NodeCleanupJob) sweep() (int, error) {
	nodes, err := j.nodes.FindAll()
	if err != nil {
		return 0, err
	}

	nodeIDs := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		nodeIDs[n.ID] = true
	}

	removed := 0
	for _, n := range nodes {
		alive, err := j.parentExists(n, nodeIDs)
		if err != nil {
			return removed, err
		}
		if alive {
			continue
		}
		if err := j.nodes.DeleteByID(n.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (j *NodeCleanupJob) parentExists(n models.Node, nodeIDs map[string]bool) (bool, error) {
	switch n.ParentType {
	case models.ParentTypePost:
		return j.posts.ExistsByID(n.ParentID)
	case models.ParentTypeComment:
		return j.comments.ExistsByID(n.ParentID)
	case models.ParentTypeNode:
		return nodeIDs[n.ParentID], nil
	default:
		// Unknown discriminator, leave the node alone.
		return true, nil
	}
}
