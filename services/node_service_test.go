package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contenthub-api/models"
)

func TestNodeAttach(t *testing.T) {
	store := &memNodeStore{}
	svc := NewNodeService(store)

	nodes := []models.Node{
		{Type: models.NodeTypeText, Content: "first"},
		{ID: "node-0000-2", Type: models.NodeTypeImage, Source: "https://img.example/1"},
	}
	require.NoError(t, svc.Attach("post-0000-1", models.ParentTypePost, nodes))

	// parent link and ids are reflected back into the input slice
	assert.Equal(t, "post-0000-1", nodes[0].ParentID)
	assert.Equal(t, models.ParentTypePost, nodes[0].ParentType)
	assert.GreaterOrEqual(t, len(nodes[0].ID), 7)
	// a caller-supplied full-length id is kept
	assert.Equal(t, "node-0000-2", nodes[1].ID)

	stored, err := store.FindAllByParentID("post-0000-1")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "first", stored[0].Content)
	assert.False(t, stored[0].Published.IsZero())
}

func TestNodeAttachNestedChildren(t *testing.T) {
	store := &memNodeStore{}
	svc := NewNodeService(store)

	nodes := []models.Node{
		{
			Type:    models.NodeTypeList,
			Content: "outer",
			Nodes: []models.Node{
				{Type: models.NodeTypeText, Content: "inner"},
			},
		},
	}
	require.NoError(t, svc.Attach("comment-0000-1", models.ParentTypeComment, nodes))

	outer, err := store.FindAllByParentID("comment-0000-1")
	require.NoError(t, err)
	require.Len(t, outer, 1)

	inner, err := store.FindAllByParentID(outer[0].ID)
	require.NoError(t, err)
	require.Len(t, inner, 1)
	assert.Equal(t, models.ParentTypeNode, inner[0].ParentType)
	assert.Equal(t, "inner", inner[0].Content)
}

func TestNodeAttachBestEffort(t *testing.T) {
	store := &memNodeStore{failAfter: 1}
	svc := NewNodeService(store)

	nodes := []models.Node{
		{Type: models.NodeTypeText, Content: "persisted"},
		{Type: models.NodeTypeText, Content: "rejected"},
	}
	err := svc.Attach("post-0000-1", models.ParentTypePost, nodes)
	require.Error(t, err)

	// the failure is not rolled back: earlier nodes in the batch remain
	stored, findErr := store.FindAllByParentID("post-0000-1")
	require.NoError(t, findErr)
	require.Len(t, stored, 1)
	assert.Equal(t, "persisted", stored[0].Content)
}

func TestNodeFetchChildren(t *testing.T) {
	store := &memNodeStore{}
	svc := NewNodeService(store)
	store.Save(&models.Node{ID: "node-0000-1", ParentID: "post-0000-1", ParentType: models.ParentTypePost})
	store.Save(&models.Node{ID: "node-0000-2", ParentID: "post-0000-2", ParentType: models.ParentTypePost})

	children, err := svc.FetchChildren("post-0000-1")
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "node-0000-1", children[0].ID)

	none, err := svc.FetchChildren("post-none")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNodeDeleteByParentID(t *testing.T) {
	store := &memNodeStore{}
	svc := NewNodeService(store)
	store.Save(&models.Node{ID: "node-0000-1", ParentID: "post-0000-1", ParentType: models.ParentTypePost})
	store.Save(&models.Node{ID: "node-0000-2", ParentID: "post-0000-1", ParentType: models.ParentTypePost})
	store.Save(&models.Node{ID: "node-0000-3", ParentID: "post-0000-2", ParentType: models.ParentTypePost})

	require.NoError(t, svc.DeleteByParentID("post-0000-1"))

	remaining, err := store.FindAll()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "node-0000-3", remaining[0].ID)
}
