package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contenthub-api/models"
)

func newPostFixture() (*PostService, *memPostStore, *memNodeStore) {
	posts := &memPostStore{}
	nodes := &memNodeStore{}
	return NewPostService(posts, NewNodeService(nodes)), posts, nodes
}

func TestPostCreateAssignsID(t *testing.T) {
	svc, _, _ := newPostFixture()
	identity := models.Identity{UserID: "writer-1"}

	tests := []struct {
		name       string
		suppliedID string
	}{
		{"no id", ""},
		{"short id", "abc123"}, // below the generated-id length, treated as unset
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.Create(&models.Post{ID: tt.suppliedID, Title: "hello"}, identity)
			require.NoError(t, err)
			assert.NotEqual(t, tt.suppliedID, created.ID)
			assert.GreaterOrEqual(t, len(created.ID), 7)
		})
	}
}

func TestPostCreateSetsOwnerAndStatus(t *testing.T) {
	svc, store, _ := newPostFixture()

	created, err := svc.Create(&models.Post{Title: "hello", UserID: "spoofed"}, models.Identity{UserID: "writer-1"})
	require.NoError(t, err)
	assert.Equal(t, "writer-1", created.UserID)
	assert.Equal(t, models.StatusDraft, created.Status)
	assert.False(t, created.Published.IsZero())

	stored, err := store.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "writer-1", stored.UserID)
}

func TestPostCreateAlreadyExists(t *testing.T) {
	svc, store, _ := newPostFixture()
	store.Save(&models.Post{ID: "post-0000-1", Title: "taken"})

	_, err := svc.Create(&models.Post{ID: "post-0000-1", Title: "new"}, models.Identity{UserID: "u"})
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestPostCreateEmptyTitle(t *testing.T) {
	svc, _, _ := newPostFixture()

	_, err := svc.Create(&models.Post{Title: ""}, models.Identity{UserID: "u"})
	require.ErrorIs(t, err, ErrIllegalArgument)
}

func TestPostCreatePersistsNodes(t *testing.T) {
	svc, _, nodes := newPostFixture()

	post := &models.Post{
		Title: "with blocks",
		Nodes: []models.Node{
			{Type: models.NodeTypeText, Content: "first"},
			{Type: models.NodeTypeImage, Source: "https://img.example/1"},
		},
	}
	created, err := svc.Create(post, models.Identity{UserID: "writer-1"})
	require.NoError(t, err)

	// returned view carries the node list, store holds the flattened records
	require.Len(t, created.Nodes, 2)
	children, err := nodes.FindAllByParentID(created.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, models.ParentTypePost, children[0].ParentType)
	assert.Equal(t, "first", children[0].Content)
}

func TestPostUpdate(t *testing.T) {
	svc, store, _ := newPostFixture()
	store.Save(&models.Post{ID: "post-0000-1", UserID: "writer-1", Title: "old", Status: models.StatusDraft})

	updated, err := svc.Update(&models.Post{
		ID:     "post-0000-1",
		UserID: "someone-else",
		Title:  "new title",
		Source: "https://example.com",
		Status: models.StatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, models.StatusPublished, updated.Status)
	// the owner is immutable after creation
	assert.Equal(t, "writer-1", updated.UserID)
	assert.False(t, updated.Changed.IsZero())
}

func TestPostUpdateErrors(t *testing.T) {
	svc, _, _ := newPostFixture()

	_, err := svc.Update(&models.Post{Title: "no id"})
	require.ErrorIs(t, err, ErrIllegalArgument)

	_, err = svc.Update(&models.Post{ID: "missing-1", Title: "gone"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPostFindAllPagedEndToEnd(t *testing.T) {
	svc, store, _ := newPostFixture()
	store.Save(&models.Post{ID: "1", Title: "post"})
	store.Save(&models.Post{ID: "2", Title: "post"})

	got, err := svc.FindAllPaged(ListOptions{Limit: intPtr(1), Offset: intPtr(0), Sort: strPtr("id")})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got, err = svc.FindAllPaged(ListOptions{Limit: intPtr(1), Offset: intPtr(0), Sort: strPtr("id"), Desc: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestPostFindAllRehydratesNodes(t *testing.T) {
	svc, store, nodes := newPostFixture()
	store.Save(&models.Post{ID: "post-0000-1", Title: "a"})
	nodes.Save(&models.Node{ID: "node-0000-1", ParentID: "post-0000-1", ParentType: models.ParentTypePost, Content: "body"})

	all, err := svc.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Nodes, 1)
	assert.Equal(t, "body", all[0].Nodes[0].Content)

	byID, err := svc.FindByID("post-0000-1")
	require.NoError(t, err)
	require.Len(t, byID.Nodes, 1)
}

func TestPostFindByIDNotFound(t *testing.T) {
	svc, _, _ := newPostFixture()

	_, err := svc.FindByID("missing-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPostFindAllByUserID(t *testing.T) {
	svc, store, _ := newPostFixture()
	store.Save(&models.Post{ID: "1", UserID: "u1", Title: "a"})
	store.Save(&models.Post{ID: "2", UserID: "u2", Title: "b"})
	store.Save(&models.Post{ID: "3", UserID: "u1", Title: "c"})

	got, err := svc.FindAllByUserID("u1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, idsOf(got))

	got, err = svc.FindAllByUserID("u1", intPtr(1), intPtr(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, idsOf(got))

	_, err = svc.FindAllByUserID("u1", intPtr(-1), nil)
	require.ErrorIs(t, err, ErrIllegalArgument)
}

func TestPostDeleteByID(t *testing.T) {
	svc, store, _ := newPostFixture()
	store.Save(&models.Post{ID: "post-0000-1", Title: "a"})

	require.NoError(t, svc.DeleteByID("post-0000-1"))
	exists, _ := store.ExistsByID("post-0000-1")
	assert.False(t, exists)

	require.ErrorIs(t, svc.DeleteByID("post-0000-1"), ErrNotFound)
}

func TestPostDeleteAll(t *testing.T) {
	svc, store, _ := newPostFixture()
	store.Save(&models.Post{ID: "1", Title: "a"})
	store.Save(&models.Post{ID: "2", Title: "b"})

	require.NoError(t, svc.DeleteAll())
	all, _ := store.FindAll()
	assert.Empty(t, all)
}
