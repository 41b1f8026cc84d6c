package store

import (
	"testing"

	"spill/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPostPrepends(t *testing.T) {
	st := New()
	st.Dispatch(SetPosts{Posts: []model.Post{{ID: 1}, {ID: 2}}})
	st.Dispatch(AddPost{Post: model.Post{ID: 3}})

	posts := st.State().Posts.Posts
	require.Len(t, posts, 3)
	assert.Equal(t, uint64(3), posts[0].ID, "newest post leads the feed")
	assert.Equal(t, uint64(1), posts[1].ID)
}

func TestRemovePost(t *testing.T) {
	st := New()
	st.Dispatch(SetPosts{Posts: []model.Post{{ID: 1}, {ID: 2}, {ID: 3}}})
	st.Dispatch(RemovePost{ID: 2})

	posts := st.State().Posts.Posts
	require.Len(t, posts, 2)
	assert.Equal(t, uint64(1), posts[0].ID)
	assert.Equal(t, uint64(3), posts[1].ID)

	// removing an unknown id is a no-op
	st.Dispatch(RemovePost{ID: 99})
	assert.Len(t, st.State().Posts.Posts, 2)
}

func TestSnapshotsAreIndependent(t *testing.T) {
	st := New()
	st.Dispatch(SetPosts{Posts: []model.Post{{ID: 1}}})

	before := st.State()
	st.Dispatch(AddPost{Post: model.Post{ID: 2}})

	assert.Len(t, before.Posts.Posts, 1, "earlier snapshot must not see later dispatches")
	assert.Len(t, st.State().Posts.Posts, 2)
}

func TestClearAuth(t *testing.T) {
	st := New()
	st.Dispatch(SetAuth{Token: "tok", User: &model.User{ID: 1}})
	require.Equal(t, "tok", st.State().Auth.Token)

	st.Dispatch(ClearAuth{})
	assert.Empty(t, st.State().Auth.Token)
	assert.Nil(t, st.State().Auth.User)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	st := New()

	var seen []int
	unsubscribe := st.Subscribe(func(s State) {
		seen = append(seen, len(s.Posts.Posts))
	})

	st.Dispatch(AddPost{Post: model.Post{ID: 1}})
	st.Dispatch(AddPost{Post: model.Post{ID: 2}})
	require.Equal(t, []int{1, 2}, seen)

	unsubscribe()
	st.Dispatch(AddPost{Post: model.Post{ID: 3}})
	assert.Equal(t, []int{1, 2}, seen, "unsubscribed listener stays quiet")
}
