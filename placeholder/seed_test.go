// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package placeholder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSeedShape(t *testing.T) {
	seed := DefaultSeed()
	assert.Len(t, seed.Users, SeedUsers)
	assert.Len(t, seed.Posts, SeedUsers*SeedPostsPerUser)
	assert.Len(t, seed.Comments, SeedUsers*SeedPostsPerUser*SeedCommentsPerPost)

	assert.Equal(t, "Bret", seed.Users[0].Username)
	assert.Equal(t, 1, seed.Posts[0].ID)
	assert.Equal(t, 1, seed.Posts[0].UserID)
	assert.Equal(t, 2, seed.Posts[SeedPostsPerUser].UserID)

	// Comments on post 7 are 31 through 35
	var ids []int
	for _, c := range seed.Comments {
		if c.PostID == 7 {
			ids = append(ids, c.ID)
		}
	}
	assert.Equal(t, []int{31, 32, 33, 34, 35}, ids)
}

func TestLoadSeed(t *testing.T) {
	doc := `
users:
  - id: 1
    name: Ada
    username: ada
    email: ada@example.com
    company:
      name: Engines
      catchPhrase: compute
posts:
  - userId: 1
    id: 3
    title: notes
    body: on the engine
comments:
  - postId: 3
    id: "9"
    email: b@example.com
`
	seed, err := LoadSeed(strings.NewReader(doc))
	if !assert.NoError(t, err) {
		return
	}
	if assert.Len(t, seed.Users, 1) {
		assert.Equal(t, "ada", seed.Users[0].Username)
		assert.Equal(t, "compute", seed.Users[0].Company.CatchPhrase)
	}
	if assert.Len(t, seed.Posts, 1) {
		assert.Equal(t, Post{UserID: 1, ID: 3, Title: "notes", Body: "on the engine"}, seed.Posts[0])
	}
	if assert.Len(t, seed.Comments, 1) {
		assert.Equal(t, 9, seed.Comments[0].ID)
		assert.Equal(t, 3, seed.Comments[0].PostID)
	}
}

func TestLoadSeedBadYAML(t *testing.T) {
	_, err := LoadSeed(strings.NewReader("users: [\n"))
	assert.Error(t, err)
}
