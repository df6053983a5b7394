// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package placeholder

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// Seed is the initial content of a backend.
type Seed struct {
	Users    []User
	Posts    []Post
	Comments []Comment
}

// Number of records DefaultSeed creates, matching the public service.
const (
	SeedUsers           = 10
	SeedPostsPerUser    = 10
	SeedCommentsPerPost = 5
)

var seedUsers = []struct{ name, username, email, city string }{
	{"Leanne Graham", "Bret", "Sincere@april.biz", "Gwenborough"},
	{"Ervin Howell", "Antonette", "Shanna@melissa.tv", "Wisokyburgh"},
	{"Clementine Bauch", "Samantha", "Nathan@yesenia.net", "McKenziehaven"},
	{"Patricia Lebsack", "Karianne", "Julianne.OConner@kory.org", "South Elvis"},
	{"Chelsey Dietrich", "Kamren", "Lucio_Hettinger@annie.ca", "Roscoeview"},
	{"Mrs. Dennis Schulist", "Leopoldo_Corkery", "Karley_Dach@jasper.info", "South Christy"},
	{"Kurtis Weissnat", "Elwyn.Skiles", "Telly.Hoeger@billy.biz", "Howemouth"},
	{"Nicholas Runolfsdottir V", "Maxime_Nienow", "Sherwood@rosamond.me", "Aliyaview"},
	{"Glenna Reichert", "Delphine", "Chaim_McDermott@dana.io", "Bartholomebury"},
	{"Clementina DuBuque", "Moriah.Stanton", "Rey.Padberg@karina.biz", "Lebsackbury"},
}

// DefaultSeed returns a deterministic data set shaped like the public
// JSONPlaceholder service: 10 users, 10 posts per user, and 5 comments
// per post, with IDs starting at 1.
func DefaultSeed() Seed {
	var seed Seed
	for i, u := range seedUsers {
		id := i + 1
		seed.Users = append(seed.Users, User{
			ID:       id,
			Name:     u.name,
			Username: u.username,
			Email:    u.email,
			Address: Address{
				Street:  fmt.Sprintf("%d Main Street", 100+id),
				Suite:   fmt.Sprintf("Apt. %d", 500+id),
				City:    u.city,
				Zipcode: fmt.Sprintf("%05d", 10000+id*37),
				Geo:     Geo{Lat: fmt.Sprintf("%.4f", -40+float64(id)*7.5), Lng: fmt.Sprintf("%.4f", 80-float64(id)*13.25)},
			},
			Phone:   fmt.Sprintf("1-770-736-%04d", 8000+id),
			Website: fmt.Sprintf("%s.example.org", u.username),
			Company: Company{
				Name:        fmt.Sprintf("%s Group", u.city),
				CatchPhrase: "Multi-layered client-server neural-net",
				BS:          "harness real-time e-markets",
			},
		})
	}
	for userID := 1; userID <= SeedUsers; userID++ {
		for j := 1; j <= SeedPostsPerUser; j++ {
			postID := (userID-1)*SeedPostsPerUser + j
			seed.Posts = append(seed.Posts, Post{
				UserID: userID,
				ID:     postID,
				Title:  fmt.Sprintf("post %d by user %d", postID, userID),
				Body:   fmt.Sprintf("body of post %d", postID),
			})
			for k := 1; k <= SeedCommentsPerPost; k++ {
				commentID := (postID-1)*SeedCommentsPerPost + k
				seed.Comments = append(seed.Comments, Comment{
					PostID: postID,
					ID:     commentID,
					Name:   fmt.Sprintf("comment %d on post %d", commentID, postID),
					Email:  fmt.Sprintf("reader%d@example.com", commentID),
					Body:   fmt.Sprintf("body of comment %d", commentID),
				})
			}
		}
	}
	return seed
}

// LoadSeed reads a seed from YAML.  The document has top-level "users",
// "posts", and "comments" lists whose entries use the same field names
// as the JSON wire format (matched case-insensitively).
func LoadSeed(r io.Reader) (Seed, error) {
	var seed Seed
	bytes, err := ioutil.ReadAll(r)
	if err != nil {
		return seed, err
	}
	var raw map[string]interface{}
	if err = yaml.Unmarshal(bytes, &raw); err != nil {
		return seed, err
	}
	config := mapstructure.DecoderConfig{
		Result:           &seed,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err == nil {
		err = decoder.Decode(raw)
	}
	return seed, err
}
