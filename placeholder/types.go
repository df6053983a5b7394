// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package placeholder

import (
	"math"
	"net/url"
	"strconv"
)

// Post is a single blog-style post.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// PostInput is the body of a create or update request.  The ID is
// never part of the body; it is either assigned by the server or named
// in the URL.
type PostInput struct {
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Comment is a comment attached to a post.
type Comment struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// Geo is a latitude/longitude pair.  JSONPlaceholder sends these as
// strings, so they are kept as strings.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Address is a user's postal address.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Company describes a user's employer.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// User is a registered user.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

// ListPostsParams filters and pages a post listing.  Zero values mean
// "no constraint".
type ListPostsParams struct {
	// UserID restricts the listing to posts by one user.
	UserID int

	// Page selects a 1-based page of Limit records.  It has no
	// effect unless Limit is also set.
	Page int

	// Limit caps the number of records returned.
	Limit int
}

// Query renders the parameters as a URL query string, omitting zero
// values.
func (p ListPostsParams) Query() url.Values {
	q := url.Values{}
	if p.UserID != 0 {
		q.Set("userId", strconv.Itoa(p.UserID))
	}
	setPaging(q, p.Page, p.Limit)
	return q
}

// ListUsersParams filters and pages a user listing.
type ListUsersParams struct {
	Username string
	Email    string
	Page     int
	Limit    int
}

// Query renders the parameters as a URL query string, omitting zero
// values.
func (p ListUsersParams) Query() url.Values {
	q := url.Values{}
	if p.Username != "" {
		q.Set("username", p.Username)
	}
	if p.Email != "" {
		q.Set("email", p.Email)
	}
	setPaging(q, p.Page, p.Limit)
	return q
}

// Paging query parameter names, as understood by json-server.
const (
	PageParam  = "_page"
	LimitParam = "_limit"
)

func setPaging(q url.Values, page, limit int) {
	if page != 0 {
		q.Set(PageParam, strconv.Itoa(page))
	}
	if limit != 0 {
		q.Set(LimitParam, strconv.Itoa(limit))
	}
}

// PageOffset returns the number of records before the requested page.
// A zero page means the first page.  Offsets too large to represent
// saturate at math.MaxInt, which is past the end of any listing.
func PageOffset(page, limit int) int {
	if limit <= 0 || page <= 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// Paginate applies json-server paging semantics to a slice length: it
// returns the [start, end) bounds of the requested page.  A zero limit
// selects everything; a zero page means the first page.
func Paginate(n, page, limit int) (start, end int) {
	if limit <= 0 {
		return 0, n
	}
	start = PageOffset(page, limit)
	if start > n {
		start = n
	}
	end = n
	if limit < n-start {
		end = start + limit
	}
	return
}
