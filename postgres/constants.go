// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

const (
	// SQL table names:
	userTable    = "users"
	postTable    = "posts"
	commentTable = "comments"

	// SQL column names:
	userID        = userTable + ".id"
	userName      = userTable + ".name"
	userUsername  = userTable + ".username"
	userEmail     = userTable + ".email"
	userPhone     = userTable + ".phone"
	userWebsite   = userTable + ".website"
	userAddress   = userTable + ".address"
	userCompany   = userTable + ".company"
	postID        = postTable + ".id"
	postUserID    = postTable + ".user_id"
	postTitle     = postTable + ".title"
	postBody      = postTable + ".body"
	commentID     = commentTable + ".id"
	commentPostID = commentTable + ".post_id"
	commentName   = commentTable + ".name"
	commentEmail  = commentTable + ".email"
	commentBody   = commentTable + ".body"

	// Sequences behind the SERIAL columns:
	postIDSequence    = "posts_id_seq"
	commentIDSequence = "comments_id_seq"

	// WHERE clause fragments:
	isUser = userID + "=$1"
	isPost = postID + "=$1"
	onPost = commentPostID + "=$1"
)
