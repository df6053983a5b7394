// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"context"
	"database/sql"

	"github.com/diffeo/go-placeholder/placeholder"
)

var postColumns = []string{postID, postUserID, postTitle, postBody}

func scanPost(row interface{ Scan(...interface{}) error }) (post placeholder.Post, err error) {
	err = row.Scan(&post.ID, &post.UserID, &post.Title, &post.Body)
	return
}

type postService struct {
	db *sql.DB
}

func (s postService) GetList(ctx context.Context, params placeholder.ListPostsParams) ([]placeholder.Post, error) {
	var (
		qp         queryParams
		conditions []string
	)
	if params.UserID != 0 {
		conditions = append(conditions, postUserID+"="+qp.Param(params.UserID))
	}
	query := buildSelect(postColumns, []string{postTable}, conditions)
	query += pageClause(&qp, postID, params.Page, params.Limit)

	result := []placeholder.Post{}
	err := queryAndScan(ctx, s.db, query, qp, func(rows *sql.Rows) error {
		post, err := scanPost(rows)
		if err == nil {
			result = append(result, post)
		}
		return err
	})
	return result, err
}

func (s postService) GetByID(ctx context.Context, id int) (post placeholder.Post, err error) {
	query := buildSelect(postColumns, []string{postTable}, []string{isPost})
	err = withTx(ctx, s.db, true, func(tx *sql.Tx) error {
		var err error
		post, err = scanPost(tx.QueryRowContext(ctx, query, id))
		if err == sql.ErrNoRows {
			return placeholder.ErrNoSuchPost{ID: id}
		}
		return err
	})
	return
}

func (s postService) Create(ctx context.Context, data placeholder.PostInput) (post placeholder.Post, err error) {
	var qp queryParams
	query := buildInsert(postTable,
		[]string{"user_id", "title", "body"},
		[]string{qp.Param(data.UserID), qp.Param(data.Title), qp.Param(data.Body)})
	query += " RETURNING id"
	post = placeholder.Post{
		UserID: data.UserID,
		Title:  data.Title,
		Body:   data.Body,
	}
	err = withTx(ctx, s.db, false, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, qp...).Scan(&post.ID)
	})
	return
}

func (s postService) Update(ctx context.Context, id int, data placeholder.PostInput) (placeholder.Post, error) {
	query := "UPDATE " + postTable + " SET user_id=$2, title=$3, body=$4 WHERE " + isPost
	post := placeholder.Post{
		UserID: data.UserID,
		ID:     id,
		Title:  data.Title,
		Body:   data.Body,
	}
	err := withTx(ctx, s.db, false, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, id, data.UserID, data.Title, data.Body)
		if err != nil {
			return err
		}
		return checkAffected(result, placeholder.ErrNoSuchPost{ID: id})
	})
	return post, err
}

func (s postService) Remove(ctx context.Context, id int) error {
	// comments go with ON DELETE CASCADE
	query := "DELETE FROM " + postTable + " WHERE " + isPost
	return withTx(ctx, s.db, false, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		return checkAffected(result, placeholder.ErrNoSuchPost{ID: id})
	})
}

// checkAffected returns missing if result changed no rows.
func checkAffected(result sql.Result, missing error) error {
	count, err := result.RowsAffected()
	if err == nil && count == 0 {
		err = missing
	}
	return err
}

type commentService struct {
	db *sql.DB
}

func (s commentService) GetByPost(ctx context.Context, postID int) ([]placeholder.Comment, error) {
	query := buildSelect([]string{
		commentID,
		commentPostID,
		commentName,
		commentEmail,
		commentBody,
	}, []string{commentTable}, []string{onPost})
	query += " ORDER BY " + commentID

	result := []placeholder.Comment{}
	err := queryAndScan(ctx, s.db, query, queryParams{postID}, func(rows *sql.Rows) error {
		var comment placeholder.Comment
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.Name, &comment.Email, &comment.Body)
		if err == nil {
			result = append(result, comment)
		}
		return err
	})
	return result, err
}
