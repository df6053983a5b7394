// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"context"
	"database/sql"

	"github.com/diffeo/go-placeholder/placeholder"
)

var userColumns = []string{
	userID,
	userName,
	userUsername,
	userEmail,
	userPhone,
	userWebsite,
	userAddress,
	userCompany,
}

func scanUser(row interface{ Scan(...interface{}) error }) (user placeholder.User, err error) {
	var address, company []byte
	err = row.Scan(&user.ID, &user.Name, &user.Username, &user.Email,
		&user.Phone, &user.Website, &address, &company)
	if err == nil {
		err = sqlToJSON(address, &user.Address)
	}
	if err == nil {
		err = sqlToJSON(company, &user.Company)
	}
	return
}

type userService struct {
	db *sql.DB
}

func (s userService) GetList(ctx context.Context, params placeholder.ListUsersParams) ([]placeholder.User, error) {
	var (
		qp         queryParams
		conditions []string
	)
	if params.Username != "" {
		conditions = append(conditions, userUsername+"="+qp.Param(params.Username))
	}
	if params.Email != "" {
		conditions = append(conditions, userEmail+"="+qp.Param(params.Email))
	}
	query := buildSelect(userColumns, []string{userTable}, conditions)
	query += pageClause(&qp, userID, params.Page, params.Limit)

	result := []placeholder.User{}
	err := queryAndScan(ctx, s.db, query, qp, func(rows *sql.Rows) error {
		user, err := scanUser(rows)
		if err == nil {
			result = append(result, user)
		}
		return err
	})
	return result, err
}

func (s userService) GetByID(ctx context.Context, id int) (user placeholder.User, err error) {
	query := buildSelect(userColumns, []string{userTable}, []string{isUser})
	err = withTx(ctx, s.db, true, func(tx *sql.Tx) error {
		var err error
		user, err = scanUser(tx.QueryRowContext(ctx, query, id))
		if err == sql.ErrNoRows {
			return placeholder.ErrNoSuchUser{ID: id}
		}
		return err
	})
	return
}
