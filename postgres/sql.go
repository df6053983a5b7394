// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

// This file contains generic support code for PostgreSQL
// applications.
//
// (1) Functions to help with database/sql: withTx() to do work in a
//     transaction that can be retried, and scanRows() to loop over the
//     results of a multi-row SELECT
//
// (2) Helpers to build SQL SELECT and INSERT statements (dealing
//     entirely in strings)
//
// (3) queryParams, a parameter list that can produce $1, $2, ... out
//
// (4) JSON column marshallers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/lib/pq"
	"github.com/ugorji/go/codec"
)

// maxTxAttempts bounds how many times withTx runs a transaction that
// keeps failing with a serialization error.
const maxTxAttempts = 5

// withTx calls some function with a database/sql transaction object.
// If f panics or returns a non-nil error, rolls the transaction back;
// otherwise commits it before returning.  Returns the error value from
// f, or some other error related to transaction management.  A
// transaction that fails with a serialization error is retried from
// the start, up to maxTxAttempts times in all.
func withTx(ctx context.Context, db *sql.DB, readOnly bool, f func(*sql.Tx) error) error {
	return retrySerialization(func() error {
		return runTx(ctx, db, readOnly, f)
	})
}

// retrySerialization calls attempt until it returns something other
// than a serialization failure, at most maxTxAttempts times.  It
// returns the last error.
func retrySerialization(attempt func() error) (err error) {
	for i := 0; i < maxTxAttempts; i++ {
		err = attempt()
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// isSerializationFailure reports whether err is PostgreSQL's
// serialization_failure.
func isSerializationFailure(err error) bool {
	pqerr, ok := err.(*pq.Error)
	return ok && pqerr.Code == "40001"
}

// runTx is a single attempt of withTx.
func runTx(ctx context.Context, db *sql.DB, readOnly bool, f func(*sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  readOnly,
	})
	if err != nil {
		return err
	}

	// If we have a failure, roll back; and if that rollback fails
	// and we don't yet have an error, set the error
	done := false
	defer func() {
		if !done {
			err2 := tx.Rollback()
			if err == nil {
				err = err2
			}
		}
	}()

	err = f(tx)
	if err == nil {
		done = true
		err = tx.Commit()
	}
	return err
}

// scanRows runs an SQL query and calls a function for each row in the
// result.  The callback function should only call the Scan() method on
// the provided Rows object; this function will take care of advancing
// through the list of rows and closing the iterator as required.
func scanRows(rows *sql.Rows, f func() error) (err error) {
	var done bool
	defer func() {
		if !done {
			err2 := rows.Close()
			if err == nil {
				err = err2
			}
		}
	}()

	for rows.Next() {
		err = f()
		if err != nil {
			return
		}
	}
	done = true
	err = rows.Err()
	return
}

// queryAndScan establishes a read-only transaction, runs query on it
// with params, and calls f for each row in it.
func queryAndScan(ctx context.Context, db *sql.DB, query string, params queryParams, f func(*sql.Rows) error) error {
	return withTx(ctx, db, true, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, params...)
		if err != nil {
			return err
		}
		return scanRows(rows, func() error {
			return f(rows)
		})
	})
}

// buildSelect constructs a simple SQL SELECT statement by string
// concatenation.  All of the conditions are ANDed together.
func buildSelect(outputs, tables, conditions []string) string {
	query := "SELECT "
	query += strings.Join(outputs, ", ")
	query += " FROM "
	query += strings.Join(tables, ", ")
	if len(conditions) > 0 {
		query += " WHERE "
		query += strings.Join(conditions, " AND ")
	}
	return query
}

// buildInsert constructs an SQL INSERT statement for a single row.
// values are unquoted SQL, usually queryParams placeholders.
func buildInsert(table string, columns, values []string) string {
	return "INSERT INTO " + table + "(" + strings.Join(columns, ", ") +
		") VALUES(" + strings.Join(values, ", ") + ")"
}

// pageClause produces the ORDER BY and LIMIT/OFFSET suffix for a
// listing, matching placeholder.Paginate.
func pageClause(qp *queryParams, orderBy string, page, limit int) string {
	clause := " ORDER BY " + orderBy
	if limit <= 0 {
		return clause
	}
	clause += " LIMIT " + qp.Param(limit)
	clause += " OFFSET " + qp.Param(placeholder.PageOffset(page, limit))
	return clause
}

// queryParams wraps a list of query parameters.
type queryParams []interface{}

// Param adds a parameter to the query parameter list, returning its
// position as $1, $2, ...
func (qp *queryParams) Param(param interface{}) string {
	*qp = append(*qp, param)
	return fmt.Sprintf("$%v", len(*qp))
}

// jsonHandle is shared by the JSON column marshallers.
var jsonHandle = &codec.JsonHandle{}

// jsonToSQL encodes a value for a JSONB column.  lib/pq sends []byte
// as bytea, so this returns a string.
func jsonToSQL(v interface{}) (string, error) {
	var out []byte
	err := codec.NewEncoderBytes(&out, jsonHandle).Encode(v)
	return string(out), err
}

// sqlToJSON decodes a JSONB column into out, which must be a pointer.
func sqlToJSON(data []byte, out interface{}) error {
	return codec.NewDecoderBytes(data, jsonHandle).Decode(out)
}
