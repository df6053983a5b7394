// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
	"github.com/urfave/cli"
)

// intArg parses the first positional argument as a record ID.
func intArg(cc *cli.Context, what string) (int, error) {
	arg := cc.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("missing %s", what)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return n, nil
}

// errNoChanges is returned from update if no field flags were given.
var errNoChanges = errors.New("nothing to change; pass --user, --title, or --body")

// printJSON writes v as a single line of JSON.
func (c *ctl) printJSON(v interface{}) error {
	if err := restdata.EncodeTo(c.Out, v); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.Out)
	return err
}

func (c *ctl) printPosts(posts []placeholder.Post) error {
	if c.JSON {
		return c.printJSON(posts)
	}
	w := tabwriter.NewWriter(c.Out, 0, 8, 1, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tTITLE")
	for _, post := range posts {
		fmt.Fprintf(w, "%d\t%d\t%s\n", post.ID, post.UserID, post.Title)
	}
	return w.Flush()
}

func (c *ctl) printPost(post placeholder.Post) error {
	if c.JSON {
		return c.printJSON(post)
	}
	_, err := fmt.Fprintf(c.Out, "Post %d by user %d\n%s\n\n%s\n",
		post.ID, post.UserID, post.Title, post.Body)
	return err
}

func (c *ctl) printComments(comments []placeholder.Comment) error {
	if c.JSON {
		return c.printJSON(comments)
	}
	w := tabwriter.NewWriter(c.Out, 0, 8, 1, ' ', 0)
	fmt.Fprintln(w, "ID\tPOST\tEMAIL\tNAME")
	for _, comment := range comments {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", comment.ID, comment.PostID, comment.Email, comment.Name)
	}
	return w.Flush()
}

func (c *ctl) printUsers(users []placeholder.User) error {
	if c.JSON {
		return c.printJSON(users)
	}
	w := tabwriter.NewWriter(c.Out, 0, 8, 1, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tEMAIL")
	for _, user := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", user.ID, user.Username, user.Name, user.Email)
	}
	return w.Flush()
}

func (c *ctl) printUser(user placeholder.User) error {
	if c.JSON {
		return c.printJSON(user)
	}
	_, err := fmt.Fprintf(c.Out, "%s (%s) <%s>\n%s, %s\n%s\n%s\n",
		user.Name, user.Username, user.Email,
		user.Address.Street, user.Address.City,
		user.Phone, user.Company.Name)
	return err
}
