// Copyright 2016-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"fmt"

	"github.com/diffeo/go-placeholder/alert"
	"github.com/diffeo/go-placeholder/format"
	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/urfave/cli"
)

var pageFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "page",
		Usage: "1-based page number (requires --limit)",
	},
	cli.IntFlag{
		Name:  "limit",
		Usage: "maximum number of records",
	},
}

var postInputFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "user",
		Usage: "author's user ID",
	},
	cli.StringFlag{
		Name:  "title",
		Usage: "post title",
	},
	cli.StringFlag{
		Name:  "body",
		Usage: "post body",
	},
}

// toast announces a completed change, stamped with today's date.
func (c *ctl) toast(message string) {
	alert.Toast(c.Alerts, message+" on "+format.Date(c.Clock.Now()), alert.Success)
}

func postsCommand(c *ctl) cli.Command {
	return cli.Command{
		Name:  "posts",
		Usage: "list and change posts",
		Subcommands: []cli.Command{
			{
				Name:  "list",
				Usage: "list posts",
				Flags: append([]cli.Flag{
					cli.IntFlag{
						Name:  "user",
						Usage: "only posts by this user ID",
					},
				}, pageFlags...),
				Action: func(cc *cli.Context) error {
					posts, err := c.Client.Posts().GetList(context.Background(), placeholder.ListPostsParams{
						UserID: cc.Int("user"),
						Page:   cc.Int("page"),
						Limit:  cc.Int("limit"),
					})
					if err != nil {
						return err
					}
					return c.printPosts(posts)
				},
			},
			{
				Name:      "get",
				Usage:     "show one post",
				ArgsUsage: "ID",
				Action: func(cc *cli.Context) error {
					id, err := intArg(cc, "post ID")
					if err != nil {
						return err
					}
					post, err := c.Client.Posts().GetByID(context.Background(), id)
					if err != nil {
						return err
					}
					return c.printPost(post)
				},
			},
			{
				Name:  "create",
				Usage: "create a post",
				Flags: postInputFlags,
				Action: func(cc *cli.Context) error {
					post, err := c.Client.Posts().Create(context.Background(), placeholder.PostInput{
						UserID: cc.Int("user"),
						Title:  cc.String("title"),
						Body:   cc.String("body"),
					})
					if err != nil {
						return err
					}
					c.toast(fmt.Sprintf("Post %d created", post.ID))
					return c.printPost(post)
				},
			},
			{
				Name:      "update",
				Usage:     "change a post",
				ArgsUsage: "ID",
				Flags:     postInputFlags,
				Action: func(cc *cli.Context) error {
					id, err := intArg(cc, "post ID")
					if err != nil {
						return err
					}
					if !cc.IsSet("user") && !cc.IsSet("title") && !cc.IsSet("body") {
						return errNoChanges
					}

					// PUT replaces the whole post, so start
					// from the current one.
					ctx := context.Background()
					post, err := c.Client.Posts().GetByID(ctx, id)
					if err != nil {
						return err
					}
					input := placeholder.PostInput{
						UserID: post.UserID,
						Title:  post.Title,
						Body:   post.Body,
					}
					if cc.IsSet("user") {
						input.UserID = cc.Int("user")
					}
					if cc.IsSet("title") {
						input.Title = cc.String("title")
					}
					if cc.IsSet("body") {
						input.Body = cc.String("body")
					}
					post, err = c.Client.Posts().Update(ctx, id, input)
					if err != nil {
						return err
					}
					c.toast(fmt.Sprintf("Post %d updated", post.ID))
					return c.printPost(post)
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a post",
				ArgsUsage: "ID",
				Action: func(cc *cli.Context) error {
					id, err := intArg(cc, "post ID")
					if err != nil {
						return err
					}
					err = c.Client.Posts().Remove(context.Background(), id)
					if err != nil {
						return err
					}
					c.toast(fmt.Sprintf("Post %d deleted", id))
					return nil
				},
			},
		},
	}
}

func commentsCommand(c *ctl) cli.Command {
	return cli.Command{
		Name:      "comments",
		Usage:     "list the comments on a post",
		ArgsUsage: "POST-ID",
		Action: func(cc *cli.Context) error {
			postID, err := intArg(cc, "post ID")
			if err != nil {
				return err
			}
			comments, err := c.Client.Comments().GetByPost(context.Background(), postID)
			if err != nil {
				return err
			}
			return c.printComments(comments)
		},
	}
}

func usersCommand(c *ctl) cli.Command {
	return cli.Command{
		Name:  "users",
		Usage: "list users",
		Subcommands: []cli.Command{
			{
				Name:  "list",
				Usage: "list users",
				Flags: append([]cli.Flag{
					cli.StringFlag{
						Name:  "username",
						Usage: "only the user with this username",
					},
					cli.StringFlag{
						Name:  "email",
						Usage: "only the user with this email address",
					},
				}, pageFlags...),
				Action: func(cc *cli.Context) error {
					users, err := c.Client.Users().GetList(context.Background(), placeholder.ListUsersParams{
						Username: cc.String("username"),
						Email:    cc.String("email"),
						Page:     cc.Int("page"),
						Limit:    cc.Int("limit"),
					})
					if err != nil {
						return err
					}
					return c.printUsers(users)
				},
			},
			{
				Name:      "get",
				Usage:     "show one user",
				ArgsUsage: "ID",
				Action: func(cc *cli.Context) error {
					id, err := intArg(cc, "user ID")
					if err != nil {
						return err
					}
					user, err := c.Client.Users().GetByID(context.Background(), id)
					if err != nil {
						return err
					}
					return c.printUser(user)
				},
			},
		},
	}
}

func dateCommand(c *ctl) cli.Command {
	return cli.Command{
		Name:      "date",
		Usage:     "print dates as YYYY-MM-DD",
		ArgsUsage: "DATE...",
		Action: func(cc *cli.Context) error {
			if !cc.Args().Present() {
				_, err := fmt.Fprintln(c.Out, format.Date(c.Clock.Now()))
				return err
			}
			for _, arg := range cc.Args() {
				if _, err := fmt.Fprintln(c.Out, format.Date(arg)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
