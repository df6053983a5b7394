// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"time"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var recordCount = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "placeholder",
		Name:      "records",
		Help:      "Number of records in the backend",
	},
	[]string{
		"resource",
	},
)

func init() {
	prometheus.MustRegister(recordCount)
}

// observe refreshes the record gauge every interval, forever.
func observe(p placeholder.Placeholder, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := countRecords(context.Background(), p); err != nil {
			logrus.WithFields(logrus.Fields{
				"err": err,
			}).Warn("Could not count records")
		}
		<-ticker.C
	}
}

// countRecords sets the record gauge once.
func countRecords(ctx context.Context, p placeholder.Placeholder) error {
	posts, err := p.Posts().GetList(ctx, placeholder.ListPostsParams{})
	if err != nil {
		return err
	}
	users, err := p.Users().GetList(ctx, placeholder.ListUsersParams{})
	if err != nil {
		return err
	}
	comments := 0
	for _, post := range posts {
		onPost, err := p.Comments().GetByPost(ctx, post.ID)
		if err != nil {
			return err
		}
		comments += len(onPost)
	}
	recordCount.WithLabelValues(restdata.PostsResource).Set(float64(len(posts)))
	recordCount.WithLabelValues(restdata.UsersResource).Set(float64(len(users)))
	recordCount.WithLabelValues(restdata.CommentsResource).Set(float64(comments))
	return nil
}
