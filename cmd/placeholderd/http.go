// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"time"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
	"github.com/diffeo/go-placeholder/restserver"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// HTTP serves HTTP placeholderd connections.
type HTTP struct {
	placeholder placeholder.Placeholder
	laddr       string

	// logger, if non-nil, receives a line per request.
	logger *logrus.Logger
}

// Handler builds the complete HTTP handler: the REST API, /metrics,
// and middleware.
func (h *HTTP) Handler() http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	restserver.PopulateRouter(r, h.placeholder)

	n := negroni.New()
	n.Use(negroni.NewRecovery())
	if h.logger != nil {
		n.Use(requestLogger(h.logger))
	}
	n.UseHandler(r)
	return n
}

// Serve runs an HTTP server on the configured local address.  This
// serves connections until the listener fails.
func (h *HTTP) Serve() error {
	return http.ListenAndServe(h.laddr, h.Handler())
}

// requestLogger produces middleware that logs each request with its
// outcome.
func requestLogger(logger logrus.FieldLogger) negroni.Handler {
	return negroni.HandlerFunc(func(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
		start := time.Now()
		next(rw, req)
		fields := logrus.Fields{
			"method":  req.Method,
			"path":    req.URL.RequestURI(),
			"elapsed": time.Since(start),
		}
		if nrw, ok := rw.(negroni.ResponseWriter); ok {
			fields["status"] = nrw.Status()
		}
		if id := req.Header.Get(restdata.RequestIDHeader); id != "" {
			fields["request_id"] = id
		}
		logger.WithFields(fields).Info("request")
	})
}
