// Package http implements the HTTP transport layer of the playbook server.
//
// It exposes route wiring, request handlers, and middleware. The API serves
// the feedback intake, the resolved tenant configuration and the build
// version; everything else is the compiled SPA and the tenant files under the
// public directory. Cross-cutting concerns such as request tracing, access
// logging, response compression, tenant resolution and rate limiting are
// handled here before requests are delegated to the service layer.
package http
