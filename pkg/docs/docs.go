// Package docs serves the swagger spec for the search API's
// @Summary/@Router annotations (pkg/http/http-router/controllers/searcher.go),
// a handwritten stand-in for the swag CLI's generated docs.json.
package docs

import "net/http"

const swaggerJSON = `{
    "swagger": "2.0",
    "info": {
        "title": "Geographic feature search API",
        "description": "Ranked retrieval of geographic features from map tiles given a text query and viewport.",
        "version": "1.0"
    },
    "basePath": "/",
    "paths": {
        "/api/search": {"get": {"summary": "search for geographic features matching a free-form query within a viewport."}},
        "/api/autocomplete": {"get": {"summary": "autocomplete typeahead results for a partially typed query."}},
        "/api/reverse": {"get": {"summary": "reverseGeocoding resolves the administrative region label nearest a coordinate."}}
    }
}`

// Handler serves the raw swagger spec, the URL http-swagger's WrapHandler
// is pointed at from the router.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(swaggerJSON))
}
