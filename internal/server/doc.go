// Package server exposes the translation façade over HTTP.
//
// Routes:
//
//	GET  /collections
//	GET  /collections/{collection}/index[?sort=true]
//	POST /collections/{collection}/translate[?translationsOnly=true]
//	POST /collections/{collection}/fields/{field}/translate
//	POST /collections/{collection}/extract
//	POST /collections/{collection}/fields/{field}/extract
//	GET  /collections/{collection}/export[?format=legacy]
//
// Request and response bodies are JSON. Translate and extract accept one
// document or an array of documents. Errors are reported as {"error": "..."}.
package server
