// Package api embeds the OpenAPI description of the scoreboard HTTP API.
package api

import _ "embed"

// OpenAPISpec is the raw openapi.yaml document.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
