// Package api carries the embedded OpenAPI document served by the router.
package api

import _ "embed"

//go:embed openapi.json
var OpenAPISpec []byte
