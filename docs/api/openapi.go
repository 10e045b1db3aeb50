// Package api embeds the OpenAPI document describing the HTTP surface.
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
