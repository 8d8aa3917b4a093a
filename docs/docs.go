// Package docs embeds the OpenAPI description of the designer API.
package docs

import (
	_ "embed"
)

//go:embed designer.openapi.yaml
var OpenAPI []byte
