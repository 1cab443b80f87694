// Package schemas embeds the JSON Schema documents shipped with the aggregator.
package schemas

import _ "embed"

// Config is the JSON Schema for the aggregator configuration document.
//
//go:embed config.schema.json
var Config []byte
