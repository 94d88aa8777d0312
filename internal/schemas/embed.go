package schemas

import "embed"

//go:embed *.json
var schemaFiles embed.FS
