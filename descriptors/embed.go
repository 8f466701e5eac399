package descriptors

import (
	"embed"
)

// ConfigFiles embeds all YAML descriptor files from the config subdirectory
//
//go:embed all:config
var ConfigFiles embed.FS
