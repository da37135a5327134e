//go:build mobile

package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/*.yaml
var dataFS embed.FS
