// Package scaffold provides the embedded site skeleton written by
// "trails new".
package scaffold

import "embed"

// Templates contains all scaffold template files. Files use Go
// text/template syntax with [[ ]] delimiters and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS
