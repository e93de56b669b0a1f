// Package templates holds the embedded email template catalog: the
// manifest plus one HTML markup file per template, grouped by category
// directory. The catalog package loads them through the FS variable.
package templates

import "embed"

// FS contains the catalog manifest and all template markup.
//
//go:embed catalog.yaml welcome announcements newsletters
var FS embed.FS
