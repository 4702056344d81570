// Package data bundles the fallback CSVs served when the live spreadsheet
// is unreachable or empty. The files follow the exact schema of the remote
// sheets and pass through the same builders.
package data

import _ "embed"

//go:embed fallback_menu.csv
var FallbackMenuCSV string

//go:embed fallback_config.csv
var FallbackConfigCSV string

//go:embed fallback_features.csv
var FallbackFeaturesCSV string
