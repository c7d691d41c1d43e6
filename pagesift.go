// Package pagesift discovers repeating structured data (tables, card grids,
// flex/grid layouts, social feeds, plain lists) in arbitrary web documents
// without site-specific configuration, and converts each detected region
// into a uniform tabular dataset of typed records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, http/).
package pagesift
