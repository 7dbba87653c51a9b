// Package flatscan extracts structured apartment-listing records from
// rieltor.ua HTML snapshots. A grammar of pattern rules recognizes the
// relevant fragments inside arbitrary markup noise, and a single-pass
// extractor converts the matched fragments into a typed Apartment record
// suitable for JSON or SQLite persistence.
//
// This package contains domain types, collaborator interfaces, and the
// error taxonomy. Implementations live in subdirectories: grammar/ and
// extract/ form the extraction core, crawl/ orchestrates batch runs, and
// http/, fs/, sqlite/ implement the external collaborators.
package flatscan
