// Package papertree extracts structured content from scholarly article
// exports. Publisher-specific extractors turn HTML or XML into flat,
// heading-tagged token streams; the outline builder folds each stream into a
// section tree; formatters render the resulting documents as plain text or
// JSON.
//
// This package contains domain types, pure domain logic and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// etree/, sqlite/, openai/).
package papertree
