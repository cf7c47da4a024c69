// Package newspulse extracts structured article records from news and blog
// sites that are reachable only through a dynamically-loaded index page or a
// search engine, and emits them as tabular output.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, gemini/, sqlite/).
package newspulse
