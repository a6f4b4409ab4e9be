// Package clinics extracts clinic listings from a fixed set of HTML pages
// and writes them out as a table.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package clinics
