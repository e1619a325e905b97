// Package notionmark clips web page metadata into a Notion database and
// browses the bookmarks kept there.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, notion/, sqlite/).
package notionmark
