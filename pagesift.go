// Package pagesift provides an HTTP service that fetches a web page,
// extracts its readable text and metadata, and asks a generative language
// model for a structured content analysis (themes, sentiment, summary,
// insights) returned as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, http/).
package pagesift
