// Package core contains the business logic for the portfolio backend.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Post, Activity, Project, etc.)
// - frontmatter: Lenient frontmatter block parser for Markdown files
// - markdown: Blog Markdown dialect renderer and read-time estimator
// - content: Blog post loading, search, tags, and RSS
// - github: GitHub activity fetching with a stale-tolerant cache
// - showcase: Project and case study collections
// - contact: Contact form validation and forwarding
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "github.com/lolimmlost/appahouse-portfolio/core/content"
//	    "github.com/lolimmlost/appahouse-portfolio/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	contentService := content.NewService(deps, content.Options{
//	    BaseURL: "https://example.com/content",
//	})
//
//	// Load published posts
//	posts, err := contentService.Load(ctx)
package core
