// Package provider defines the AI provider interface and implementations.
package provider

import "github.com/ZaguanLabs/clipling"

// AIProvider is the interface for AI translation backends.
// This is an alias to the main package interface for convenience.
type AIProvider = clipling.AIProvider

// Request is an alias to the main package type.
type Request = clipling.Request
