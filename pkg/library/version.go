// Package library holds project-wide metadata.
package library

// Version is the library-api release version.
const Version = "3.0.0"
