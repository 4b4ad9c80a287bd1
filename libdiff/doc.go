// Package libdiff computes and renders line diffs between encoded
// documents.
package libdiff
