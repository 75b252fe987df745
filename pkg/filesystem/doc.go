// Package filesystem provides filesystem implementations for devopstemplate.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem, plus the atomic-write helper used
// for every rendered content write.
package filesystem
