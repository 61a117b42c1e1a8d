// Package schema provides the principal schematics for all other packages. It
// defines the file handle interface, the Windows attribute, access and
// disposition encodings, the platform error code type and provides an
// implementation wrapping the standard library's native file routines. The
// package serves as a foundational layer for file access throughout the
// codebase.
package schema
