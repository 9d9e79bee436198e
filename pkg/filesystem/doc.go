// Package filesystem provides the file access used by htmlify.
//
// FS is implemented on top of the OS and on top of afero, which lets
// tests run against an in-memory filesystem.
package filesystem
