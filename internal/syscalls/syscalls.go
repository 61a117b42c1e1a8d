// Package syscalls provides the platform layer of extended-length path
// system calls: [Native] wraps the operating system (kernel32 on Windows) and
// [Memory] is an in-memory implementation with Windows semantics for tests and
// embedding. Failing calls report the recorded [schema.Errno], which may be
// zero.
package syscalls
