// Package mmap provides read-only memory-mapped file access.
//
// # Usage
//
//	m, err := mmap.Open("palette.hkcb")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.AdviseSequential()
//	data := m.Bytes() // valid until Close
//
// # Platform Support
//
//   - Unix: mmap(2) with madvise(2) read-ahead hints
//   - Windows: CreateFileMapping/MapViewOfFile (AdviseSequential is a no-op)
//
// Close is idempotent. Callers must not use a slice returned by Bytes after
// Close returns.
package mmap
