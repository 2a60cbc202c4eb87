// Package hash provides the checksums used by persisted codebooks.
//
// All checksums use CRC32-Castagnoli, which the Go runtime computes with
// SSE4.2 or the ARM CRC extension when available.
//
//	sum := hash.CRC32C(payload)
//
// Streaming:
//
//	h := hash.NewCRC32C()
//	h.Write(header)
//	h.Write(payload)
//	sum := h.Sum32()
package hash
