// Package services holds the glitterpage client's in-memory state and its
// mutations. Every mutation computes the next value, performs one durable
// write, and only then replaces the in-memory value. Validation no-ops
// never write.
//
// Services are safe for concurrent use; asynchronous completions (image
// ingestion, generated text) may call them from other goroutines.
package services
