// Package kv provides the durable string-keyed value store that every
// glitterpage repository writes through.
//
// # Overview
//
// Repository is a synchronous get/set/delete store over string keys and
// string values, the local equivalent of a browser's key-value storage.
// SQLiteRepository persists rows in the "kv" table created by
// internal/client/migrations; MemoryRepository keeps the same contract in a
// map and is what services tests inject.
//
// # Semantics
//
//   - Get reports absence with ok == false and a nil error.
//   - Set overwrites unconditionally (upsert).
//   - Delete of a missing key is not an error.
//   - Replace swaps the whole key space in one transaction when the
//     underlying handle can begin one.
//
// There is no cross-key transactionality for ordinary writes: two Set calls
// are two independent commits.
package kv
