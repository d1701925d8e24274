// Package writers owns the output sinks.
//
// Design:
//   - Atomic gives all-or-nothing file output (tempfile + rename); a failed
//     run never leaves a partial report behind.
//   - Broken-pipe classification lets `kmerscan ... -` play nicely under
//     `head` and friends.
package writers
