// Package report turns runner records into the response shape consumed by
// presentation layers, and renders them for terminals.
//
//   - FromRecords: records → []Row with time rounded to two decimals.
//   - WriteTable:  aligned text table (Algorithm, Time (ms), Comparisons,
//     Array Size, Swaps).
//   - WriteJSON:   the same rows as a JSON array.
//   - Summarize:   which algorithm was fastest and which did the least work.
package report
