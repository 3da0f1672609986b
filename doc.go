// Package sortlab is an instrumented playground for comparing classic
// comparison sorts on the same random input.
//
// What is inside:
//
//	seqgen/  — random integer sequences over a bounded range (default [0, 2^53−1])
//	sorting/ — Bubble, Quick, Merge, Insertion and Selection sort, each reporting
//	           comparisons and swaps under an exact, documented counting rule
//	runner/  — validates a request, generates one array, runs the selected
//	           algorithms on private copies and times each one
//	history/ — append-only, in-memory session history of run batches
//	report/  — response rows (time rounded to 2 decimals), tables, JSON, summaries
//	cmd/sortbench — command-line front end (run, session, algorithms)
//
// Quick example:
//
//	batch, err := runner.Run(1000, []string{"Bubble Sort", "Quick Sort"})
//	if err != nil {
//		// *runner.ValidationError: "size out of range" or
//		// "insufficient algorithm selection"
//	}
//	for _, r := range batch.Records {
//		fmt.Println(r.Algorithm, r.ElapsedMs, r.Comparisons, r.Swaps)
//	}
//
// Swap counts are defined per algorithm (see sortlab/sorting), so compare them
// across runs of one algorithm rather than across algorithms.
package sortlab
