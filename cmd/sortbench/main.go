// Command sortbench compares the sorting algorithms of sortlab/sorting on
// random input.
//
// Usage:
//
//	sortbench run --size 1000 --algo "Bubble Sort" --algo "Quick Sort"
//	sortbench run --size 500 --algo "Merge Sort,Insertion Sort" --format json
//	sortbench session < requests.txt
//	sortbench algorithms
//
// A session reads one request per line, "<size> <algo>[,<algo>...]", prints
// the results of each request and finally the whole session history.
package main

import (
	"log"
	"os"
)

func main() {
	logger := log.New(os.Stderr, "sortbench: ", 0)
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Print(err)
		os.Exit(1)
	}
}
