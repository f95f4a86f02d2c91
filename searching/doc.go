// Package searching implements the classic slice search algorithms. Each
// returns the index of the first match it finds and whether a match
// exists; index −1 accompanies a false result.
//
//   - Linear        O(n); the only one that works on unsorted input.
//   - Binary        O(log n); requires ascending input.
//   - Exponential   O(log i) for match position i; requires ascending
//     input, gallops to bracket the range then binary-searches it —
//     beats plain Binary when matches cluster near the front.
//   - Interpolation O(log log n) on uniformly distributed numeric input
//     (worst case O(n)); requires ascending input.
//
// Sortedness is the caller's contract: passing unsorted input to the
// sorted-input searches returns an arbitrary wrong answer, not an error,
// exactly as the textbook versions behave.
package searching
