// Package score converts the score markup of a match row into numeric sets.
//
// A finished match renders its score as a span.score cell holding one child
// span per set, e.g. <span>6-1</span><span>7-6(5)</span>. Each set becomes a
// Set of two integers plus an optional tiebreak.
package score
