// Package storage provides JSON-based persistence for tournament result snapshots.
//
// Each tournament's snapshot is kept in its own file (results_<id>.json) so
// that a later run can report only the results that appeared since. The
// default storage location is ~/.local/share/tsw/.
package storage
