// Package rowmeta builds and holds the cached per-row derived state of
// the pipeline: stable ids, per-column sort ranks, lowercased compare
// values and token caches.
//
// Rank maps are the heart of sorting: each sortable column's distinct
// values are collated once per dataset load — locale aware, case and
// diacritic insensitive, numeric-substring aware — and assigned dense
// integer ranks, so every later pairwise comparison is an O(1) integer
// compare with a consistent total order for duplicates and missing
// values.
//
// Metadata is keyed by dataset position, not by row value. Replacing a
// row object without replacing the dataset leaves its metadata stale;
// this is a documented sharp edge of the design, not a guarded error.
package rowmeta
