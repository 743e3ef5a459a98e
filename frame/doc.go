// Package frame provides an in-memory tabular dataset of named columns.
//
// A Frame is the input side of the clustering toolkit: it is loaded from
// CSV or XLSX, carries numeric and categorical columns with explicit
// missing values, and is lowered to a flat row-major Matrix of float32
// features once preprocessing is done.
package frame
