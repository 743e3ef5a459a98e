// Package preprocess provides fit/transform steps that turn a raw Frame
// into a complete numeric feature table: imputation of missing values,
// categorical encoding and feature scaling.
//
// Transformers learn their parameters from one Frame and may then be
// applied to any Frame with the same columns, so training-time statistics
// carry over to new data.
package preprocess
