// Package edtexp provides reference implementations used to check
// distance transforms: quadratic brute force scans and a kd-tree
// index of seed cells for nearest seed queries.
package edtexp
