// Package lib provide convenience functions that can be used by
// other packages. Package shall not import packages other than
// golang's standard packages.
package lib
