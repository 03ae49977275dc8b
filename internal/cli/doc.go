// Package cli implements the formcheck command line: validate, conditions and label.
package cli
