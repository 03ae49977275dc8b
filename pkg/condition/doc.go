// Package condition defines the closed set of named validation rules shared by
// the validator and the message catalog.
//
// A Condition is a plain string type so condition sets can be decoded straight
// from JSON or YAML maps. Membership is checked with IsValid or Parse; All
// returns the full enumeration in declaration order, which is also the order in
// which the validator reports problems.
package condition
