// Package password implements composable password rules: character class
// counts ("at least N digits", "no spaces"), length bounds, a strength policy,
// a list of commonly used passwords and run-length checks for repeated or
// sequential characters.
//
// Character classes are Unicode aware. Letters, lowercase and uppercase use
// the Unicode letter categories, digits the decimal digit category, spaces any
// white space, and symbols everything in the punctuation or symbol categories.
//
// # Usage
//
//	schema := password.New().
//	    Min(8).
//	    Has(password.Digits, 2).
//	    Has(password.Uppercase, 1).
//	    HasNo(password.Spaces)
//
//	if !schema.Validate(pw) {
//	    for _, rule := range schema.Failures(pw) {
//	        // report rule.Kind, rule.Class and rule.N
//	    }
//	}
//
// All helpers are pure functions; a Schema is safe for concurrent use once built.
package password
