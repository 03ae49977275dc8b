// Package catalog maps every condition to a short and a long human readable
// message.
//
// The table lives in messages.yaml, embedded into the binary and parsed once
// at package initialization. Initialization panics when the table does not
// cover the whole condition enumeration, so a successful import guarantees
// that Label never comes back empty.
//
// Templates may reference two placeholders:
//
//	%{subject}      the name of the validated field, "This field" by default
//	%{requirement}  the constraint parameter, e.g. a minimum length
//
// Count conditions such as HasLetterCount define an "absent" variant that is
// used when the requirement is zero or false ("Must not contain letters").
//
// # Usage
//
//	msg := catalog.Label(condition.IsLengthGreaterThanOrEqual, catalog.Context{
//	    Subject:     "Password",
//	    Requirement: 10,
//	})
//	// msg.Short == "Less than 10 characters"
//	// msg.Long  == "Password must be at least 10 characters long."
package catalog
