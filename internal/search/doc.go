// Package search filters a word list by regular expression.
//
// A Matcher compiles the user's pattern once per Search and tests every
// entry in list order with unanchored semantics. Result.Total is the exact
// number of matching entries; Result.Preview holds the first MaxResults of
// them, so len(Preview) <= MaxResults and len(Preview) <= Total always hold.
//
// Two dialects are available. DialectECMAScript (the default) compiles with
// github.com/dlclark/regexp2 in ECMAScript mode, which behaves like a
// flag-less JavaScript RegExp. DialectRE2 uses the standard regexp package
// and rejects backreferences and lookaround.
package search
