// Package strlit implements quote unification for a single Python string
// literal token: decomposition into prefix/quote/body, classification into a
// closed set of rewrite variants, and the variant-specific reformatting.
//
// Does: pure text-to-text rewriting of one token, including f-string
// expression-area splitting.
// Does not: lexing of whole files, IO, or anything stateful; every function
// here is a pure function of its arguments.
//
// The guiding rule is the same everywhere: when a rewrite cannot be proven
// to preserve the value of the literal, the original text is returned.
package strlit
