// Package token defines the lexical token model shared by the lexer and the
// formatting passes.
//
// Does: token kinds and the Token struct with byte spans.
// Does not: lexing, classification, or any text manipulation.
package token
