// Package namer contains the naming convention functions used to format
// the names, i.e. 'snake_case', 'kebab-case' or 'CamelCase'.
// The conventions are resolved by their names through the Conventions factory.
package namer
