// Package str contains the string case conversion helpers.
//
// Camelize converts the delimiter separated text into the camel case, i.e.
// 'customer-session' into 'CustomerSession'. Each character of the delimiters
// string is a separate word separator.
//
// Uncamelize converts the camel case text into the lower case words joined
// with the delimiter, i.e. 'CameLiZe' into 'came_li_ze'.
package str
