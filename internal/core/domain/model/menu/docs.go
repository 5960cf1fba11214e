// Package menu holds the restaurant catalog: items with a name, a category and a price.
package menu
