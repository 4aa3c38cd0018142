// Package reviews lets signed-in users rate and review books.
package reviews
