// Package user holds the account record that carries a person's role.
package user
