// Package genconfig implements the genconfig command
package genconfig
