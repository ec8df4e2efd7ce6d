// Package tensor provides the core tensor types, operators and computation
// graph of matchbox.
package tensor
