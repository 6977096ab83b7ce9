// Package bignum provides arbitrary-precision numeric helpers.
package bignum
