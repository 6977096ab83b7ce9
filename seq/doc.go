// Package seq provides generic slice partitioning helpers.
package seq
