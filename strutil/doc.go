// Package strutil provides small string formatting helpers.
package strutil
