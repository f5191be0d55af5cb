/*
Package math implements elementary functions and constants for bigfix values:
square roots, base-2 and natural logarithms, exponential, power and arctangent,
and the constants π, e and ln 2.

Functions take the number of fractional bits of their result as an explicit
precision; a precision of 0 selects bigfix.DefaultPrec. Results are computed
with guard bits and rounded half up, so that the error is below one unit in the
last place.

The constants are memoized per precision in a Cache. The package level
functions use DefaultCache; a dedicated Cache, optionally reporting to
prometheus collectors, can be created with NewCache.
*/
package math
