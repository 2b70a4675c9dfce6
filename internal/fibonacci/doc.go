// Package fibonacci computes Fibonacci numbers in unsigned 64-bit arithmetic.
//
// The convention is F(0) = 0, F(1) = 1 and F(k) = F(k-1) + F(k-2) for k >= 2.
// Results past F(93) wrap silently modulo 2^64; no overflow is reported.
package fibonacci
