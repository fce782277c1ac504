// Package spectrum inspects the frequency content of filter taps and
// filtered signals.
//
// Transforms come from package fourier; this package works on the complex
// bins they produce: magnitude, power and phase extraction, phase
// unwrapping and group delay, range normalisation, and bin bookkeeping.
package spectrum
