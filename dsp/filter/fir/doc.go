// Package fir runs designed filter taps over signals.
//
// A [Filter] holds a tap set and a circular delay line and filters one
// sample at a time, so it can sit in a streaming path. [Filter.Apply] runs a
// whole finite signal through the filter and flushes the tail, giving the
// same full-length result as a linear convolution of taps and signal.
//
// Taps come from elsewhere, typically package fsamp.
package fir
