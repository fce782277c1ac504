// Package fsamp designs linear-phase FIR filters by frequency sampling.
//
// A design starts from a [Spec]: a transform size N and a list of [Band]
// values, each covering a run of bins in the non-redundant half of the
// spectrum. The synthesizer fills a real half-spectrum from the bands,
// mirrors it into a conjugate-symmetric full spectrum, and returns the real
// part of its inverse DFT as N filter taps. A caller-supplied window may be
// multiplied onto the taps afterwards.
//
// Bands are written in order, so where two bands overlap the later band's
// magnitude wins. [Validate] rejects degenerate bands but does not reject
// overlapping or unordered ones. A zero Magnitude means unity gain, so a
// notch inside an earlier band is written with a [Band] whose Stop is set.
//
// The taps are the zero-phase (circular) impulse response of the sampled
// spectrum: tap k equals tap N-k. [Center] rotates them into a causal filter
// whose peak sits at N/2.
package fsamp
