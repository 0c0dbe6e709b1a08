// Package arrangement enumerates the arrangements of sampleSize indices drawn from a population of populationSize indices.
//
// Three generators are provided:
//   - NewPermutations: ordered, no repeated indices (n!/(n-k)! arrangements)
//   - NewCombinations: unordered, no repeated indices, strictly increasing (n!/(k!(n-k)!) arrangements)
//   - NewSamples: ordered, repeated indices allowed (n^k arrangements)
//
// Every generator announces the exact count through SampleListener.Start and then delivers each arrangement,
// with its 1-based sequence number, to SampleListener.Next. Returning true from Next stops the generator.
package arrangement
