// Package rider models courier applicants and approved riders.
//
// A rider is created from an application in the pending status and becomes
// active only through admin approval. Only active riders can be dispatched;
// dispatch marks the rider's work status as collected.
package rider
