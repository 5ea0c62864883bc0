// Package directory implements the Ticker Resolver component.
//
// The directory is a fixed, immutable mapping from company display name to
// exchange ticker symbol. Every company the polling loop tracks must exist
// as a key; resolving a missing name is an error, never a silent skip.
package directory
