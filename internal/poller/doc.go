// Package poller implements the Polling Loop component.
//
// Each round visits the tracked companies in fixed order, fetching one
// quote per company and appending a timestamped reading to the bounded
// history buffer. After a full round the buffer is serialized through
// every snapshot sink, then the loop sleeps until the next cadence tick.
//
// Fetches are sequential, never fanned out: ordering across companies is
// deterministic and observable in the buffer and the snapshot file.
package poller
