// Package frame records and presents one frame at a time.
//
// Every call follows the same strictly ordered sequence: acquire the next
// swap texture, record one render pass into a fresh command encoder, submit
// it, wait for the GPU and present. Nothing overlaps: a second call made
// while one is still running fails with [ErrFrameInFlight].
package frame
