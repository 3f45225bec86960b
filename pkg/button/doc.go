// Package button turns a noisy mechanical input into clean reset triggers.
//
// Two stages form the pipeline:
//
//   - EdgeSource receives rising-edge callbacks from interrupt context and
//     pushes a minimal Edge record onto a small bounded channel without
//     blocking or allocating. When the channel is full the edge is dropped;
//     only the last edge of a press matters, so loss under burst is policy,
//     not failure.
//
//   - Debouncer consumes edges. On the first edge of a press it waits a
//     fixed quiet window (50 ms by default), discards every edge that
//     accumulated during the window, and resamples the physical pin level
//     through the PinSampler. A still-active level confirms the press and
//     emits exactly one trigger; an inactive level was contact bounce and
//     emits nothing.
//
// The trigger channel has capacity one and coalesces: a press confirmed
// while a previous trigger is still undelivered is dropped, bounding the
// number of pending resets to one.
package button
