/*
Package observability provides tools for monitoring a running machine.

Everything here plugs into domain.LifecycleHooks, so the engine stays unaware of it:

  - Metrics: Prometheus counters, gauges and histograms on a private registry.
  - Dispatcher: hands transition events to an EventSink on its own goroutine,
    dropping events rather than blocking the control loop.
  - LogHooks: structured log lines for every transition.
*/
package observability
