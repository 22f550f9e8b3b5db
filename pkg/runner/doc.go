/*
Package runner implements the driving loop of a cycle-based controller.

It acts as the bridge between wall-clock time and a ports.Cycler: a ticker fires once
per period and each tick runs exactly one cycle. Cycles never overlap. A cycle that
takes longer than the period is logged, and the loop keeps going.

# Key Components

  - Runner: the periodic loop. Run blocks until the context is cancelled, the tick
    budget is spent or a cycle fails.
  - SignalManager: turns SIGINT and SIGTERM into context cancellation.

# Usage

	signals := runner.NewSignalManager(context.Background())
	defer signals.Stop()

	r := runner.New(
		runner.WithPeriod(200*time.Millisecond),
		runner.WithLogger(logger),
	)

	if err := r.Run(signals.Context(), controller); err != nil {
		log.Fatal(err)
	}
*/
package runner
