/*
Package minuterie is a table-driven finite state machine engine, and the timed light
controller built on top of it.

A machine is a flat set of integer states and an ordered table of transitions. Each
transition binds a source state, a guard, a target state and an action. Once per cycle
the host calls Update: the engine scans the rows of the current state in table order,
fires the first one whose guard holds (state first, then action) and returns. Nothing
fires when no guard holds. The engine never chains transitions within one cycle.

# Concept

The engine knows nothing about what states, guards or actions mean. Guards and actions
receive an explicit environment value (the type parameter C), so they are plain
functions of the machine's input and trivially testable without hardware. Periodic
scheduling, sensors and outputs live outside the engine (see pkg/runner, pkg/lamp and
pkg/ports).

# Usage

	type env struct{ pressed bool }

	table := domain.MustNewTable(
		domain.Transition[*env]{
			From:  0,
			Guard: func(_ context.Context, e *env) bool { return e.pressed },
			To:    1,
		},
	)

	m := minuterie.New(table)
	out, err := m.Update(ctx, &env{pressed: true})
	// out.Fired == true, m.State() == 1
*/
package minuterie
