/*
Package dsl provides a fluent builder for transition tables.

Rows are appended in call order, and that order is the evaluation order of the
resulting table: when several guards hold for the same state, the row declared first
wins.

Example usage:

	b := dsl.New[*lamp.Env]()
	b.State(lamp.Off, "off").State(lamp.On, "on")

	b.From(lamp.Off).When("button_pressed", lamp.ButtonPressed).
		Go(lamp.On).Do("light_on", lamp.LightOn)
	b.From(lamp.On).When("timer_expired", lamp.TimerExpired).
		Go(lamp.Off).Do("light_off", lamp.LightOff)

	table, err := b.Build()
*/
package dsl
