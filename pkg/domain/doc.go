/*
Package domain contains the core types of the minuterie state machine engine.

It defines the rules of a machine and the values the engine reports about them. The
package is kept pure: no I/O, no hardware, no persistence.

# Key Entities

  - State: an integer identifying where a machine is.
  - Guard / Action: the callables a transition is made of. Both receive an explicit
    environment value of the table's type parameter.
  - Transition: one rule (source state, guard, target state, action).
  - Table: an ordered, validated, immutable set of transitions.
  - Outcome: what a single evaluation cycle did.
  - LifecycleHooks: observability callbacks fired after each cycle.
*/
package domain
