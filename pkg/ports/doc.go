/*
Package ports defines the driven ports (interfaces) around the minuterie engine.

These interfaces decouple the control loop from concrete hardware, storage and
transport, so the same controller runs against real GPIO, a terminal or in-memory pins.

# Key Interfaces

  - Input: a boolean sensor, such as a push-button.
  - Output: a boolean actuator, such as a light.
  - Cycler: one unit of periodic work, driven by the runner.
  - EventSink / EventSource: where transition events are recorded and read back.
*/
package ports
