/*
Package lamp is the timed light: a push-button turns a light on, and the light goes
off again once a countdown runs out. Pressing while the light is on re-arms the
countdown.

The machine has two states and three rules, evaluated in this order:

	off --button_pressed--> on   light_on  (assert output, start countdown)
	on  --button_pressed--> on   light_on  (re-arm countdown)
	on  --timer_expired---> off  light_off (deassert output)

Because re-activation is listed before expiry, a press always wins over an expiring
countdown in the same cycle.
*/
package lamp
