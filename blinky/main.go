//go:build tinygo

// Blinks the on-board LED once a second and prints the level on serial.
//
//	tinygo flash -target=arduino -monitor -baudrate=9600 ./blinky
package main

import (
	"log/slog"
	"machine"

	"github.com/harveysanders/serialblink/blinky/blink"
)

// Surface-mount LED. D13 on the Arduino UNO, GP25 on the Pico.
const led = machine.LED

func main() {
	initialize()

	// Transitions are logged at debug, so at info the serial port only
	// carries the HIGH/LOW lines.
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	c := blink.New(led, machine.Serial, logger)
	c.RunForever()
}

// initialize opens the serial port and sets the LED pin to output.
// Failures are not checked; there is nothing to report them on.
func initialize() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: blink.BaudRate})
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
}
