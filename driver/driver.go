// Package driver assembles the bus, timer and CPU into a runnable system
// and drives the Reset -> Fetch -> Execute -> Halt loop, mirroring the
// teacher's top-level main (vcs/vcs_main.go builds atari2600.Init then
// loops a.Tick()) and the original Rust binary's Cpu::start driving loop.
package driver

import (
	"fmt"

	"github.com/dannymato/sixtyfive/bus"
	"github.com/dannymato/sixtyfive/cartridge"
	"github.com/dannymato/sixtyfive/cpu"
	"github.com/dannymato/sixtyfive/memory"
	"github.com/dannymato/sixtyfive/timer"
)

// Result reports how a Run call ended.
type Result struct {
	// Cycles is the cumulative number of cycles posted before halting.
	Cycles uint64
	// HaltOpcode is the opcode byte that stopped execution.
	HaltOpcode uint8
	// HaltPC is the address HaltOpcode was fetched from.
	HaltPC uint16
}

// clockCounter is a cpu.TickSink that accumulates every posted cycle count,
// grounded on the original binary's ClockCounter/ClockHandler.
type clockCounter struct {
	total uint64
}

func (c *clockCounter) Tick(cycles int) { c.total += uint64(cycles) }

// Run assembles a fresh system from rom, executes instructions until the
// core hits an undecodable opcode, and returns the halt state. extraSinks,
// if given, are registered alongside the timer so callers can observe the
// clock fan-out (tracing, test instrumentation) without reaching into the
// CPU themselves.
func Run(rom []uint8, extraSinks ...cpu.TickSink) (Result, error) {
	cart, err := cartridge.New(rom, nil)
	if err != nil {
		return Result{}, fmt.Errorf("loading cartridge: %w", err)
	}

	tmr := timer.Init(nil)
	b, err := bus.New(&bus.Def{
		RAM:   memory.NewRAM(nil),
		Cart:  cart,
		Timer: tmr,
	})
	if err != nil {
		return Result{}, fmt.Errorf("assembling bus: %w", err)
	}

	c, err := cpu.Init(&cpu.ChipDef{Bus: b})
	if err != nil {
		return Result{}, fmt.Errorf("initializing cpu: %w", err)
	}
	c.RegisterTickSink(tmr)

	counter := &clockCounter{}
	c.RegisterTickSink(counter)
	for _, sink := range extraSinks {
		c.RegisterTickSink(sink)
	}

	err = c.Run()
	var unknown cpu.UnknownOpcodeError
	if e, ok := err.(cpu.UnknownOpcodeError); ok {
		unknown = e
	}
	return Result{
		Cycles:     counter.total,
		HaltOpcode: unknown.Opcode,
		HaltPC:     unknown.PC,
	}, err
}
