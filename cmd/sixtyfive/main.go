// Command sixtyfive loads a cartridge image and runs it until the core
// halts on an undecodable opcode, grounded on the original binary's main
// (env::args -> Cartridge::new -> Cpu::start) and the teacher's vcs_main.go
// flag/log idiom, stripped of every rendering concern this core doesn't
// implement.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dannymato/sixtyfive/cpu"
	"github.com/dannymato/sixtyfive/driver"
)

var cart = flag.String("cart", "", "path to the cartridge image to load")

func main() {
	flag.Parse()
	path := *cart
	if path == "" && flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	if path == "" {
		log.Fatal("must pass -cart <path to rom image> or the path as the only argument")
	}

	rom, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("can't read rom: %v", err)
	}

	res, err := driver.Run(rom)
	if err != nil {
		if uo, ok := err.(cpu.UnknownOpcodeError); ok {
			fmt.Fprintf(os.Stderr, "halted on unknown opcode 0x%.2X at PC 0x%.4X, cycles completed: %d\n",
				uo.Opcode, uo.PC, res.Cycles)
			os.Exit(1)
		}
		log.Fatalf("run failed: %v, cycles completed: %d", err, res.Cycles)
	}
}
