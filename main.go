package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mips32asm/coeasm/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "Two-pass assembler for a 32-bit MIPS-like instruction set"
	app.Description = "Assembles MIPS-like source into .coe memory images and a listing"
	app.Commands = []*cli.Command{
		cmd.AssembleCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
