// Package cmd defines the CLI commands for the assembler.
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/mips32asm/coeasm/assembler"
	"github.com/mips32asm/coeasm/image"
	"github.com/mips32asm/coeasm/profile"
)

var ConfigFlag = &cli.PathFlag{
	Name:     "config",
	Usage:    "Path to the assembler profile YAML config file",
	Required: false,
}

func CreateAssembleCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "assemble",
		Usage:       "Assembles a source file into .coe memory images and a listing",
		Description: "Assembles a source file into .coe memory images and a listing",
		ArgsUsage:   "<input_path> [<output_dir>]",
		Action:      action,
		Flags: []cli.Flag{
			ConfigFlag,
		},
	}
}

var AssembleCommand = CreateAssembleCommand(Assemble)

// Assemble is the "assemble" command's action: prog <input_path> [<output_dir>].
func Assemble(ctx *cli.Context) error {
	if ctx.Args().Len() < 1 || ctx.Args().Len() > 2 {
		return cli.Exit("usage: assemble <input_path> [<output_dir>]", 2)
	}
	input := ctx.Args().Get(0)
	outputDir := ctx.Args().Get(1)

	configPath := ctx.Path(ConfigFlag.Name)
	prof, err := profile.LoadProfile(configPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error loading profile: %v", err), 1)
	}
	if outputDir != "" {
		prof.OutputDir = outputDir
	}

	logger := log.New(os.Stderr, "", 0)
	result, err := assembler.Assemble(input, assembler.Options{
		Strict: prof.StrictImmediates,
		Logger: logger,
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	if result.HasError {
		return cli.Exit("assembly failed; no output written", 1)
	}

	if err := os.MkdirAll(prof.OutputDir, 0o755); err != nil {
		return cli.Exit(fmt.Sprintf("cannot create output directory: %v", err), 1)
	}
	if err := writeOutputs(result, prof); err != nil {
		return cli.Exit(fmt.Sprintf("cannot write output: %v", err), 1)
	}

	logger.Print(assembler.Summary(result))
	return nil
}

func writeOutputs(result *assembler.Result, prof *profile.AssemblerProfile) error {
	textPath := filepath.Join(prof.OutputDir, prof.TextImageFile)
	if err := writeFile(textPath, func(f *os.File) error {
		return image.WriteTextImage(f, result.Instructions, prof.TotalWords)
	}); err != nil {
		return err
	}

	dataPath := filepath.Join(prof.OutputDir, prof.DataImageFile)
	if err := writeFile(dataPath, func(f *os.File) error {
		return image.WriteDataImage(f, result.Data, prof.TotalWords)
	}); err != nil {
		return err
	}

	listingPath := filepath.Join(prof.OutputDir, prof.ListingFile)
	return writeFile(listingPath, func(f *os.File) error {
		return image.WriteListing(f, result.Instructions, result.Data)
	})
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
