package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"goatc/bytecode"
)

// getColor returns the requested color, or a disabled one, depending
// on noColor -- mirrors k6's own cmd/ui.go getColor helper, including
// the explicit EnableColor/DisableColor calls the library needs since
// it otherwise probes os.Stdout itself.
func getColor(noColor bool, attrs ...color.Attribute) *color.Color {
	if noColor {
		c := color.New()
		c.DisableColor()
		return c
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func getDisasmCmd() *cobra.Command {
	disasmCmd := &cobra.Command{
		Use:   "disasm <file>",
		Short: "Disassemble a linked bytecode image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			image, err := bytecode.Parse(buf)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			printDisassembly(image, flagNoColor || !cfg.Disasm.Color, cfg.Disasm.ShowStrings)
			return nil
		},
	}
	return disasmCmd
}

// printDisassembly renders image.Disassemble(), coloring the mnemonic
// field of each line when color is enabled. The mnemonic is always the
// first whitespace-delimited token after the "<index>: " prefix
// bytecode.Bytecode.Disassemble emits. When showStrings is false, the
// resolved-string comment Disassemble appends to descriptor-table
// operands is stripped back off.
func printDisassembly(image *bytecode.Bytecode, noColor, showStrings bool) {
	mnemonicColor := getColor(noColor, color.FgYellow)
	commentColor := getColor(noColor, color.FgGreen)
	colorMnemonic := func(instr string) string {
		if sp := strings.IndexByte(instr, ' '); sp >= 0 {
			return mnemonicColor.Sprint(instr[:sp]) + instr[sp:]
		}
		return mnemonicColor.Sprint(instr)
	}

	for _, line := range image.Disassemble() {
		sep := strings.Index(line, ": ")
		if sep < 0 {
			fmt.Println(line)
			continue
		}
		prefix, rest := line[:sep+2], line[sep+2:]

		semi := strings.Index(rest, "  ; ")
		if semi < 0 || !showStrings {
			if semi >= 0 {
				rest = rest[:semi]
			}
			fmt.Printf("%s%s\n", prefix, colorMnemonic(rest))
			continue
		}
		fmt.Printf("%s%s%s\n", prefix, colorMnemonic(rest[:semi]), commentColor.Sprint(rest[semi:]))
	}
}
