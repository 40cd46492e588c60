package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"goatc/ast"
	"goatc/bytecode"
	"goatc/internal/compiler"
	"goatc/internal/sample"
)

var buildOutputFlag string

func getBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the demo AST into a linked bytecode image",
		Long: `build compiles a hand-built demonstration AST (no source-text
parser is part of this module; see internal/sample) into a linked
bytecode image and writes it to disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := bytecode.SetSignature(cfg.Linker.Signature); err != nil {
				return err
			}

			out := buildOutputFlag
			if out == "" {
				out = cfg.Linker.OutputPath
			}

			arena := ast.NewArena()
			root := sample.Program(arena)
			image := compiler.Compile(root)

			if err := os.WriteFile(out, image.Buffer, 0o644); err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"path":         out,
				"instructions": image.InstructionsCount(),
				"descriptors":  image.DescriptorsCount(),
				"bytes":        len(image.Buffer),
			}).Info("wrote bytecode image")
			return nil
		},
	}
	buildCmd.Flags().StringVarP(&buildOutputFlag, "output", "o", "", "output path (defaults to the config's linker.output_path)")
	return buildCmd
}
