package main

import (
	"context"

	"github.com/karnaval/go-costume-catalog/internal/common/codegen/errorgen"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"

	"github.com/spf13/cobra"
)

func main() {
	var csvFile, templateFile, outputFile string

	cmd := &cobra.Command{
		Use:   "errorgen",
		Short: "Generate internal/models/error_map.go from the errors map csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errorgen.GenerateErrorMapFromCSV(templateFile, csvFile, outputFile)
		},
	}
	cmd.Flags().StringVar(&csvFile, "csv", "./storages/errors-map.csv", "error map source")
	cmd.Flags().StringVar(&templateFile, "template", "./internal/common/codegen/errorgen/error_map.tmpl", "go template")
	cmd.Flags().StringVar(&outputFile, "out", "./internal/models/error_map.go", "generated file")

	if err := cmd.Execute(); err != nil {
		xlog.Fatalf(context.Background(), "failed to generate error map: %v", err)
	}
}
