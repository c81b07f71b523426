package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	forge "github.com/reoring/enumforge"
)

func extendCmd() *cobra.Command {
	var schemaPath, dataPath, outPath string
	cmd := &cobra.Command{
		Use:   "extend",
		Short: "Widen enum fields to cover values observed in sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := newLogger()
			defer func() { _ = lg.Sync() }()
			schema, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}
			sample, err := loadData(dataPath)
			if err != nil {
				return err
			}
			next, err := forge.Extend(schema, sample)
			if err != nil {
				return err
			}
			lg.Debug("extend complete",
				zap.String("schema", schemaPath),
				zap.String("data", dataPath),
				zap.Bool("changed", next != schema))
			return writeSchema(outPath, next)
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema document (json or yaml)")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "sample data (json or yaml)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output path, - for stdout")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func separateCmd() *cobra.Command {
	var schemaPath, outPath, layerPath string
	cmd := &cobra.Command{
		Use:   "separate",
		Short: "Split a schema into a plain closed-enum schema and a flexibility layer",
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := newLogger()
			defer func() { _ = lg.Sync() }()
			schema, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}
			plain, layer := forge.Separate(schema)
			lg.Debug("separate complete",
				zap.String("schema", schemaPath),
				zap.Int("flexible_paths", len(layer)))
			if err := writeLayer(layerPath, layer); err != nil {
				return err
			}
			return writeSchema(outPath, plain)
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema document (json or yaml)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output path for the plain schema")
	cmd.Flags().StringVar(&layerPath, "layer", "", "output path for the flexibility layer")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("layer")
	return cmd
}

func integrateCmd() *cobra.Command {
	var schemaPath, outPath, layerPath string
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Reattach a flexibility layer to a plain schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := newLogger()
			defer func() { _ = lg.Sync() }()
			schema, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}
			layer, err := loadLayer(layerPath)
			if err != nil {
				return err
			}
			next := forge.Integrate(schema, layer)
			lg.Debug("integrate complete",
				zap.String("schema", schemaPath),
				zap.Int("layer_paths", len(layer)),
				zap.Bool("changed", next != schema))
			return writeSchema(outPath, next)
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "plain schema document (json or yaml)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output path, - for stdout")
	cmd.Flags().StringVar(&layerPath, "layer", "", "flexibility layer document")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("layer")
	return cmd
}

func strictCmd() *cobra.Command {
	var schemaPath, outPath string
	cmd := &cobra.Command{
		Use:   "strict",
		Short: "Strip flexibility, keeping only the closed label sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := newLogger()
			defer func() { _ = lg.Sync() }()
			schema, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}
			next := forge.Deflex(schema)
			lg.Debug("strict complete",
				zap.String("schema", schemaPath),
				zap.Bool("changed", next != schema))
			return writeSchema(outPath, next)
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema document (json or yaml)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output path, - for stdout")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
