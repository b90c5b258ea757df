package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/linreg/dataset"
	"github.com/arloliu/linreg/format"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		compression, encodingName string
		asText                    bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a series between text and binary dataset files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asText {
				values, err := dataset.Load(args[0])
				if err != nil {
					return err
				}

				if err := dataset.SaveText(args[1], values); err != nil {
					return err
				}

				a.log.Info("text series written", "path", args[1], "count", len(values))
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d values to %s (text)\n", len(values), args[1])

				return nil
			}

			ct := a.cfg.CompressionType()
			if cmd.Flags().Changed("compression") {
				var ok bool
				if ct, ok = format.ParseCompression(compression); !ok {
					return fmt.Errorf("unknown compression %q", compression)
				}
			}

			enc := a.cfg.EncodingType()
			if cmd.Flags().Changed("encoding") {
				var ok bool
				if enc, ok = format.ParseEncoding(encodingName); !ok {
					return fmt.Errorf("unknown encoding %q", encodingName)
				}
			}

			values, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			data, err := dataset.Encode(values, dataset.WithCompression(ct), dataset.WithEncoding(enc))
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[1], err)
			}

			header, err := dataset.ReadHeader(data)
			if err != nil {
				return err
			}
			stats := header.Stats()

			a.log.Info("dataset written", "path", args[1], "count", len(values),
				"compression", ct.String(), "encoding", enc.String())
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d values to %s (%s, %s encoding, %d -> %d bytes, %.1f%% saved)\n",
				len(values), args[1], ct, enc, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())

			return nil
		},
	}

	cmd.Flags().StringVar(&compression, "compression", "", "payload compression: none, zstd, s2, lz4, snappy (default dataset.compression)")
	cmd.Flags().StringVar(&encodingName, "encoding", "", "value encoding: raw, gorilla (default dataset.encoding)")
	cmd.Flags().BoolVar(&asText, "text", false, "write a text file with one value per line instead of a binary dataset")

	return cmd
}
