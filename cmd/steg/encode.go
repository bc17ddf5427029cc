package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zedseven/lsbsteg"
	"github.com/zedseven/lsbsteg/internal/logtrace"
	"github.com/zedseven/lsbsteg/internal/util"
	"github.com/zedseven/lsbsteg/transform"
)

var encodeFlags struct {
	key      string
	output   string
	limit    string
	channels string
	verbose  bool
	mapImage bool
	file     bool
}

var encodeCmd = &cobra.Command{
	Use:   "encode <value> <image>",
	Short: "Hide a value in an image",
	Long: `Hide <value> in <image> and write the result to --output.

With --file, <value> is the path of a file whose contents are compressed and
base64-encoded before hiding. With --map, a diff image marking every touched
channel is written next to the output, with "_map" before its extension.`,
	Args: cobra.ExactArgs(2),
	RunE: runEncode,
}

func init() {
	f := encodeCmd.Flags()
	f.StringVarP(&encodeFlags.key, "key", "k", "", "Key that seeds the hiding positions")
	f.StringVarP(&encodeFlags.output, "output", "o", "", "Output image (default \"output.png\")")
	f.StringVarP(&encodeFlags.limit, "limit", "l", "", "Length prefix width: 8, 16 or 32 (default 16)")
	f.StringVarP(&encodeFlags.channels, "channels", "c", "", "Channels to use: rgb or rgba (default rgba)")
	f.BoolVarP(&encodeFlags.verbose, "verbose", "v", false, "Print capacity and usage statistics and log at debug level")
	f.BoolVarP(&encodeFlags.mapImage, "map", "m", false, "Also write a diff map of the touched channels")
	f.BoolVarP(&encodeFlags.file, "file", "f", false, "Treat <value> as the path of a file to hide")
}

func runEncode(cmd *cobra.Command, args []string) error {
	value, imagePath := args[0], args[1]

	if encodeFlags.verbose && !cmd.Flags().Changed("log-level") {
		if err := logtrace.Setup("debug"); err != nil {
			return err
		}
	}

	opts, err := stegOptions(cmd, encodeFlags.key, encodeFlags.limit, encodeFlags.channels)
	if err != nil {
		return err
	}

	output := encodeFlags.output
	if !cmd.Flags().Changed("output") {
		output = cfg.Output
	}
	if output == "" {
		output = lsbsteg.DefaultOutPath
	}

	payload := value
	if encodeFlags.file {
		if payload, err = transform.FileToText(value); err != nil {
			return err
		}
	}

	hc := &lsbsteg.HideConfig{
		ImagePath: imagePath,
		Payload:   payload,
		OutPath:   output,
		Key:       opts.Key,
		Limit:     opts.Limit,
		Channels:  opts.Channels,
	}
	if encodeFlags.mapImage {
		hc.MapPath = util.MapPath(output)
	}

	res, err := lsbsteg.Hide(cmd.Context(), hc)
	if err != nil {
		return err
	}

	if encodeFlags.verbose {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Output file: %s\n", output)
		if hc.MapPath != "" {
			fmt.Fprintf(w, "Map file: %s\n", hc.MapPath)
		}
		fmt.Fprintf(w, "Total Size: %d\n", res.Capacity)
		fmt.Fprintf(w, "Size Used: %d ( %.2f%% )\n", res.Used, res.Usage())
		fmt.Fprintf(w, "Encoding: %v\n", opts.Limit)
		fmt.Fprintf(w, "Channels: %v\n", opts.Channels)
	}
	return nil
}
