package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zedseven/lsbsteg"
	"github.com/zedseven/lsbsteg/transform"
)

var decodeFlags struct {
	key      string
	limit    string
	channels string
	file     string
}

var decodeCmd = &cobra.Command{
	Use:   "decode <image>",
	Short: "Recover a value hidden in an image",
	Long: `Recover the value hidden in <image> and print it.

The key, limit and channels must match the ones used to encode. With --file, the
value is treated as a hidden file and its decompressed contents are written to
the given path instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	f := decodeCmd.Flags()
	f.StringVarP(&decodeFlags.key, "key", "k", "", "Key used when encoding")
	f.StringVarP(&decodeFlags.limit, "limit", "l", "", "Length prefix width used when encoding: 8, 16 or 32 (default 16)")
	f.StringVarP(&decodeFlags.channels, "channels", "c", "", "Channels used when encoding: rgb or rgba (default rgba)")
	f.StringVarP(&decodeFlags.file, "file", "f", "", "Write the hidden file to this path")
}

func runDecode(cmd *cobra.Command, args []string) error {
	opts, err := stegOptions(cmd, decodeFlags.key, decodeFlags.limit, decodeFlags.channels)
	if err != nil {
		return err
	}

	payload, err := lsbsteg.Dig(cmd.Context(), &lsbsteg.DigConfig{
		ImagePath: args[0],
		Key:       opts.Key,
		Limit:     opts.Limit,
		Channels:  opts.Channels,
	})
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	if decodeFlags.file == "" {
		fmt.Fprintln(cmd.OutOrStdout(), payload)
		return nil
	}

	if err = transform.TextToFile(payload, decodeFlags.file); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved file to %s\n", decodeFlags.file)
	return nil
}
