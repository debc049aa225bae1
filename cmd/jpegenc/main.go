// Command jpegenc converts a PPM P3 image into a baseline JFIF/JPEG file.
package main

import (
	"fmt"
	"os"

	jpegenc "github.com/SilverlightningY/dmmt-jpeg-encoder-go"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		bitsPerChannel int
		subsampling    string
		threads        int
		quantTable     string
	)

	cmd := &cobra.Command{
		Use:   "jpegenc <input.ppm> <output.jpg>",
		Short: "Encode a PPM P3 image into a baseline JFIF/JPEG file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := jpegenc.NewLogger(cmd.ErrOrStderr())

			preset, err := jpegenc.ParseSubsamplingPreset(subsampling)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			quant, err := jpegenc.ParseQuantPreset(quantTable)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			opts := jpegenc.Options{
				BitsPerChannel: bitsPerChannel,
				Subsampling:    preset,
				Quantization:   quant,
				Threads:        threads,
			}
			if err := opts.Validate(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			in, err := os.Open(args[0])
			if err != nil {
				werr := jpegenc.Wrap(err, jpegenc.ErrInputNotFound, args[0])
				fmt.Fprintln(cmd.ErrOrStderr(), werr)
				return werr
			}
			defer in.Close()

			plane, err := jpegenc.ReadPPM(in)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			out, err := os.Create(args[1])
			if err != nil {
				werr := jpegenc.Wrap(err, jpegenc.ErrOutputUnwritable, args[1])
				fmt.Fprintln(cmd.ErrOrStderr(), werr)
				return werr
			}
			defer out.Close()

			if err := jpegenc.Encode(out, plane, opts, log); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
	}

	defaults := jpegenc.DefaultOptions()
	cmd.Flags().IntVarP(&bitsPerChannel, "bits-per-channel", "b", defaults.BitsPerChannel, "bits per channel (8, 16, 32; only 8 is implemented)")
	cmd.Flags().StringVarP(&subsampling, "chroma-subsampling", "p", defaults.Subsampling.String(), "chroma subsampling preset (P444, P422, P420)")
	cmd.Flags().IntVarP(&threads, "threads", "t", defaults.Threads, "worker thread count")
	cmd.Flags().StringVarP(&quantTable, "quantization-table", "q", "specification", "quantization table preset")

	return cmd
}
