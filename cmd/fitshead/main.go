package main

import (
	"os"

	"github.com/CiceroLSNeto/fitshead/fitshead"
	"github.com/CiceroLSNeto/fitshead/fitshead/logger"
	"github.com/spf13/cobra"
)

var (
	extension string
	jsonOut   bool
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fitshead [flags] <filename>...",
		Short: "Print the header(s) of one or more FITS files",
		Long: "Print the header(s) of a FITS file. By default, all HDU extensions\n" +
			"are shown. A specific HDU can be selected with --ext by number,\n" +
			"by name (EXTNAME), or by \"EXTNAME,EXTVER\".",
		Args: cobra.MinimumNArgs(1),
		Run:  runHead,
	}

	rootCmd.Flags().StringVarP(&extension, "ext", "e", "", "HDU extension number or name (NAME or NAME,VER)")
	rootCmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "display the output in JSON format")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runHead(cmd *cobra.Command, args []string) {
	if verbose {
		logger.SetLogLevel(logger.LogLevelDebug)
	}

	if failed := fitshead.Process(args, extension, jsonOut, os.Stdout); failed > 0 {
		os.Exit(1)
	}
}
