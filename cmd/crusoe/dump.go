package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crusoe/pkg/paint"
	"crusoe/pkg/style"
)

var dumpWhat string

var dumpCmd = &cobra.Command{
	Use:   "dump <document>",
	Short: "Print the style tree, box tree, or display list for a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch dumpWhat {
		case "style":
			doc, sheets, err := loadPage(args[0])
			if err != nil {
				return err
			}
			fmt.Print(style.BuildTree(doc.Root, sheets).Dump())
			return nil
		case "boxes":
			box, err := layoutDocument(args[0])
			if err != nil {
				return err
			}
			fmt.Print(box.Dump())
			return nil
		case "display":
			box, err := layoutDocument(args[0])
			if err != nil {
				return err
			}
			for i, item := range paint.BuildDisplayList(box) {
				r := item.Rect
				fmt.Printf("%3d: fill (%g,%g) %gx%g %s\n", i, r.X, r.Y, r.Width, r.Height, item.Color)
			}
			return nil
		default:
			return fmt.Errorf("unknown dump target %q (want style, boxes, or display)", dumpWhat)
		}
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpWhat, "what", "t", "boxes", "what to dump: style, boxes, or display")
	dumpCmd.Flags().StringArrayVar(&renderCSS, "css", nil, "stylesheet to use instead of the document's own (repeatable)")
	dumpCmd.Flags().Float64VarP(&renderWidth, "width", "w", 800, "viewport width in pixels")
	dumpCmd.Flags().Float64VarP(&renderHeight, "height", "H", 600, "viewport height in pixels")
	rootCmd.AddCommand(dumpCmd)
}
