package cmd

import (
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/go-drift/trellis/pkg/frame"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/rendering/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Rasterize a theme file to PNG",
		Long: `Build the widget tree declared by a theme file, lay it out and draw
it into a PNG image.

Visual references are drawn when they parse as hex colors; anything else
is skipped. -background fills the image before drawing.`,
		Usage: "trellis render <file> -o out.png [-root id] [-width n] [-height n] [-background color]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	var tf treeFlags
	fs := newFlagSet("render")
	tf.register(fs)
	out := fs.String("o", "", "output PNG path")
	width := fs.Int("width", 320, "image width in pixels")
	height := fs.Int("height", 240, "image height in pixels")
	background := fs.String("background", "", "color to clear the image to")

	usage := "trellis render <file> -o out.png"
	path, err := parseFile(fs, args, usage)
	if err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("-o is required\n\nUsage: %s", usage)
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("image size %dx%d must be positive", *width, *height)
	}

	tree, err := buildTree(path, tf.root)
	if err != nil {
		return err
	}

	size := graphics.Size{Width: *width, Height: *height}
	r := raster.New(size, nil)
	if *background != "" {
		c, err := graphics.ParseColor(*background)
		if err != nil {
			return err
		}
		r.Clear(c)
	}
	frame.NewLoop(tree).LayoutFrame(size, r)

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", *out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d, %d widgets)", *out, *width, *height, tree.Len())
	return nil
}
