// Command demo writes a sample catalog that lumina can load.
package main

import (
	"flag"
	"fmt"
	"os"

	cblog "github.com/charmbracelet/log"
	"github.com/darksworm/lumina/pkg/catalog"
	"github.com/darksworm/lumina/pkg/model"
)

// demoProducts covers every section of the storefront: speakers, the two
// curated New Releases items and a few products only the catalog shows.
func demoProducts() []model.Product {
	return []model.Product{
		{
			Title:       "Aero Speaker",
			Image:       "img/aero.png",
			Description: "Portable wireless speaker with a warm, room-filling sound.",
			Genre:       "Speaker",
			Price:       "€199",
			Weight:      "1.2 kg",
			Volume:      "2.1 L",
			Playtime:    "18 h",
			Available:   model.InStock,
		},
		{
			Title:       "Nimbus Mini",
			Image:       "img/nimbus-mini.png",
			Description: "Pocket-sized speaker that clips onto a bag.",
			Genre:       "Speaker",
			Price:       "€89",
			Weight:      "0.3 kg",
			Volume:      "0.4 L",
			Playtime:    "10 h",
			Available:   model.OutOfStock,
		},
		{
			Title:       "Halo Max",
			Image:       "img/halo-max.png",
			Description: "Flagship speaker with deep bass and a 360° driver array.",
			Genre:       "Speaker",
			Price:       "€349",
			Weight:      "2.8 kg",
			Volume:      "4.5 L",
			Playtime:    "24 h",
			Available:   model.InStock,
		},
		{
			Title:       "Canvas Totebag",
			Image:       "img/totebag.png",
			Description: "Sturdy cotton bag sized for any of our speakers.",
			Genre:       "Accessory",
			Price:       "€25",
			Available:   model.InStock,
		},
		{
			Title:       "Aero Cover Moonlight White",
			Image:       "img/cover-white.png",
			Description: "Knitted replacement cover for the Aero.",
			Genre:       "Speaker Cover",
			Price:       "€35",
			Available:   model.InStock,
		},
		{
			Title:       "Aero Cover Midnight Blue",
			Image:       "img/cover-blue.png",
			Description: "Knitted replacement cover for the Aero.",
			Genre:       "Speaker Cover",
			Price:       "€35",
			Available:   model.OutOfStock,
		},
		{
			Title:       "Travel Case",
			Image:       "img/case.png",
			Description: "Hard shell case for the Aero and the Nimbus Mini.",
			Genre:       "Accessory",
			Price:       "€45",
			Available:   model.OutOfStock,
		},
		{
			Title:     "Wall Mount",
			Image:     "img/mount.png",
			Genre:     "Accessory",
			Price:     "€19",
			Available: model.InStock,
		},
	}
}

func main() {
	var out string
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.StringVar(&out, "out", catalog.DefaultLocation, "Where to write the catalog JSON")
	_ = fs.Parse(os.Args[1:])

	logger := cblog.With("component", "demo")

	data, err := catalog.Encode(demoProducts())
	if err != nil {
		logger.Error("Could not encode catalog", "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		logger.Error("Could not write catalog", "path", out, "err", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d products to %s\n", len(demoProducts()), out)
}
