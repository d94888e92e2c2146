package catalog

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/darksworm/lumina/pkg/model"
)

// Encode renders products as a catalog JSON array using the canonical keys.
// Empty optional fields are left out, mirroring hand-written catalogs.
func Encode(products []model.Product) ([]byte, error) {
	doc := []byte("[]")
	for i, p := range products {
		fields := []struct {
			key      string
			value    string
			required bool
		}{
			{keyTitle, p.Title, true},
			{keyImage, p.Image, true},
			{keyDescription, p.Description, false},
			{keyGenre, p.Genre, true},
			{keyPrice, p.Price, false},
			{keyWeight, p.Weight, false},
			{keyVolume, p.Volume, false},
			{keyPlaytime, p.Playtime, false},
			{keyAvailable, p.Available, false},
		}
		var err error
		doc, err = sjson.SetRawBytes(doc, "-1", []byte("{}"))
		if err != nil {
			return nil, fmt.Errorf("failed to append product %d: %w", i, err)
		}
		for _, f := range fields {
			if f.value == "" && !f.required {
				continue
			}
			doc, err = sjson.SetBytes(doc, fmt.Sprintf("%d.%s", i, f.key), f.value)
			if err != nil {
				return nil, fmt.Errorf("failed to set %s on product %d: %w", f.key, i, err)
			}
		}
	}
	return doc, nil
}
