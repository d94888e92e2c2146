package catalog

import (
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	apperrors "github.com/darksworm/lumina/pkg/errors"
	"github.com/darksworm/lumina/pkg/model"
)

// Canonical record keys. Lookups are case-sensitive: a record spelling
// "price" instead of "Price" simply has no price.
const (
	keyTitle       = "title"
	keyImage       = "image"
	keyDescription = "description"
	keyGenre       = "genre"
	keyPrice       = "Price"
	keyWeight      = "Weight"
	keyVolume      = "Volume"
	keyPlaytime    = "playtime"
	keyAvailable   = "available"
)

// ParseJSON decodes a JSON array of product objects.
func ParseJSON(data []byte) ([]model.Product, *apperrors.LumaError) {
	if !gjson.ValidBytes(data) {
		return nil, apperrors.LoadFailure(apperrors.CodeMalformedJSON, "catalog is not valid JSON", nil)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, apperrors.LoadFailure(apperrors.CodeNotAnArray, "catalog must be a JSON array", nil).
			WithDetails(root.Type.String())
	}

	products := make([]model.Product, 0)
	index := 0
	root.ForEach(func(_, item gjson.Result) bool {
		defer func() { index++ }()
		if !item.IsObject() {
			logSkipped("JSON", index, "not an object")
			return true
		}
		products = append(products, productFromJSON(item))
		return true
	})
	return products, nil
}

func productFromJSON(item gjson.Result) model.Product {
	field := func(key string) string {
		v := item.Get(gjson.Escape(key))
		if !v.Exists() || v.Type == gjson.Null {
			return ""
		}
		// Numbers and booleans keep their literal text.
		if v.Type == gjson.String {
			return v.Str
		}
		return v.Raw
	}
	return model.Product{
		Title:       field(keyTitle),
		Image:       field(keyImage),
		Description: field(keyDescription),
		Genre:       field(keyGenre),
		Price:       field(keyPrice),
		Weight:      field(keyWeight),
		Volume:      field(keyVolume),
		Playtime:    field(keyPlaytime),
		Available:   field(keyAvailable),
	}
}

// ParseYAML decodes a YAML sequence of product mappings.
func ParseYAML(data []byte) ([]model.Product, *apperrors.LumaError) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.LoadFailure(apperrors.CodeMalformedYAML, "catalog is not valid YAML", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, apperrors.LoadFailure(apperrors.CodeNotAnArray, "catalog must be a YAML sequence", nil)
	}

	products := make([]model.Product, 0, len(doc.Content[0].Content))
	for i, node := range doc.Content[0].Content {
		if node.Kind != yaml.MappingNode {
			logSkipped("YAML", i, "not a mapping")
			continue
		}
		products = append(products, productFromYAML(node))
	}
	return products, nil
}

func productFromYAML(node *yaml.Node) model.Product {
	values := make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode || v.Tag == "!!null" {
			continue
		}
		values[k.Value] = v.Value
	}
	return model.Product{
		Title:       values[keyTitle],
		Image:       values[keyImage],
		Description: values[keyDescription],
		Genre:       values[keyGenre],
		Price:       values[keyPrice],
		Weight:      values[keyWeight],
		Volume:      values[keyVolume],
		Playtime:    values[keyPlaytime],
		Available:   values[keyAvailable],
	}
}
