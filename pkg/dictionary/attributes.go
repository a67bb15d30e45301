package dictionary

import "github.com/go-viper/mapstructure/v2"

// DecodeAttributes decodes an open attribute map into a caller-supplied
// struct, for code generators that know the attribute schema of a
// particular dictionary. Fields are matched by the "attr" tag. Decoding is
// weakly typed: attribute values written as YAML scalars of a near type
// ("1" for an int, 1 for a bool) still decode.
func DecodeAttributes(attrs map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "attr",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(attrs)
}
