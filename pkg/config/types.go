package config

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// StringToSliceWithBracketHookFunc returns a DecodeHookFunc that converts a string to a slice of strings.
// Env values arrive as strings; a JSON array (`["a","b"]`) is decoded as is,
// anything else is split on commas. An empty string yields an empty slice.
func StringToSliceWithBracketHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Kind, t reflect.Kind, data interface{}) (interface{}, error) {
		if f != reflect.String || t != reflect.Slice {
			return data, nil
		}

		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return []string{}, nil
		}
		if !strings.HasPrefix(raw, "[") {
			return strings.Split(raw, ","), nil
		}

		var result any
		if err := json.Unmarshal([]byte(raw), &result); err != nil {
			return data, nil
		}
		if reflect.TypeOf(result).Kind() != t {
			return data, nil
		}
		return result, nil
	}
}

func decoderConfig() viper.DecoderConfigOption {
	return viper.DecodeHook(StringToSliceWithBracketHookFunc())
}
