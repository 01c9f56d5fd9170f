package enumgen

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestValidate(t *testing.T) {
	cfg := &Config{
		Package: "produce",
		Enums: []EnumDef{
			{Name: "Fruit", Values: []string{"Orange", "Banana"}},
			{Name: "Berry", Values: []string{"Strawberry"}},
		},
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := &Config{
		Package: "2fast",
		Enums: []EnumDef{
			{Name: "Fruit", Values: nil},
		},
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `package "2fast" is not a valid identifier`)
	assert.Contains(t, err.Error(), "enum Fruit: at least one value is required")
}

func TestValidateBadIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want string
	}{
		{
			name: "enum name with space",
			cfg:  &Config{Package: "p", Enums: []EnumDef{{Name: "My Enum", Values: []string{"A"}}}},
			want: `enum name "My Enum" is not a valid identifier`,
		},
		{
			name: "keyword as value",
			cfg:  &Config{Package: "p", Enums: []EnumDef{{Name: "Fruit", Values: []string{"func"}}}},
			want: `enum Fruit: value "func" is not a valid identifier`,
		},
		{
			name: "value shadowing an import",
			cfg:  &Config{Package: "p", Enums: []EnumDef{{Name: "Fruit", Values: []string{"fmt"}}}},
			want: `enum Fruit: value "fmt" shadows the fmt import`,
		},
		{
			name: "value shadowing a predeclared identifier",
			cfg:  &Config{Package: "p", Enums: []EnumDef{{Name: "Fruit", Values: []string{"error"}}}},
			want: `enum Fruit: value "error" shadows a predeclared identifier`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateCollisions(t *testing.T) {
	t.Run("value reused across enums", func(t *testing.T) {
		cfg := &Config{Package: "p", Enums: []EnumDef{
			{Name: "Fruit", Values: []string{"Orange"}},
			{Name: "Color", Values: []string{"Orange"}},
		}}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `enum Color: value "Orange" collides with value Orange of enum Fruit`)
	})

	t.Run("value reusing another enum's name", func(t *testing.T) {
		cfg := &Config{Package: "p", Enums: []EnumDef{
			{Name: "Fruit", Values: []string{"Color"}},
			{Name: "Color", Values: []string{"Red"}},
		}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("value colliding with a generated helper", func(t *testing.T) {
		cfg := &Config{Package: "p", Enums: []EnumDef{
			{Name: "Fruit", Values: []string{"numFruit"}},
		}}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "the length constant of enum Fruit")
	})

	t.Run("values folding to the same text", func(t *testing.T) {
		cfg := &Config{Package: "p", Enums: []EnumDef{
			{Name: "Fruit", Values: []string{"Orange", "ORANGE"}},
		}}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `share the text "orange"`)
	})

	t.Run("enum names differing only in case", func(t *testing.T) {
		cfg := &Config{Package: "p", Enums: []EnumDef{
			{Name: "Fruit", Values: []string{"Orange"}},
			{Name: "FRUIT", Values: []string{"ORANGE"}},
		}}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "enums Fruit and FRUIT both generate fruit_enum.go")
	})
}
