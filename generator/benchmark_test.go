package generator_test

import (
	"testing"

	"github.com/taggedzi/nonwordgen/generator"
	"github.com/taggedzi/nonwordgen/lang"
)

func BenchmarkGenerate(b *testing.B) {
	plugin, err := lang.Default().Get("english")
	if err != nil {
		b.Fatal(err)
	}
	gen, err := generator.New(plugin, generator.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateStrict(b *testing.B) {
	plugin, err := lang.Default().Get("english")
	if err != nil {
		b.Fatal(err)
	}
	gen, err := generator.New(plugin,
		generator.WithStrictness(lang.VeryStrict),
		generator.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}
