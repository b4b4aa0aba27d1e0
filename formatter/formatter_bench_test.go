package formatter

import "testing"

func BenchmarkParseFormat(b *testing.B) {
	benchmarks := []struct {
		name   string
		format string
	}{
		{"no placeholders", "a plain literal message with no placeholders at all"},
		{"two placeholders", "User {UserId} logged in from {IpAddress}"},
		{"escaped braces", "{{prefix{{{Argument}}}suffix}}"},
		{"alignment and spec", "{Count,5:D2} of {Total,5:D2} done"},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				parseFormat(bm.format)
			}
		})
	}
}

func BenchmarkFormat(b *testing.B) {
	f := New("User {UserId} logged in from {IpAddress}")
	values := []any{42, "10.0.0.1"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Format(values...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetValues(b *testing.B) {
	f := New("User {UserId} logged in from {IpAddress}")
	values := []any{42, "10.0.0.1"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.GetValues(values)
	}
}
