package benchmarks_test

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/dsl"
	"github.com/reoring/valueschema/source"
)

// ---- Helpers ----

func smallUserSchemas() map[string]*vs.Schema {
	return dsl.Fields(map[string]dsl.Schemable{
		"id":   dsl.String().MinLength(1),
		"name": dsl.String().Trim().Default(vs.Undefined),
	})
}

func smallUserJSON() []byte {
	return []byte(`{"id":"u_1","name":" alice "}`)
}

// rowSchema adjusts one element of generateHugeJSONArray.
func rowSchema() *vs.Schema {
	return dsl.Object().Properties(map[string]dsl.Schemable{
		"id":     dsl.String().MinLength(1),
		"name":   dsl.String().Trim(),
		"age":    dsl.Number().Integer().MinValue(0),
		"active": dsl.Boolean(),
		"meta":   dsl.Object().Properties(map[string]dsl.Schemable{"score": dsl.Number()}),
	}).Base()
}

// generateHugeJSONArray returns a JSON array of objects of the form:
// [{"id":"obj_0","name":"n0","age":0,"active":true,"meta":{"score":0},"k0":"v0_0",...}, ...]
func generateHugeJSONArray(numObjects int, extraFields int) []byte {
	var buf bytes.Buffer
	buf.Grow(numObjects * (64 + extraFields*16))
	buf.WriteByte('[')
	for i := 0; i < numObjects; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		fmt.Fprintf(&buf, "\"id\":\"obj_%d\",", i)
		fmt.Fprintf(&buf, "\"name\":\"n%d\",", i)
		fmt.Fprintf(&buf, "\"age\":%d,", i)
		if i%2 == 0 {
			buf.WriteString("\"active\":true,")
		} else {
			buf.WriteString("\"active\":false,")
		}
		fmt.Fprintf(&buf, "\"meta\":{\"score\":%d}", i)
		for k := 0; k < extraFields; k++ {
			buf.WriteString(",\"k")
			buf.WriteString(strconv.Itoa(k))
			buf.WriteString("\":\"v")
			buf.WriteString(strconv.Itoa(i))
			buf.WriteString("_")
			buf.WriteString(strconv.Itoa(k))
			buf.WriteString("\"")
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// ---- Micro benchmarks (small inputs) ----

func Benchmark_Adjust_Small_Decoded(b *testing.B) {
	schemas := smallUserSchemas()
	data, err := source.DecodeJSONBytes(smallUserJSON())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vs.Adjust(data, schemas); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Adjust_Small_DecodeAndAdjust(b *testing.B) {
	schemas := smallUserSchemas()
	raw := smallUserJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(raw)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, err := source.DecodeJSONBytes(raw)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := vs.Adjust(data, schemas); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Adjust_Small_Collect(b *testing.B) {
	schemas := smallUserSchemas()
	data := map[string]any{"id": "", "name": 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var errs vs.Errors
		if _, err := vs.Adjust(data, schemas, vs.Collect(&errs)); err == nil {
			b.Fatal("expected errors")
		}
	}
}

// ---- Huge arrays ----

func Benchmark_Adjust_HugeArray_Each(b *testing.B) {
	for _, n := range []int{1000, 10000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			raw := generateHugeJSONArray(n, 8)
			data, err := source.DecodeJSONBytes(raw)
			if err != nil {
				b.Fatal(err)
			}
			s := dsl.Array().Each(rowSchema())
			b.ReportAllocs()
			b.SetBytes(int64(len(raw)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := s.Adjust(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func TestHugeArrayFixtureAdjusts(t *testing.T) {
	data, err := source.DecodeJSONBytes(generateHugeJSONArray(10, 2))
	if err != nil {
		t.Fatal(err)
	}
	out, err := dsl.Array().Each(rowSchema()).Adjust(data)
	if err != nil {
		t.Fatal(err)
	}
	rows := out.([]any)
	first := rows[0].(map[string]any)
	if len(rows) != 10 || first["age"] != 0.0 || first["active"] != true || len(first) != 5 {
		t.Fatalf("unexpected first row: %v", first)
	}
}
