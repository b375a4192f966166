package compare_test

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/valyala/fastjson"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/dsl"
)

const (
	cmpHugeN = 10000
	cmpHugeK = 8
)

// rowSchema adjusts one element of generateHugeJSONArray. Extra kN fields are stripped.
func rowSchema() *vs.Schema {
	return dsl.Object().Properties(map[string]dsl.Schemable{
		"id":     dsl.String().Pattern(regexp.MustCompile(`^obj_[0-9]+$`)),
		"name":   dsl.String().Trim().MinLength(1),
		"age":    dsl.Number().Integer().MinValue(0),
		"active": dsl.Boolean(),
		"meta": dsl.Object().Properties(map[string]dsl.Schemable{
			"score": dsl.Number().MinValue(0),
		}),
	}).Base()
}

func userSchemas() map[string]*vs.Schema {
	return dsl.Fields(map[string]dsl.Schemable{
		"id":    dsl.String().MinLength(1),
		"name":  dsl.String().Trim().MaxLength(32, true),
		"email": dsl.Email(),
		"age":   dsl.Number().AcceptSpecialFormats().Integer(dsl.IntegerRound).MinValue(0),
		"tags":  dsl.Array().SeparatedBy(",").Each(dsl.String().Trim(), true),
	})
}

func userJSON() []byte {
	return []byte(`{"id":"u_1","name":"  alice  ","email":"alice@example.com","age":"0x1e","tags":"a, b ,c","extra":true}`)
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

// fastjsonValue converts a parsed fastjson tree into the generic values Adjust consumes.
func fastjsonValue(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		o := v.GetObject()
		m := make(map[string]any, o.Len())
		o.Visit(func(key []byte, child *fastjson.Value) {
			m[string(key)] = fastjsonValue(child)
		})
		return m
	case fastjson.TypeArray:
		items := v.GetArray()
		arr := make([]any, len(items))
		for i, item := range items {
			arr[i] = fastjsonValue(item)
		}
		return arr
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}
