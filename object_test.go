package valueschema_test

import (
	"reflect"
	"testing"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/dsl"
)

func TestProperties_UnknownPolicy(t *testing.T) {
	props := map[string]*vs.Schema{"a": dsl.Number().Base()}
	in := map[string]any{"a": "1", "b": "kept?"}

	strip := vs.DefineKind("rawPropsStrip", vs.Properties).New().With("schema", props)
	out, err := strip.Adjust(in)
	if err != nil || !reflect.DeepEqual(out, map[string]any{"a": 1.0}) {
		t.Fatalf("strip: %v %v", out, err)
	}

	pass := vs.DefineKind("rawPropsPass", vs.Properties).New().With("schema", props, vs.UnknownPassthrough)
	out, err = pass.Adjust(in)
	if err != nil || !reflect.DeepEqual(out, map[string]any{"a": 1.0, "b": "kept?"}) {
		t.Fatalf("passthrough: %v %v", out, err)
	}
}

func TestProperties_NonObjectLeftForTypeCheck(t *testing.T) {
	s := vs.DefineKind("rawPropsSkip", vs.Properties).New().With("schema", map[string]*vs.Schema{})
	out, err := s.Adjust("x")
	if err != nil || out != "x" {
		t.Fatalf("got %v %v", out, err)
	}
}

func TestProperties_MissingKeyIsUndefined(t *testing.T) {
	s := dsl.Object().Properties(map[string]dsl.Schemable{
		"id":   dsl.Number(),
		"note": dsl.String().Default(vs.Undefined),
	})
	_, err := s.Adjust(map[string]any{})
	ae, ok := vs.AsAdjustmentError(err)
	if !ok || ae.Cause != vs.CauseRequired || ae.KeyStack.Pointer() != "/id" {
		t.Fatalf("want required at /id, got %v", err)
	}
	out, err := s.Adjust(map[string]any{"id": 1})
	if err != nil || !reflect.DeepEqual(out, map[string]any{"id": 1.0}) {
		t.Fatalf("got %v %v", out, err)
	}
}

func TestProperties_NestedPathAccuracy(t *testing.T) {
	schemas := dsl.Fields(map[string]dsl.Schemable{
		"users": dsl.Array().Each(dsl.Object().Properties(map[string]dsl.Schemable{
			"name":  dsl.String(),
			"email": dsl.Email(),
		})),
	})
	var errs vs.Errors
	_, err := vs.Adjust(map[string]any{"users": []any{
		map[string]any{"name": "a", "email": "a@example.com"},
		map[string]any{"name": "b", "email": "nope"},
	}}, schemas, vs.Collect(&errs))
	if err == nil || len(errs) != 1 {
		t.Fatalf("want one error, got %v", err)
	}
	if !reflect.DeepEqual(errs[0].KeyStack, vs.KeyStack{"users", 1, "email"}) || errs[0].Value != "nope" {
		t.Fatalf("unexpected %v / %v", errs[0].KeyStack, errs[0].Value)
	}
}

func TestProperties_FeatureErrors(t *testing.T) {
	s := dsl.ObjectKind.New()
	if err := s.Call("schema", "not a map"); err == nil {
		t.Fatalf("want type error")
	}
	if err := s.Call("schema", map[string]*vs.Schema{"a": nil}); err == nil {
		t.Fatalf("want nil schema error")
	}
	if err := s.Call("schema", map[string]*vs.Schema{}, "strip"); err == nil {
		t.Fatalf("want policy type error")
	}
}

func TestProperties_Describe(t *testing.T) {
	got := dsl.Object().Properties(map[string]dsl.Schemable{"a": dsl.Boolean()}).Passthrough().JSONSchema()
	if got.Type != "object" || got.Properties["a"].Type != "boolean" || got.AdditionalProperties != true {
		t.Fatalf("unexpected: %+v", got)
	}
}
