package typetest_test

import (
	"testing"

	"github.com/reoring/typeschema/typesys"
	tt "github.com/reoring/typeschema/typesys/typetest"
)

func TestIdentity(t *testing.T) {
	a := tt.Object().Prop("x", tt.String())
	b := tt.Object().Prop("x", tt.String())
	if a.ID() == b.ID() {
		t.Fatalf("distinct declarations must have distinct identities")
	}
	if a.ID() != a.ID() {
		t.Fatalf("identity must be stable")
	}
}

func TestKindsAndPayloads(t *testing.T) {
	var _ typesys.Type = tt.String()

	lit := tt.StringLiteral("on")
	if lit.Kind() != typesys.KindStringLiteral || lit.Text() != `"on"` {
		t.Fatalf("string literal: kind=%v text=%q", lit.Kind(), lit.Text())
	}
	if tt.BooleanLiteral(false).Text() != "false" {
		t.Fatalf("boolean literal text")
	}

	u := tt.Union(tt.String(), tt.Number())
	if u.Kind() != typesys.KindUnion || len(u.Members()) != 2 {
		t.Fatalf("union payload")
	}

	arr := tt.Array(tt.String())
	if arr.Element() == nil || tt.Array(nil).Element() != nil {
		t.Fatalf("array element payload")
	}

	obj := tt.Object().Prop("a", tt.String()).DeclaredIn("a.ts")
	if len(obj.Properties()) != 1 || obj.Properties()[0].Name != "a" {
		t.Fatalf("object properties")
	}
	if len(obj.DeclaringFiles()) != 1 {
		t.Fatalf("declaring files")
	}

	self := tt.Union(tt.String())
	self.AddMember(self)
	if len(self.Members()) != 2 {
		t.Fatalf("AddMember should append")
	}
}
