package cache

import "testing"

func TestSerializeKey(t *testing.T) {
	s := NewDefaultKeySerializer()

	tests := []struct {
		name   string
		method string
		args   []any
		want   string
	}{
		{"no args", "client::GetBatch", nil, "client::GetBatch"},
		{"string", "client::GetByID", []any{"42"}, `client::GetByID::"42"`},
		{"separator in id", "client::GetByID", []any{"a::b"}, `client::GetByID::"a::b"`},
		{"nil", "m", []any{nil}, "m::nil"},
		{"bool and int", "m", []any{true, 3}, "m::true::3"},
		{"string list", "m", []any{[]string{"b", "a"}}, `m::["b","a"]`},
		{"empty map", "m", []any{map[string]any{}}, "m::{}"},
		{"map sorted", "m", []any{map[string]any{"z": "1", "a": false}}, `m::{"a"=false,"z"="1"}`},
		{"nested list", "m", []any{[]any{"x", 1}}, `m::["x",1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.SerializeKey(tt.method, tt.args...); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestSerializeKey_MapOrderIndependent(t *testing.T) {
	s := NewDefaultKeySerializer()

	type filters map[string]any
	a := filters{"status": "active", "tppId": "TPP1", "name": "x"}
	b := filters{"name": "x", "tppId": "TPP1", "status": "active"}

	for i := 0; i < 20; i++ {
		if s.SerializeKey("m", a) != s.SerializeKey("m", b) {
			t.Fatal("key depends on map iteration order")
		}
	}
	if s.SerializeKey("m", a) == s.SerializeKey("m", filters{"status": "inactive", "tppId": "TPP1", "name": "x"}) {
		t.Error("different filters must produce different keys")
	}
}

func TestSerializeKey_NilPointer(t *testing.T) {
	var p *string
	if got := NewDefaultKeySerializer().SerializeKey("m", p); got != "m::nil" {
		t.Errorf("got %s", got)
	}
}
