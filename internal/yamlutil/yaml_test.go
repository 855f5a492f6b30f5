package yamlutil

import (
	"bytes"
	"errors"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		var s sample
		if err := Unmarshal([]byte("name: test\ncount: 3\n"), &s); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if s.Name != "test" || s.Count != 3 {
			t.Errorf("got %+v", s)
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		var s sample
		if err := Unmarshal([]byte("name: test\nextra: ignored\n"), &s); err != nil {
			t.Errorf("Unmarshal() error = %v, want unknown field ignored", err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		var s sample
		if err := Unmarshal(nil, &s); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("nil target", func(t *testing.T) {
		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilTarget) {
			t.Errorf("error = %v, want ErrNilTarget", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		var s sample
		data := bytes.Repeat([]byte("a"), MaxInputSize+1)
		if err := Unmarshal(data, &s); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		var s sample
		if err := Unmarshal([]byte("name: [unclosed"), &s); err == nil {
			t.Error("Unmarshal() error = nil, want parse error")
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		var s sample
		if err := UnmarshalStrict([]byte("name: test\ncount: 3\n"), &s); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		var s sample
		if err := UnmarshalStrict([]byte("name: test\nextra: nope\n"), &s); err == nil {
			t.Error("UnmarshalStrict() error = nil, want unknown field error")
		}
	})
}

func TestMarshal(t *testing.T) {
	out, err := Marshal(sample{Name: "test", Count: 3})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back sample
	if err := Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Name != "test" || back.Count != 3 {
		t.Errorf("round trip = %+v", back)
	}
}
