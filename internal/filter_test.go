package internal

import (
	"fmt"
	"testing"
)

func TestStripGarbage(t *testing.T) {
	cases := []struct {
		inp, want string
	}{{
		inp:  "",
		want: "",
	}, {
		inp:  "15T",
		want: "15T",
	}, {
		inp:  "15T\n",
		want: "15T",
	}, {
		inp:  " 2NEpo7TZ\nRRrLZSi2U\n",
		want: "2NEpo7TZRRrLZSi2U",
	}, {
		inp:  "Zi-Ca!?/+=",
		want: "ZiCa",
	}, {
		inp:  "0OIl",
		want: "0OIl",
	}, {
		inp:  "ZiCa\xc3\xa9",
		want: "ZiCa",
	}}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%02d", i+1), func(t *testing.T) {
			got := StripGarbage([]byte(tc.inp))
			if string(got) != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	cases := []struct {
		inp, want string
	}{{
		inp:  "",
		want: "",
	}, {
		inp:  "  15T\r\n",
		want: "15T",
	}, {
		inp:  "\t15 T\n",
		want: "15 T",
	}}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%02d", i+1), func(t *testing.T) {
			got := Trim([]byte(tc.inp))
			if string(got) != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
